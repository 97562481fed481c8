package simulation

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// TestCoreWithoutEbiten 测试模拟核心及其依赖的包不引入 ebiten，
// 终端前端和离屏回放不需要图形和声卡驱动
func TestCoreWithoutEbiten(t *testing.T) {
	dirs := []string{".", "../game", "../systems", "../ecs", "../entities", "../components", "../config", "../types", "../embedded", "../render"}

	for _, dir := range dirs {
		t.Run(dir, func(t *testing.T) {
			files, err := filepath.Glob(filepath.Join(dir, "*.go"))
			if err != nil {
				t.Fatalf("Glob: %v", err)
			}
			if len(files) == 0 {
				t.Fatalf("Expected Go files in %s", dir)
			}
			fset := token.NewFileSet()
			for _, file := range files {
				if strings.HasSuffix(file, "_test.go") {
					continue
				}
				f, err := parser.ParseFile(fset, file, nil, parser.ImportsOnly)
				if err != nil {
					t.Fatalf("ParseFile %s: %v", file, err)
				}
				for _, imp := range f.Imports {
					path, _ := strconv.Unquote(imp.Path.Value)
					if strings.HasPrefix(path, "github.com/hajimehoshi/ebiten") {
						t.Errorf("Expected %s to avoid ebiten, got import %s", file, path)
					}
				}
			}
		})
	}
}
