package main

import (
	"flag"
	"log"

	"github.com/decker502/lawndefense/pkg/app"
	"github.com/decker502/lawndefense/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "输出详细日志")
	difficulty := flag.String("difficulty", "", "难度：easy、normal 或 hard（默认使用上次的设置）")
	scoreURL := flag.String("score-url", "", "远程最高分服务地址，如 http://localhost:8090")
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Difficulty: *difficulty,
		ScoreURL:   *scoreURL,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(app.WindowWidth, app.WindowHeight)
	ebiten.SetWindowTitle("Lawn Defense")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
	gameApp.Shutdown()
}
