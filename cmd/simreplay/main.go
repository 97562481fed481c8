// simreplay 无界面回放一局游戏
//
// 按 YAML 脚本（或只按种子）推进固定步数，在指定步数把画面保存为 PNG，
// 最后打印结果。相同的脚本和种子总是得到相同的结果。
//
// 用法：
//
//	simreplay -scenario data/scenarios/opening.yaml -out snapshots
//	simreplay -seed 7 -steps 6000 -difficulty hard
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/decker502/lawndefense/pkg/config"
	"github.com/decker502/lawndefense/pkg/embedded"
	"github.com/decker502/lawndefense/pkg/render"
	"github.com/decker502/lawndefense/pkg/simulation"
)

var (
	root       = flag.String("root", ".", "包含 data/ 目录的路径")
	scenario   = flag.String("scenario", "", "脚本路径（相对 -root，以 data/ 开头），为空时只按种子运行")
	seed       = flag.Int64("seed", 1, "随机种子（未指定脚本时使用）")
	steps      = flag.Int("steps", 3600, "最多推进的步数（未指定脚本时使用）")
	difficulty = flag.String("difficulty", "", "覆盖脚本中的难度")
	outDir     = flag.String("out", "", "截图输出目录，为空时不截图")
	every      = flag.Int("every", 0, "每隔多少步额外截图一次，0 表示只按脚本截图")
	list       = flag.Bool("list", false, "列出 data/scenarios 下的脚本")
	verbose    = flag.Bool("verbose", false, "显示详细日志")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "simreplay: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	embedded.Init(os.DirFS(*root))
	if *list {
		names, err := embedded.Glob("data/scenarios/*.yaml")
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return nil
	}

	data, err := config.LoadGameData()
	if err != nil {
		return err
	}

	sc, err := loadScenario()
	if err != nil {
		return err
	}
	if *difficulty != "" {
		sc.Difficulty = *difficulty
	}
	if sc.Difficulty == "" {
		sc.Difficulty = config.DifficultyNormal
	}
	if err := data.Validate(sc.Difficulty); err != nil {
		return err
	}

	snapshots := make(map[int]bool, len(sc.Snapshots))
	for _, s := range sc.Snapshots {
		snapshots[s] = true
	}
	var renderer *render.SnapshotRenderer
	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
		renderer = render.NewSnapshotRenderer(int(config.CanvasWidth), int(config.CanvasHeight))
	}

	var snapErr error
	onStep := func(step int, l *simulation.GameLoop) {
		if renderer == nil || snapErr != nil {
			return
		}
		if !snapshots[step] && (*every <= 0 || step%*every != 0) {
			return
		}
		renderer.Clear(render.ColorHouse)
		l.Draw(renderer)
		path := filepath.Join(*outDir, fmt.Sprintf("%s_%05d.png", sc.Name, step))
		if snapErr = renderer.SavePNG(path); snapErr == nil {
			fmt.Printf("snapshot %s\n", path)
		}
	}

	result, err := simulation.RunScenario(simulation.Options{
		Difficulties: data.Difficulties,
		Plants:       data.Plants,
		Zombies:      data.Zombies,
	}, sc, onStep)
	if err != nil {
		return err
	}
	if snapErr != nil {
		return snapErr
	}

	fmt.Printf("scenario:   %s (%s, seed %d)\n", sc.Name, sc.Difficulty, sc.Seed)
	fmt.Printf("steps:      %d (frame %d)\n", result.Steps, result.Frames)
	fmt.Printf("level:      %d\n", result.Level)
	fmt.Printf("score:      %d\n", result.Score)
	fmt.Printf("sun:        %d\n", result.Sun)
	fmt.Printf("kills:      %d\n", result.ZombiesKilled)
	fmt.Printf("game over:  %v\n", result.GameOver)
	for _, r := range result.Rejected {
		fmt.Printf("rejected:   %s\n", r)
	}
	return nil
}

// loadScenario 读取脚本，未指定时按命令行参数生成空脚本
func loadScenario() (*simulation.Scenario, error) {
	if *scenario == "" {
		sc := &simulation.Scenario{Name: fmt.Sprintf("seed%d", *seed), Seed: *seed, Steps: *steps}
		return sc, sc.Validate()
	}
	raw, err := embedded.ReadFile(filepath.ToSlash(*scenario))
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return simulation.ParseScenario(raw)
}
