// lawn-tui 在终端中运行游戏
//
// 用法：
//
//	lawn-tui [-difficulty easy|normal|hard] [-root .] [-log tui.log] [-mute]
//
// 鼠标点击放置植物和收集阳光；1-9 选卡，s 铲子，Esc 取消，
// 空格切换速度，m 音乐，n 静音，q 退出。
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/decker502/lawndefense/internal/tui"
	"github.com/decker502/lawndefense/pkg/config"
	"github.com/decker502/lawndefense/pkg/embedded"
	"github.com/decker502/lawndefense/pkg/game"
	"github.com/decker502/lawndefense/pkg/render"
	"github.com/decker502/lawndefense/pkg/simulation"
	"github.com/gdamore/tcell/v2"
	"github.com/quasilyte/gdata/v2"
)

// frameInterval 每帧间隔，约 60 FPS
const frameInterval = 16 * time.Millisecond

func main() {
	difficulty := flag.String("difficulty", "", "难度（easy, normal, hard），为空时使用上次保存的难度")
	root := flag.String("root", ".", "包含 data/ 目录的路径，缺少的配置文件使用内置默认值")
	logFile := flag.String("log", "", "日志文件路径，为空时不输出日志")
	mute := flag.Bool("mute", false, "不打开音频设备")
	flag.Parse()

	if err := run(*difficulty, *root, *logFile, *mute); err != nil {
		fmt.Fprintf(os.Stderr, "lawn-tui: %v\n", err)
		os.Exit(1)
	}
}

func run(difficulty, root, logFile string, mute bool) error {
	// 终端被 tcell 接管，日志只能写文件
	log.SetOutput(io.Discard)
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	embedded.Init(os.DirFS(root))
	data, err := config.LoadGameData()
	if err != nil {
		return err
	}

	gdataManager, err := gdata.Open(gdata.Config{AppName: game.AppName})
	if err != nil {
		log.Printf("[TUI] Warning: gdata unavailable, settings will not persist: %v", err)
		gdataManager = nil
	}
	settings, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[TUI] Warning: %v (using defaults)", err)
	}
	if difficulty == "" {
		difficulty = settings.GetSettings().Difficulty
	}
	if err := data.Validate(difficulty); err != nil {
		return err
	}

	audio := tui.NewBeepAudio()
	if !mute {
		if err := audio.Init(); err != nil {
			log.Printf("[TUI] Warning: %v (running without sound)", err)
		}
	}
	defer audio.Close()

	loop, err := simulation.New(simulation.Options{
		Difficulty:   difficulty,
		Difficulties: data.Difficulties,
		Plants:       data.Plants,
		Zombies:      data.Zombies,
		Audio:        audio,
		Music:        audio,
		Scores:       game.NewLocalScoreStore(gdataManager),
		Settings:     settings,
		Rand:         rand.New(rand.NewSource(time.Now().UnixNano())),
	})
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	renderer := tui.NewScreenRenderer(screen)
	input := tui.NewInput(renderer)

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	log.Printf("[TUI] Starting game on %s", difficulty)
	for {
		select {
		case ev := <-eventChan:
			if !input.Handle(ev, loop) {
				return saveOnExit(loop)
			}
		case <-ticker.C:
			running := loop.Step()
			// 结束画面上点击任意位置重新开始，进行中的点击已由 Step 处理
			if x, y, ok := input.TakeClick(); ok && !running {
				loop.RestartClick(x, y)
			}
			renderer.Clear()
			renderer.FillRect(render.Rect{W: config.CanvasWidth, H: config.CanvasHeight}, render.ColorHouse)
			loop.Draw(renderer)
			renderer.Present()
		}
	}
}

func saveOnExit(loop *simulation.GameLoop) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := loop.SaveHighScore(ctx); err != nil {
		log.Printf("[TUI] Warning: %v", err)
	}
	return nil
}
