// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/lawndefense/pkg/config"
	"github.com/decker502/lawndefense/pkg/game"
	"github.com/decker502/lawndefense/pkg/scenes"
	"github.com/decker502/lawndefense/pkg/scoreboard"
	"github.com/decker502/lawndefense/pkg/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = game.AppName

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Difficulty 难度名称，为空时使用上次保存的难度
	Difficulty string
	// ScoreURL 远程最高分服务地址，为空时保存在本机
	ScoreURL string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *scenes.SceneManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	data, err := config.LoadGameData()
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}

	// gdata 打开失败时进入降级模式：设置和最高分只保存在内存
	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
		gdataManager = nil
	}
	settings, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: %v (using defaults)", err)
	}

	difficulty := cfg.Difficulty
	if difficulty == "" {
		difficulty = settings.GetSettings().Difficulty
	}
	if err := data.Validate(difficulty); err != nil {
		return nil, err
	}

	audioContext := audio.NewContext(scenes.AudioSampleRate)
	audioManager := scenes.NewAudioManager(audioContext, settings)
	audioManager.PreloadSounds()
	log.Printf("[App] AudioManager initialized")

	var scores game.ScoreStore = game.NewLocalScoreStore(gdataManager)
	if cfg.ScoreURL != "" {
		scores = scoreboard.NewClient(cfg.ScoreURL).WithDifficulty(difficulty)
		log.Printf("[App] Using remote scoreboard %s", cfg.ScoreURL)
	}

	loop, err := simulation.New(simulation.Options{
		Difficulty:   difficulty,
		Difficulties: data.Difficulties,
		Plants:       data.Plants,
		Zombies:      data.Zombies,
		Audio:        audioManager,
		Music:        audioManager,
		Scores:       scores,
		Settings:     settings,
		Rand:         rand.New(rand.NewSource(time.Now().UnixNano())),
	})
	if err != nil {
		return nil, fmt.Errorf("游戏初始化失败: %w", err)
	}

	sceneManager := scenes.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewGameScene(loop))
	log.Printf("[App] Starting game on %s", difficulty)

	return &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次），对应游戏的一帧
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(WindowWidth, WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(1.0 / 60.0)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧留黑边，画面线性缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowWidth, WindowHeight
}

// Shutdown 窗口关闭后保存当前场景
func (a *App) Shutdown() {
	if s, ok := a.sceneManager.GetCurrentScene().(scenes.Saveable); ok {
		if !s.SaveOnExit() {
			log.Printf("[App] Warning: save on exit failed")
		}
	}
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// 逻辑屏幕尺寸
const (
	WindowWidth  = int(config.CanvasWidth)
	WindowHeight = int(config.CanvasHeight)
)
