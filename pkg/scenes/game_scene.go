package scenes

import (
	"context"
	"log"
	"time"

	"github.com/decker502/lawndefense/pkg/game"
	"github.com/decker502/lawndefense/pkg/render"
	"github.com/decker502/lawndefense/pkg/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameScene 桌面端的对局场景
// ebiten 每个 tick 调用一次 Update，对应游戏的一帧
type GameScene struct {
	loop     *simulation.GameLoop
	renderer *EbitenRenderer
	ended    bool
}

// NewGameScene 创建对局场景
func NewGameScene(loop *simulation.GameLoop) *GameScene {
	return &GameScene{
		loop:     loop,
		renderer: NewEbitenRenderer(),
	}
}

// Update 读取输入并推进一帧
func (s *GameScene) Update(deltaTime float64) {
	p := ReadPointer()
	s.loop.SetPointer(p.X, p.Y, p.Clicked, p.RightClicked)
	ApplyKeys(s.loop, inpututil.IsKeyJustPressed)

	running := s.loop.Step()
	if !running {
		// 结束后指针点击直接触发重新开始
		if !s.ended {
			s.ended = true
			log.Printf("[GameScene] Game over, click to restart")
		}
		if p.Clicked {
			s.loop.RestartClick(p.X, p.Y)
		}
		return
	}
	s.ended = false
}

// Draw 绘制当前画面
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(render.ColorHouse)
	s.renderer.Target(screen)
	s.loop.Draw(s.renderer)
}

// Loop 场景驱动的游戏循环
func (s *GameScene) Loop() *simulation.GameLoop {
	return s.loop
}

// SaveOnExit 窗口关闭时写入最高分
func (s *GameScene) SaveOnExit() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.loop.SaveHighScore(ctx); err != nil {
		log.Printf("[GameScene] Warning: %v", err)
		return false
	}
	return true
}

var (
	_ Scene    = (*GameScene)(nil)
	_ Saveable = (*GameScene)(nil)
)
