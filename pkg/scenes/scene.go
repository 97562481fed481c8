package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 桌面端的一个场景
// 目前只有对局场景，结束画面和重新开始都在场景内部处理
type Scene interface {
	// Update 推进一帧，deltaTime 为秒
	Update(deltaTime float64)
	// Draw 绘制到 screen
	Draw(screen *ebiten.Image)
}

// Saveable 需要在窗口关闭后保存数据的场景
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败，程序照常退出
	SaveOnExit() bool
}
