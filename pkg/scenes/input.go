package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Pointer 一帧的指针输入
type Pointer struct {
	X, Y         float64
	Clicked      bool
	RightClicked bool
}

// ReadPointer 读取当前帧的鼠标或触摸输入
// 触摸优先；没有触摸时使用鼠标位置做悬停检测
func ReadPointer() Pointer {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return Pointer{X: float64(x), Y: float64(y), Clicked: true}
	}

	if active := ebiten.AppendTouchIDs(nil); len(active) > 0 {
		x, y := ebiten.TouchPosition(active[0])
		return Pointer{X: float64(x), Y: float64(y)}
	}

	x, y := ebiten.CursorPosition()
	return Pointer{
		X:            float64(x),
		Y:            float64(y),
		Clicked:      inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		RightClicked: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
	}
}

// Controls 键盘可以触发的玩家操作
type Controls interface {
	SelectCard(index int) bool
	ToggleShovel()
	CancelSelection()
	CycleSpeed() int
	ToggleMusic() bool
	ToggleMute() bool
}

// cardKeys 数字键对应卡片栏下标
var cardKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// ApplyKeys 把本帧刚按下的按键转换成玩家操作
// justPressed 通常为 inpututil.IsKeyJustPressed，测试时可替换
func ApplyKeys(c Controls, justPressed func(ebiten.Key) bool) {
	for i, key := range cardKeys {
		if justPressed(key) {
			c.SelectCard(i)
		}
	}
	if justPressed(ebiten.KeyS) {
		c.ToggleShovel()
	}
	if justPressed(ebiten.KeyEscape) {
		c.CancelSelection()
	}
	if justPressed(ebiten.KeySpace) {
		c.CycleSpeed()
	}
	if justPressed(ebiten.KeyM) {
		c.ToggleMusic()
	}
	if justPressed(ebiten.KeyN) {
		c.ToggleMute()
	}
}
