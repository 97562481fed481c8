package tui

import (
	"github.com/gdamore/tcell/v2"
)

// Controls 终端输入可以触发的玩家操作
type Controls interface {
	SetPointer(x, y float64, clicked, rightClicked bool)
	SelectCard(index int) bool
	ToggleShovel()
	CancelSelection()
	CycleSpeed() int
	ToggleMusic() bool
	ToggleMute() bool
}

// Input 把 tcell 事件转换成玩家操作
type Input struct {
	renderer *ScreenRenderer
	buttons  tcell.ButtonMask // 上一个鼠标事件的按键状态，用于识别按下
	clicked  bool             // 上次 TakeClick 之后是否有左键按下
	x, y     float64
}

// NewInput 创建输入处理器，坐标换算使用渲染器的网格
func NewInput(renderer *ScreenRenderer) *Input {
	return &Input{renderer: renderer}
}

// Handle 处理一个事件，返回 false 表示退出
func (in *Input) Handle(ev tcell.Event, c Controls) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return in.handleKey(ev, c)
	case *tcell.EventMouse:
		in.handleMouse(ev, c)
	case *tcell.EventResize:
		in.renderer.Resize()
	}
	return true
}

func (in *Input) handleKey(ev *tcell.EventKey, c Controls) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		c.CancelSelection()
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch r := ev.Rune(); {
	case r >= '1' && r <= '9':
		c.SelectCard(int(r - '1'))
	case r == 'q':
		return false
	case r == 'c' && ev.Modifiers()&tcell.ModCtrl != 0:
		return false
	case r == 's':
		c.ToggleShovel()
	case r == ' ':
		c.CycleSpeed()
	case r == 'm':
		c.ToggleMusic()
	case r == 'n':
		c.ToggleMute()
	}
	return true
}

// handleMouse 只在按键从松开变为按下时算一次点击
func (in *Input) handleMouse(ev *tcell.EventMouse, c Controls) {
	col, row := ev.Position()
	x, y := in.renderer.CanvasPoint(col, row)
	buttons := ev.Buttons()
	pressed := buttons &^ in.buttons
	in.buttons = buttons

	in.x, in.y = x, y
	if pressed&tcell.Button1 != 0 {
		in.clicked = true
	}
	c.SetPointer(x, y, pressed&tcell.Button1 != 0, pressed&tcell.Button2 != 0)
}

// TakeClick 返回并清除待处理的左键点击和指针位置
// 对局结束后 Step 不再处理点击，由调用方据此重新开始
func (in *Input) TakeClick() (x, y float64, ok bool) {
	ok = in.clicked
	in.clicked = false
	return in.x, in.y, ok
}
