// Package tui 在终端中运行游戏
//
// 画布按比例缩放到终端字符网格：精灵画成带颜色的字符块，
// 鼠标点击换算回画布坐标，音效由 beep 合成。
package tui

import (
	"image/color"
	"strings"

	"github.com/decker502/lawndefense/pkg/config"
	"github.com/decker502/lawndefense/pkg/render"
	"github.com/gdamore/tcell/v2"
)

// glyphs 精灵名前缀对应的字符
var glyphs = []struct {
	prefix string
	r      rune
}{
	{"card_", ' '},
	{"sunflower", '*'},
	{"peashooter", 'P'},
	{"repeater", 'R'},
	{"threepeashooter", 'T'},
	{"chomper", 'C'},
	{"wallnut", 'W'},
	{"potatomines", 'o'},
	{"spikeweed", '^'},
	{"melonpult", 'M'},
	{"zombie_dying", 'x'},
	{"zombie", 'Z'},
	{"pea", '•'},
	{"melon", '●'},
	{"sun", '☼'},
	{"lawn_cleaner", '>'},
}

// Glyph 返回精灵在终端中的字符
func Glyph(sprite string) rune {
	for _, g := range glyphs {
		if strings.HasPrefix(sprite, g.prefix) {
			return g.r
		}
	}
	return '?'
}

// Cell 终端中的一个字符格
type Cell struct {
	Rune rune
	FG   tcell.Color
	BG   tcell.Color
}

// ScreenRenderer 把画布坐标缩放到终端字符网格
// 一帧先画进 cells，Present 时一次写到屏幕
type ScreenRenderer struct {
	screen tcell.Screen
	cols   int
	rows   int
	cells  []Cell
}

// NewScreenRenderer 创建终端渲染器
func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	r := &ScreenRenderer{screen: screen}
	r.Resize()
	return r
}

// Resize 终端尺寸变化后重新读取
func (r *ScreenRenderer) Resize() {
	r.cols, r.rows = r.screen.Size()
	if r.cols < 1 {
		r.cols = 1
	}
	if r.rows < 1 {
		r.rows = 1
	}
	r.cells = make([]Cell, r.cols*r.rows)
	r.Clear()
}

// Size 字符网格的列数和行数
func (r *ScreenRenderer) Size() (int, int) {
	return r.cols, r.rows
}

// Clear 清空缓冲区
func (r *ScreenRenderer) Clear() {
	for i := range r.cells {
		r.cells[i] = Cell{Rune: ' ', FG: tcell.ColorWhite, BG: tcell.ColorBlack}
	}
}

// Cell 返回缓冲区中的字符格，越界时 ok 为 false
func (r *ScreenRenderer) Cell(col, row int) (Cell, bool) {
	if col < 0 || row < 0 || col >= r.cols || row >= r.rows {
		return Cell{}, false
	}
	return r.cells[row*r.cols+col], true
}

func (r *ScreenRenderer) set(col, row int, c Cell) {
	if col < 0 || row < 0 || col >= r.cols || row >= r.rows {
		return
	}
	r.cells[row*r.cols+col] = c
}

// Present 把缓冲区写到屏幕
func (r *ScreenRenderer) Present() {
	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			c := r.cells[row*r.cols+col]
			r.screen.SetContent(col, row, c.Rune, nil, tcell.StyleDefault.Foreground(c.FG).Background(c.BG))
		}
	}
	r.screen.Show()
}

// cell 画布坐标对应的字符格
func (r *ScreenRenderer) cell(x, y float64) (int, int) {
	return int(x * float64(r.cols) / config.CanvasWidth), int(y * float64(r.rows) / config.CanvasHeight)
}

// CanvasPoint 字符格中心对应的画布坐标
func (r *ScreenRenderer) CanvasPoint(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * config.CanvasWidth / float64(r.cols),
		(float64(row) + 0.5) * config.CanvasHeight / float64(r.rows)
}

// span 矩形覆盖的字符格范围，至少一格
func (r *ScreenRenderer) span(dest render.Rect) (c0, r0, c1, r1 int) {
	c0, r0 = r.cell(dest.X, dest.Y)
	c1, r1 = r.cell(dest.X+dest.W, dest.Y+dest.H)
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}
	return
}

// DrawEntity 用精灵字符填充矩形
// 卡片画成色块，其余精灵画成带颜色的字符
func (r *ScreenRenderer) DrawEntity(sprite string, frame render.FrameRect, dest render.Rect) {
	col := toColor(render.SpriteColor(sprite, frame.Index))
	glyph := Glyph(sprite)
	c0, r0, c1, r1 := r.span(dest)
	for y := r0; y < r1; y++ {
		for x := c0; x < c1; x++ {
			under, ok := r.Cell(x, y)
			if !ok {
				continue
			}
			if glyph == ' ' {
				r.set(x, y, Cell{Rune: ' ', FG: tcell.ColorBlack, BG: col})
				continue
			}
			r.set(x, y, Cell{Rune: glyph, FG: col, BG: under.BG})
		}
	}
}

// FillRect 填充背景色
// 半透明颜色只改背景，保留下面的字符
func (r *ScreenRenderer) FillRect(dest render.Rect, c color.Color) {
	col := toColor(c)
	_, _, _, a := c.RGBA()
	c0, r0, c1, r1 := r.span(dest)
	for y := r0; y < r1; y++ {
		for x := c0; x < c1; x++ {
			under, ok := r.Cell(x, y)
			if !ok {
				continue
			}
			if a < 0xffff {
				under.BG = col
				r.set(x, y, under)
				continue
			}
			r.set(x, y, Cell{Rune: ' ', FG: under.FG, BG: col})
		}
	}
}

// DrawText 从左上角所在字符格开始写文字，保留背景色
func (r *ScreenRenderer) DrawText(s string, x, y float64, c color.Color) {
	col, row := r.cell(x, y)
	fg := toColor(c)
	for i, ch := range []rune(s) {
		under, ok := r.Cell(col+i, row)
		if !ok {
			continue
		}
		r.set(col+i, row, Cell{Rune: ch, FG: fg, BG: under.BG})
	}
}

func toColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
