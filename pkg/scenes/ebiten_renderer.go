package scenes

import (
	"image/color"

	"github.com/decker502/lawndefense/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// EbitenRenderer 把绘制调用画到 ebiten 屏幕上
// 精灵以占位色块表示，动画帧用颜色深浅区分
type EbitenRenderer struct {
	screen *ebiten.Image
	face   text.Face
}

// NewEbitenRenderer 创建渲染器，字体使用 basicfont
func NewEbitenRenderer() *EbitenRenderer {
	return &EbitenRenderer{face: text.NewGoXFace(basicfont.Face7x13)}
}

// Target 设置本帧的绘制目标
func (r *EbitenRenderer) Target(screen *ebiten.Image) {
	r.screen = screen
}

// DrawEntity 绘制精灵占位图
func (r *EbitenRenderer) DrawEntity(sprite string, frame render.FrameRect, dest render.Rect) {
	c := render.SpriteColor(sprite, frame.Index)
	vector.DrawFilledRect(r.screen, float32(dest.X), float32(dest.Y), float32(dest.W), float32(dest.H), c, true)
	vector.StrokeRect(r.screen, float32(dest.X), float32(dest.Y), float32(dest.W), float32(dest.H), 1, color.RGBA{A: 120}, true)
}

// FillRect 填充矩形
func (r *EbitenRenderer) FillRect(dest render.Rect, c color.Color) {
	vector.DrawFilledRect(r.screen, float32(dest.X), float32(dest.Y), float32(dest.W), float32(dest.H), c, false)
}

// DrawText 以左上角为锚点绘制文字
func (r *EbitenRenderer) DrawText(s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(r.screen, s, r.face, op)
}
