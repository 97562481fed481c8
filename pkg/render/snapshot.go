package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// SnapshotRenderer 离屏渲染器，把一帧画到内存图像中
// 用于无界面回放和生成截图
type SnapshotRenderer struct {
	dc    *gg.Context
	calls int
}

// NewSnapshotRenderer 创建指定尺寸的离屏渲染器
func NewSnapshotRenderer(width, height int) *SnapshotRenderer {
	dc := gg.NewContext(width, height)
	dc.SetFontFace(basicfont.Face7x13)
	return &SnapshotRenderer{dc: dc}
}

// Clear 用底色清空画布
func (r *SnapshotRenderer) Clear(c color.Color) {
	r.dc.SetColor(c)
	r.dc.Clear()
	r.calls = 0
}

// DrawEntity 以圆角矩形绘制精灵占位图
func (r *SnapshotRenderer) DrawEntity(sprite string, frame FrameRect, dest Rect) {
	r.calls++
	r.dc.SetColor(SpriteColor(sprite, frame.Index))
	radius := dest.W / 6
	if dest.H < dest.W {
		radius = dest.H / 6
	}
	r.dc.DrawRoundedRectangle(dest.X, dest.Y, dest.W, dest.H, radius)
	r.dc.Fill()

	r.dc.SetColor(color.RGBA{A: 120})
	r.dc.SetLineWidth(1)
	r.dc.DrawRoundedRectangle(dest.X, dest.Y, dest.W, dest.H, radius)
	r.dc.Stroke()
}

// FillRect 填充矩形
func (r *SnapshotRenderer) FillRect(dest Rect, c color.Color) {
	r.calls++
	r.dc.SetColor(c)
	r.dc.DrawRectangle(dest.X, dest.Y, dest.W, dest.H)
	r.dc.Fill()
}

// DrawText 以左上角为锚点绘制文字
func (r *SnapshotRenderer) DrawText(s string, x, y float64, c color.Color) {
	r.calls++
	r.dc.SetColor(c)
	r.dc.DrawStringAnchored(s, x, y, 0, 1)
}

// Calls 自上次 Clear 以来的绘制调用次数
func (r *SnapshotRenderer) Calls() int {
	return r.calls
}

// Image 返回当前画布
func (r *SnapshotRenderer) Image() image.Image {
	return r.dc.Image()
}

// SavePNG 把当前画布保存为 PNG
func (r *SnapshotRenderer) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", path, err)
	}
	return nil
}
