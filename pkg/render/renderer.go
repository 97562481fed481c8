// Package render 定义模拟核心与各前端之间的绘制接口
//
// 模拟只说明"哪个精灵的第几帧画到哪个矩形"，
// 图像、配色和字体由具体渲染器决定（ebiten、终端、离屏 PNG）。
package render

import (
	"image/color"
	"strings"

	"github.com/decker502/lawndefense/pkg/config"
)

// Rect 屏幕坐标中的矩形
type Rect = config.Rect

// FrameRect 精灵表中的一帧
// 帧按水平方向排列，源矩形为 (Index*W, 0, W, H)
type FrameRect struct {
	Index int
	W     float64
	H     float64
}

// Renderer 绘制能力
type Renderer interface {
	DrawEntity(sprite string, frame FrameRect, dest Rect)
	FillRect(dest Rect, c color.Color)
	DrawText(s string, x, y float64, c color.Color)
}

// 界面常用颜色
var (
	ColorLawnLight = color.RGBA{R: 110, G: 170, B: 60, A: 255}
	ColorLawnDark  = color.RGBA{R: 95, G: 150, B: 50, A: 255}
	ColorHouse     = color.RGBA{R: 120, G: 90, B: 60, A: 255}
	ColorPanel     = color.RGBA{R: 90, G: 60, B: 30, A: 230}
	ColorCooldown  = color.RGBA{R: 0, G: 0, B: 0, A: 140}
	ColorSelected  = color.RGBA{R: 255, G: 230, B: 0, A: 120}
	ColorText      = color.White
	ColorWarning   = color.RGBA{R: 255, G: 80, B: 80, A: 255}
	ColorOverlay   = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

// spriteColors 精灵名前缀对应的占位颜色
var spriteColors = []struct {
	prefix string
	c      color.RGBA
}{
	{"sunflower", color.RGBA{R: 250, G: 210, B: 40, A: 255}},
	{"peashooter", color.RGBA{R: 60, G: 200, B: 60, A: 255}},
	{"repeater", color.RGBA{R: 30, G: 150, B: 40, A: 255}},
	{"threepeashooter", color.RGBA{R: 90, G: 220, B: 120, A: 255}},
	{"chomper", color.RGBA{R: 160, G: 60, B: 200, A: 255}},
	{"wallnut", color.RGBA{R: 170, G: 120, B: 60, A: 255}},
	{"potatomines", color.RGBA{R: 200, G: 160, B: 100, A: 255}},
	{"spikeweed", color.RGBA{R: 90, G: 110, B: 90, A: 255}},
	{"melonpult", color.RGBA{R: 40, G: 170, B: 110, A: 255}},
	{"zombie_dying", color.RGBA{R: 90, G: 90, B: 90, A: 160}},
	{"zombie_balloon", color.RGBA{R: 220, G: 80, B: 80, A: 255}},
	{"zombie_dragon", color.RGBA{R: 180, G: 40, B: 40, A: 255}},
	{"zombie_football", color.RGBA{R: 150, G: 40, B: 40, A: 255}},
	{"zombie_buckethead", color.RGBA{R: 150, G: 150, B: 160, A: 255}},
	{"zombie_conehead", color.RGBA{R: 230, G: 130, B: 40, A: 255}},
	{"zombie", color.RGBA{R: 120, G: 140, B: 120, A: 255}},
	{"pea", color.RGBA{R: 120, G: 230, B: 70, A: 255}},
	{"melon", color.RGBA{R: 60, G: 190, B: 60, A: 255}},
	{"sun", color.RGBA{R: 255, G: 230, B: 60, A: 255}},
	{"lawn_cleaner", color.RGBA{R: 200, G: 40, B: 40, A: 255}},
	{"card", color.RGBA{R: 200, G: 180, B: 120, A: 255}},
}

// SpriteColor 返回精灵的占位颜色
// 动画帧用亮度的轻微变化表示
func SpriteColor(sprite string, frame int) color.RGBA {
	for _, sc := range spriteColors {
		if strings.HasPrefix(sprite, sc.prefix) {
			c := sc.c
			shift := uint8((frame % 4) * 6)
			if c.R < 255-shift {
				c.R += shift
			}
			if c.G < 255-shift {
				c.G += shift
			}
			return c
		}
	}
	return color.RGBA{R: 255, G: 0, B: 255, A: 255}
}
