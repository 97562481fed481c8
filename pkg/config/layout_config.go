package config

import "math"

// 布局配置常量
// 本文件定义了游戏画布、草坪网格和 UI 元素的布局参数
// 所有坐标使用画布坐标系（左上角为原点）
const (
	// CanvasWidth 画布宽度，僵尸从右边界外生成
	CanvasWidth = 1400.0

	// CanvasHeight 画布高度
	CanvasHeight = 720.0

	// GridColStart 草坪网格起始X坐标
	GridColStart = 400.0

	// GridRowStart 草坪网格起始Y坐标
	GridRowStart = 110.0

	// GridColumns 草坪列数
	GridColumns = 9

	// GridRows 草坪行数
	GridRows = 5

	// CellWidth 每个格子的宽度（像素）
	CellWidth = 100.0

	// CellHeight 每个格子的高度（像素）
	CellHeight = 110.0

	// CellPad 植物与格子边缘的内边距
	CellPad = 5.0

	// GridColEnd 草坪网格结束X坐标
	GridColEnd = GridColStart + float64(GridColumns)*CellWidth // 1300.0
)

// 除草车布局
const (
	// LawnCleanerWidth 除草车宽高（正方形）
	LawnCleanerWidth = 50.0

	// LawnCleanerX 除草车停靠的X坐标（网格左侧）
	LawnCleanerX = GridColStart - LawnCleanerWidth // 350.0

	// LawnCleanerOffsetY 除草车相对行顶部的Y偏移
	LawnCleanerOffsetY = 30.0

	// HouseBoundaryX 僵尸越过此X坐标即判定游戏失败
	HouseBoundaryX = GridColStart - LawnCleanerWidth
)

// UI 元素布局
const (
	// CardX 卡片栏X坐标
	CardX = 20.0
	// CardWidth 卡片宽度
	CardWidth = 100.0
	// CardHeight 卡片高度
	CardHeight = 59.0
	// CardSpacing 相邻卡片的纵向间距
	CardSpacing = 65.0

	// SunCounterX, SunCounterY 阳光计数器位置（被收集的阳光飞向这里）
	SunCounterX = 20.0
	SunCounterY = 15.0

	// ButtonSize 音乐、音效、速度按钮边长
	ButtonSize = 40.0
)

// Rect 轴对齐矩形（画布坐标）
type Rect struct {
	X, Y, W, H float64
}

// Contains 判断点是否在矩形内（含边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// ShovelBounds 铲子按钮区域
var ShovelBounds = Rect{X: 200, Y: 15, W: 85, H: 85}

// MusicBounds 音乐开关按钮区域
var MusicBounds = Rect{X: CanvasWidth - 300, Y: 15, W: ButtonSize, H: ButtonSize}

// VolumeBounds 音效开关按钮区域
var VolumeBounds = Rect{X: CanvasWidth - 350, Y: 15, W: ButtonSize, H: ButtonSize}

// SpeedBounds 游戏速度按钮区域
var SpeedBounds = Rect{X: CanvasWidth - 400, Y: 15, W: ButtonSize, H: ButtonSize}

// CardBounds 返回第 index 张卡片的区域
func CardBounds(index int) Rect {
	return Rect{
		X: CardX,
		Y: GridRowStart + CardSpacing*float64(index),
		W: CardWidth,
		H: CardHeight,
	}
}

// RowTop 返回第 row 行（0-based）的顶部Y坐标
func RowTop(row int) float64 {
	return GridRowStart + float64(row)*CellHeight
}

// ColLeft 返回第 col 列（0-based）的左侧X坐标
func ColLeft(col int) float64 {
	return GridColStart + float64(col)*CellWidth
}

// RowAt 返回Y坐标所在的行号
// Y 在网格上方或下方时返回 -1 或 GridRows，调用方需自行判断范围
func RowAt(y float64) int {
	if y < GridRowStart {
		return -1
	}
	row := int(math.Floor((y - GridRowStart) / CellHeight))
	if row > GridRows {
		row = GridRows
	}
	return row
}

// CellAt 将画布坐标转换为网格坐标
// 返回值：col, row, 是否在网格范围内
func CellAt(x, y float64) (col, row int, ok bool) {
	if x < GridColStart || x >= GridColEnd || y < GridRowStart || y >= RowTop(GridRows) {
		return 0, 0, false
	}
	col = int((x - GridColStart) / CellWidth)
	row = int((y - GridRowStart) / CellHeight)
	return col, row, true
}
