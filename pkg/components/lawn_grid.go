package components

// GridCellComponent 草坪上的一个可种植格子
// 位置和尺寸保存在同一实体的 PositionComponent 中
type GridCellComponent struct {
	Row int
	Col int
}
