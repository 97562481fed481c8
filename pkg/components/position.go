package components

// PositionComponent 实体在屏幕上的位置和尺寸
// X/Y 为左上角坐标
type PositionComponent struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Right 右边界
func (p *PositionComponent) Right() float64 { return p.X + p.Width }

// Bottom 下边界
func (p *PositionComponent) Bottom() float64 { return p.Y + p.Height }

// CenterY 垂直中心
func (p *PositionComponent) CenterY() float64 { return p.Y + p.Height/2 }

// Overlaps 两个矩形是否重叠（边缘相接不算重叠）
func (p *PositionComponent) Overlaps(o *PositionComponent) bool {
	return p.X < o.Right() && o.X < p.Right() && p.Y < o.Bottom() && o.Y < p.Bottom()
}
