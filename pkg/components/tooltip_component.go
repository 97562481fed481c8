package components

// TooltipComponent 悬停提示
// 指针停留在植物上时显示名称、等级和升级费用
type TooltipComponent struct {
	IsVisible bool
	Text      string
	X         float64
	Y         float64
}
