package components

import (
	"time"

	"github.com/decker502/lawndefense/pkg/types"
)

// PlantCardComponent 表示植物选择卡片的数据
// 冷却使用真实时间，不受游戏速度影响
type PlantCardComponent struct {
	// PlantType 植物类型
	PlantType types.PlantType
	// Index 卡片在卡片栏中的位置
	Index int
	// SunCost 种植消耗的阳光数量
	SunCost int
	// ReadyAt 冷却结束时刻，零值表示可用
	ReadyAt time.Time
}

// IsReady 卡片在 now 时刻是否已冷却
func (c *PlantCardComponent) IsReady(now time.Time) bool {
	return !now.Before(c.ReadyAt)
}

// Remaining 剩余冷却时间
func (c *PlantCardComponent) Remaining(now time.Time) time.Duration {
	if c.IsReady(now) {
		return 0
	}
	return c.ReadyAt.Sub(now)
}
