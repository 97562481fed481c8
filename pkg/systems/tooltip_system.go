package systems

import (
	"fmt"

	"github.com/decker502/lawndefense/pkg/components"
	"github.com/decker502/lawndefense/pkg/ecs"
	"github.com/decker502/lawndefense/pkg/game"
)

// tooltipOffsetY 提示文字相对植物顶部的偏移
const tooltipOffsetY = -8.0

// TooltipSystem 指针悬停在植物上时显示名称、等级和升级费用
type TooltipSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewTooltipSystem 创建悬停提示系统
func NewTooltipSystem(em *ecs.EntityManager, gs *game.GameState) *TooltipSystem {
	return &TooltipSystem{entityManager: em, gameState: gs}
}

// Update 按指针位置刷新每株植物的提示
func (s *TooltipSystem) Update() {
	px, py := s.gameState.Pointer.X, s.gameState.Pointer.Y
	ids := ecs.GetEntitiesWith3[
		*components.TooltipComponent,
		*components.PlantComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, id := range ids {
		tip, _ := ecs.GetComponent[*components.TooltipComponent](s.entityManager, id)
		plant, _ := ecs.GetComponent[*components.PlantComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		tip.IsVisible = px >= pos.X && px <= pos.Right() && py >= pos.Y && py <= pos.Bottom()
		if !tip.IsVisible {
			continue
		}
		tip.Text = TooltipText(plant)
		tip.X = pos.X
		tip.Y = pos.Y + tooltipOffsetY
	}
}

// TooltipText 植物的提示文字
func TooltipText(plant *components.PlantComponent) string {
	switch {
	case !plant.Upgradeable:
		return fmt.Sprintf("%s Lv.%d", plant.PlantType, plant.Level)
	case !CanUpgrade(plant):
		return fmt.Sprintf("%s Lv.%d (MAX)", plant.PlantType, plant.Level)
	default:
		return fmt.Sprintf("%s Lv.%d Upgrade: %d", plant.PlantType, plant.Level, UpgradeCost(plant))
	}
}
