package entities

import (
	"fmt"

	"github.com/decker502/lawndefense/pkg/components"
	"github.com/decker502/lawndefense/pkg/config"
	"github.com/decker502/lawndefense/pkg/ecs"
	"github.com/decker502/lawndefense/pkg/types"
)

// plantAnimationFrames 植物待机动画帧数
const plantAnimationFrames = 4

// NewPlantEntity 在指定格子创建 1 级植物
// 植物占满格子（四周留 CellPad 边距），属性取自 1 级配置
//
// 返回:
//   - ecs.EntityID: 创建的植物实体ID
//   - error: 植物类型未配置或格子越界时返回错误
func NewPlantEntity(em *ecs.EntityManager, stats *config.PlantStatsConfig, plantType types.PlantType, row, col int) (ecs.EntityID, error) {
	if em == nil || stats == nil {
		return 0, fmt.Errorf("entity manager and plant stats cannot be nil")
	}
	if row < 0 || row >= config.GridRows || col < 0 || col >= config.GridColumns {
		return 0, fmt.Errorf("cell (%d, %d) is outside the lawn", row, col)
	}
	base, ok := stats.GetPlantStats(plantType)
	if !ok {
		return 0, fmt.Errorf("no stats for plant %s", plantType)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{
		X:      config.ColLeft(col) + config.CellPad,
		Y:      config.RowTop(row) + config.CellPad,
		Width:  config.CellWidth - 2*config.CellPad,
		Height: config.CellHeight - 2*config.CellPad,
	})
	ecs.AddComponent(em, id, &components.PlantComponent{
		PlantType:      plantType,
		GridRow:        row,
		GridCol:        col,
		Level:          1,
		Upgradeable:    base.Upgradeable,
		Cost:           base.Cost,
		Damage:         base.Damage,
		AttackInterval: base.Interval,
		AttackRange:    base.Range,
		SunValue:       base.SunValue,
		SunInterval:    base.Interval,
		DamagePerTick:  base.DamagePerTick,
		ArmDelay:       base.ArmDelay,
		Counter:        plantInitialCounter(plantType),
	})
	ecs.AddComponent(em, id, &components.HealthComponent{
		CurrentHealth: base.Health,
		MaxHealth:     base.Health,
	})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Name:       plantType.ConfigKey(),
		FrameCount: plantAnimationFrames,
		FrameDelay: 15,
	})
	ecs.AddComponent(em, id, &components.TooltipComponent{})
	return id, nil
}

// plantInitialCounter 植物自身计数器的初始值
// 向日葵从 1 开始计数，种下后不会立即产出阳光
func plantInitialCounter(plantType types.PlantType) int {
	if plantType == types.PlantSunflower {
		return 1
	}
	return 0
}
