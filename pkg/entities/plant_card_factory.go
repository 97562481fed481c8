package entities

import (
	"github.com/decker502/lawndefense/pkg/components"
	"github.com/decker502/lawndefense/pkg/config"
	"github.com/decker502/lawndefense/pkg/ecs"
	"github.com/decker502/lawndefense/pkg/types"
)

// NewPlantCardEntity 创建卡片栏中的一张植物卡片
func NewPlantCardEntity(em *ecs.EntityManager, plantType types.PlantType, index, cost int) ecs.EntityID {
	bounds := config.CardBounds(index)
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: bounds.X, Y: bounds.Y, Width: bounds.W, Height: bounds.H})
	ecs.AddComponent(em, id, &components.PlantCardComponent{PlantType: plantType, Index: index, SunCost: cost})
	return id
}

// NewPlantCards 按卡片栏顺序创建全部卡片
func NewPlantCards(em *ecs.EntityManager, stats *config.PlantStatsConfig) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, len(types.CardOrder))
	for i, pt := range types.CardOrder {
		ids = append(ids, NewPlantCardEntity(em, pt, i, stats.PlantCost(pt)))
	}
	return ids
}
