package entities

import (
	"github.com/decker502/lawndefense/pkg/components"
	"github.com/decker502/lawndefense/pkg/config"
	"github.com/decker502/lawndefense/pkg/ecs"
)

// 除草车参数
const (
	LawnCleanerHeight = 50.0
	LawnCleanerSpeed  = 6.0 // 触发后的行驶速度（像素/帧）
)

// NewLawnCleanerEntity 在指定行的房子前创建除草车
func NewLawnCleanerEntity(em *ecs.EntityManager, row int) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{
		X:      config.LawnCleanerX,
		Y:      config.RowTop(row) + config.LawnCleanerOffsetY,
		Width:  config.LawnCleanerWidth,
		Height: LawnCleanerHeight,
	})
	ecs.AddComponent(em, id, &components.LawnCleanerComponent{Row: row, Speed: LawnCleanerSpeed})
	ecs.AddComponent(em, id, &components.SpriteComponent{Name: "lawn_cleaner", FrameCount: 1})
	return id
}

// NewLawnCleaners 为每一行创建除草车
func NewLawnCleaners(em *ecs.EntityManager) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, config.GridRows)
	for row := 0; row < config.GridRows; row++ {
		ids = append(ids, NewLawnCleanerEntity(em, row))
	}
	return ids
}
