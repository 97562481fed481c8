package entities

import (
	"github.com/decker502/lawndefense/pkg/components"
	"github.com/decker502/lawndefense/pkg/config"
	"github.com/decker502/lawndefense/pkg/ecs"
)

// NewLawnGrid 创建草坪上全部可种植格子
// 按行优先顺序返回，共 GridRows*GridColumns 个
func NewLawnGrid(em *ecs.EntityManager) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, config.GridRows*config.GridColumns)
	for row := 0; row < config.GridRows; row++ {
		for col := 0; col < config.GridColumns; col++ {
			id := em.CreateEntity()
			ecs.AddComponent(em, id, &components.PositionComponent{
				X:      config.ColLeft(col),
				Y:      config.RowTop(row),
				Width:  config.CellWidth,
				Height: config.CellHeight,
			})
			ecs.AddComponent(em, id, &components.GridCellComponent{Row: row, Col: col})
			ids = append(ids, id)
		}
	}
	return ids
}
