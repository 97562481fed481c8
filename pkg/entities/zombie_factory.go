package entities

import (
	"fmt"

	"github.com/decker502/lawndefense/pkg/components"
	"github.com/decker502/lawndefense/pkg/config"
	"github.com/decker502/lawndefense/pkg/ecs"
	"github.com/decker502/lawndefense/pkg/types"
)

// zombieWalkFrames 僵尸行走动画帧数
const zombieWalkFrames = 6

// ZombieSprite 僵尸的精灵名
func ZombieSprite(zombieType types.ZombieType) string {
	return "zombie_" + zombieType.String()
}

// NewZombieEntity 在指定行生成僵尸
// 难度倍率在此一次性作用于血量和速度，之后不再变化
//
// 参数:
//   - em: 实体管理器
//   - stats: 僵尸属性表
//   - preset: 当前难度
//   - zombieType: 僵尸类型
//   - row: 生成行索引 (0-4)
//   - spawnX: 生成位置（通常在屏幕右侧边缘）
func NewZombieEntity(em *ecs.EntityManager, stats *config.ZombieStatsConfig, preset config.DifficultyPreset, zombieType types.ZombieType, row int, spawnX float64) (ecs.EntityID, error) {
	if em == nil || stats == nil {
		return 0, fmt.Errorf("entity manager and zombie stats cannot be nil")
	}
	if row < 0 || row >= config.GridRows {
		return 0, fmt.Errorf("row %d is outside the lawn", row)
	}
	base, ok := stats.GetZombieStats(zombieType)
	if !ok {
		return 0, fmt.Errorf("no stats for zombie %s", zombieType)
	}

	health := base.Health * preset.ZombieHealthMultiplier
	velocity := base.Velocity * preset.ZombieSpeedMultiplier

	width, height := base.Width, base.Height
	if width == 0 {
		width = config.CellWidth - 20
	}
	if height == 0 {
		height = config.CellHeight - 2*config.CellPad
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{
		X:      spawnX,
		Y:      config.RowTop(row) + config.CellPad,
		Width:  width,
		Height: height,
	})
	ecs.AddComponent(em, id, &components.ZombieComponent{
		ZombieType: zombieType,
		Row:        row,
		Velocity:   velocity,
		Increment:  velocity,
		Flying:     base.Flying,
	})
	ecs.AddComponent(em, id, &components.HealthComponent{
		CurrentHealth: health,
		MaxHealth:     health,
	})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Name:       ZombieSprite(zombieType),
		FrameCount: zombieWalkFrames,
		FrameDelay: 10,
	})
	return id, nil
}
