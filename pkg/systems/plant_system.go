package systems

import (
	"log"

	"github.com/decker502/lawndefense/pkg/components"
	"github.com/decker502/lawndefense/pkg/config"
	"github.com/decker502/lawndefense/pkg/ecs"
	"github.com/decker502/lawndefense/pkg/game"
)

// PlantSystem 植物系统
// 职责：
// - 按植物类型分派攻击行为
// - 处理僵尸接触（啃食、地刺伤害）
// - 移除生命值耗尽的植物并放行被阻挡的僵尸
type PlantSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	stats         *config.PlantStatsConfig
	audio         game.AudioPlayer
}

// NewPlantSystem 创建植物系统
func NewPlantSystem(em *ecs.EntityManager, gs *game.GameState, stats *config.PlantStatsConfig, audio game.AudioPlayer) *PlantSystem {
	return &PlantSystem{
		entityManager: em,
		gameState:     gs,
		stats:         stats,
		audio:         orSilent(audio),
	}
}

// Update 更新所有植物
func (s *PlantSystem) Update() {
	plants := ecs.GetEntitiesWith3[*components.PlantComponent, *components.PositionComponent, *components.HealthComponent](s.entityManager)

	for _, id := range plants {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		plant, _ := ecs.GetComponent[*components.PlantComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)

		ctx := &PlantContext{
			EM:     s.entityManager,
			State:  s.gameState,
			Stats:  s.stats,
			Audio:  s.audio,
			Plant:  plant,
			Pos:    pos,
			Health: health,
		}
		behavior := BehaviorFor(plant.PlantType)
		behavior.Attack(ctx, id)
		behavior.HandleCollision(ctx, id)

		if health.IsDead() {
			s.RemovePlant(id)
		}
	}
}

// RemovePlant 移除植物并放行与它重叠的僵尸
// 植物被吃掉和被铲除都走这里
func (s *PlantSystem) RemovePlant(id ecs.EntityID) {
	if s.entityManager.IsMarkedForDestroy(id) {
		return
	}
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
		ReleaseZombies(s.entityManager, pos)
	}
	if plant, ok := ecs.GetComponent[*components.PlantComponent](s.entityManager, id); ok {
		log.Printf("[PlantSystem] Plant %s removed at (%d, %d)", plant.PlantType, plant.GridRow, plant.GridCol)
	}
	s.entityManager.DestroyEntity(id)
}

// ReleaseZombies 让与 pos 重叠的僵尸恢复前进
func ReleaseZombies(em *ecs.EntityManager, pos *components.PositionComponent) {
	for _, z := range overlappingZombies(em, pos, false) {
		z.Zombie.Increment = z.Zombie.Velocity
		z.Zombie.Attacking = false
	}
}

// PlantAt 返回占据指定格子的植物
func PlantAt(em *ecs.EntityManager, row, col int) (ecs.EntityID, *components.PlantComponent, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.PlantComponent](em) {
		if em.IsMarkedForDestroy(id) {
			continue
		}
		plant, _ := ecs.GetComponent[*components.PlantComponent](em, id)
		if plant.GridRow == row && plant.GridCol == col {
			return id, plant, true
		}
	}
	return 0, nil, false
}
