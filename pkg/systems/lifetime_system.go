package systems

import (
	"github.com/decker502/lawndefense/pkg/components"
	"github.com/decker502/lawndefense/pkg/ecs"
	"github.com/decker502/lawndefense/pkg/game"
)

// LifetimeSystem 生命周期系统
// 按游戏帧推进 LifetimeComponent，过期后标记所属实体删除
// 用于落地后未收集的阳光和死亡中的僵尸
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewLifetimeSystem 创建生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager, gs *game.GameState) *LifetimeSystem {
	return &LifetimeSystem{entityManager: em, gameState: gs}
}

// Update 推进计时并处理过期
func (s *LifetimeSystem) Update() {
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager) {
		life, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if life.IsExpired {
			continue
		}
		life.CurrentLifetime += s.gameState.GameSpeed
		if life.CurrentLifetime < life.MaxLifetime {
			continue
		}
		life.IsExpired = true

		if sun, ok := ecs.GetComponent[*components.SunComponent](s.entityManager, id); ok && !sun.Collected {
			sun.Delete = true
		}
		if zombie, ok := ecs.GetComponent[*components.ZombieComponent](s.entityManager, id); ok && zombie.Die {
			zombie.Delete = true
		}
	}
}
