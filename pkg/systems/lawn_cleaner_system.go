package systems

import (
	"log"

	"github.com/decker502/lawndefense/pkg/components"
	"github.com/decker502/lawndefense/pkg/config"
	"github.com/decker502/lawndefense/pkg/ecs"
	"github.com/decker502/lawndefense/pkg/game"
)

// LawnCleanerSystem 除草车系统
// 职责：
// - 本行有僵尸碰到除草车时触发（每辆只触发一次）
// - 触发后向右行驶，消灭沿途本行的僵尸（击杀走僵尸的正常死亡流程）
// - 驶出屏幕后标记删除
type LawnCleanerSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	audio         game.AudioPlayer
}

// NewLawnCleanerSystem 创建除草车系统
func NewLawnCleanerSystem(em *ecs.EntityManager, gs *game.GameState, audio game.AudioPlayer) *LawnCleanerSystem {
	return &LawnCleanerSystem{
		entityManager: em,
		gameState:     gs,
		audio:         orSilent(audio),
	}
}

// Update 更新除草车
func (s *LawnCleanerSystem) Update() {
	ids := ecs.GetEntitiesWith2[*components.LawnCleanerComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		cleaner, _ := ecs.GetComponent[*components.LawnCleanerComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if cleaner.Delete {
			continue
		}

		if !cleaner.Triggered {
			if s.zombieReached(cleaner.Row, pos) {
				cleaner.Triggered = true
				s.audio.Play(game.SoundLawnCleaner)
				log.Printf("[LawnCleanerSystem] Lawn cleaner triggered in row %d", cleaner.Row)
			} else {
				continue
			}
		}

		pos.X += cleaner.Speed * float64(s.gameState.GameSpeed)
		for _, z := range liveZombies(s.entityManager) {
			if z.Zombie.Row == cleaner.Row && z.Pos.X <= pos.Right() && z.Pos.Right() >= pos.X {
				z.Health.CurrentHealth = 0
			}
		}

		if pos.X > config.CanvasWidth {
			cleaner.Delete = true
		}
	}
}

// zombieReached 本行是否有存活僵尸到达除草车
func (s *LawnCleanerSystem) zombieReached(row int, pos *components.PositionComponent) bool {
	for _, z := range liveZombies(s.entityManager) {
		if z.Zombie.Row == row && z.Pos.X <= pos.Right() {
			return true
		}
	}
	return false
}
