package systems

import (
	"log"

	"github.com/decker502/lawndefense/pkg/components"
	"github.com/decker502/lawndefense/pkg/config"
	"github.com/decker502/lawndefense/pkg/ecs"
	"github.com/decker502/lawndefense/pkg/game"
)

// ZombieDeathFrames 死亡动画持续的帧数
const ZombieDeathFrames = 60

// ZombieSystem 僵尸系统
// 职责：
// - 检测生命值耗尽，进入死亡状态并计分（每只僵尸只计一次）
// - 按 Increment 和游戏速度向左移动
// - 僵尸进屋时结束游戏
type ZombieSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	audio         game.AudioPlayer
}

// NewZombieSystem 创建僵尸系统
func NewZombieSystem(em *ecs.EntityManager, gs *game.GameState, audio game.AudioPlayer) *ZombieSystem {
	return &ZombieSystem{
		entityManager: em,
		gameState:     gs,
		audio:         orSilent(audio),
	}
}

// Update 更新所有僵尸
func (s *ZombieSystem) Update() {
	speed := float64(s.gameState.GameSpeed)

	for _, z := range queryZombies(s.entityManager) {
		if z.Zombie.Die {
			continue
		}

		if z.Health.CurrentHealth <= 0 {
			s.kill(z)
			continue
		}

		z.Pos.X -= z.Zombie.Increment * speed

		if z.Pos.X < config.HouseBoundaryX && !s.gameState.IsGameOver() {
			s.gameState.Phase = game.PhaseGameOver
			log.Printf("[ZombieSystem] Zombie %s reached the house in row %d, game over", z.Zombie.ZombieType, z.Zombie.Row)
		}
	}
}

// kill 僵尸进入死亡状态
func (s *ZombieSystem) kill(z zombieRef) {
	z.Zombie.Die = true
	z.Zombie.Attacking = false
	z.Zombie.Increment = 0
	s.gameState.RecordKill()

	if z.Zombie.Eaten {
		z.Zombie.Delete = true
		return
	}

	ecs.AddComponent(s.entityManager, z.ID, &components.LifetimeComponent{MaxLifetime: ZombieDeathFrames})
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, z.ID); ok {
		sprite.Name = "zombie_dying"
		sprite.Frame = 0
		sprite.Elapsed = 0
	}
	s.audio.Play(game.SoundZombieDie)
}
