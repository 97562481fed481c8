package systems

import (
	"github.com/decker502/lawndefense/pkg/components"
	"github.com/decker502/lawndefense/pkg/ecs"
	"github.com/decker502/lawndefense/pkg/game"
)

// AnimationSystem 推进精灵帧
// 只维护帧序号，不涉及图像
type AnimationSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewAnimationSystem 创建动画系统
func NewAnimationSystem(em *ecs.EntityManager, gs *game.GameState) *AnimationSystem {
	return &AnimationSystem{entityManager: em, gameState: gs}
}

// Update 按游戏速度推进所有精灵的帧
func (s *AnimationSystem) Update() {
	for _, id := range ecs.GetEntitiesWith1[*components.SpriteComponent](s.entityManager) {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if sprite.FrameCount <= 1 || sprite.FrameDelay <= 0 {
			continue
		}
		sprite.Elapsed += s.gameState.GameSpeed
		for sprite.Elapsed >= sprite.FrameDelay {
			sprite.Elapsed -= sprite.FrameDelay
			sprite.Frame = (sprite.Frame + 1) % sprite.FrameCount
		}
	}
}
