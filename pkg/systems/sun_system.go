package systems

import (
	"math/rand"

	"github.com/decker502/lawndefense/pkg/components"
	"github.com/decker502/lawndefense/pkg/config"
	"github.com/decker502/lawndefense/pkg/ecs"
	"github.com/decker502/lawndefense/pkg/entities"
	"github.com/decker502/lawndefense/pkg/game"
)

// SunSystem 阳光系统
// 职责：
// - 按难度的 sunSpawnRate 从天空掉落阳光
// - 阳光下落到目标高度后开始计算存在时间
// - 指针经过时收集阳光（不需要点击），每个阳光只入账一次
type SunSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	rng           *rand.Rand
	audio         game.AudioPlayer
}

// NewSunSystem 创建阳光系统
func NewSunSystem(em *ecs.EntityManager, gs *game.GameState, rng *rand.Rand, audio game.AudioPlayer) *SunSystem {
	return &SunSystem{
		entityManager: em,
		gameState:     gs,
		rng:           rng,
		audio:         orSilent(audio),
	}
}

// Update 生成、移动并收集阳光
func (s *SunSystem) Update() {
	if s.gameState.Tick(s.gameState.Preset.SunSpawnRate) {
		s.spawnSkySun()
	}
	s.MoveAndCollect()
}

// MoveAndCollect 只移动和收集已有的阳光，不按帧数生成新阳光。
// 过关提示期间帧数冻结，由 GameLoop 单独调用
func (s *SunSystem) MoveAndCollect() {
	speed := float64(s.gameState.GameSpeed)
	pointer := s.gameState.Pointer
	ids := ecs.GetEntitiesWith2[*components.SunComponent, *components.PositionComponent](s.entityManager)

	for _, id := range ids {
		sun, _ := ecs.GetComponent[*components.SunComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if sun.Collected || sun.Delete {
			continue
		}

		if pos.Y < sun.TargetY {
			pos.Y += entities.SunFallSpeed * speed
			if pos.Y >= sun.TargetY {
				pos.Y = sun.TargetY
				ecs.AddComponent(s.entityManager, id, &components.LifetimeComponent{MaxLifetime: entities.SunLifetime})
			}
		}

		if s.contains(pos, pointer.X, pointer.Y) {
			s.Collect(sun)
		}
	}
}

// Collect 收集阳光，重复收集无效
func (s *SunSystem) Collect(sun *components.SunComponent) bool {
	if sun.Collected {
		return false
	}
	sun.Collected = true
	sun.Delete = true
	s.gameState.AddSun(sun.Value)
	s.audio.Play(game.SoundSunCollect)
	return true
}

func (s *SunSystem) contains(pos *components.PositionComponent, x, y float64) bool {
	return x >= pos.X && x < pos.Right() && y >= pos.Y && y < pos.Bottom()
}

// spawnSkySun 在草坪上方随机位置生成一个下落的阳光
func (s *SunSystem) spawnSkySun() ecs.EntityID {
	x := config.GridColStart + s.rng.Float64()*(config.GridColEnd-config.GridColStart-entities.SunSize)
	row := s.rng.Intn(config.GridRows)
	targetY := config.RowTop(row) + (config.CellHeight-entities.SunSize)/2
	return entities.NewSunEntity(s.entityManager, x, -entities.SunSize, targetY, entities.SkySunValue)
}
