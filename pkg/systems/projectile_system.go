package systems

import (
	"github.com/decker502/lawndefense/pkg/components"
	"github.com/decker502/lawndefense/pkg/config"
	"github.com/decker502/lawndefense/pkg/ecs"
	"github.com/decker502/lawndefense/pkg/entities"
	"github.com/decker502/lawndefense/pkg/game"
)

// parabolicHitWindow 抛物线子弹在基准线以上多少像素内可以命中
const parabolicHitWindow = 20.0

// ProjectileSystem 子弹系统
// 职责：
// - 按轨迹类型移动子弹
// - 检测与僵尸的碰撞，命中第一个僵尸后标记删除
// - 飞出屏幕右侧的子弹标记删除
type ProjectileSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	audio         game.AudioPlayer
}

// NewProjectileSystem 创建子弹系统
func NewProjectileSystem(em *ecs.EntityManager, gs *game.GameState, audio game.AudioPlayer) *ProjectileSystem {
	return &ProjectileSystem{
		entityManager: em,
		gameState:     gs,
		audio:         orSilent(audio),
	}
}

// Update 移动子弹并处理命中
func (s *ProjectileSystem) Update() {
	speed := float64(s.gameState.GameSpeed)
	ids := ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](s.entityManager)

	for _, id := range ids {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if proj.Delete {
			continue
		}

		move(proj, pos, speed)

		if pos.X > config.CanvasWidth {
			proj.Delete = true
			continue
		}

		if !canHit(proj, pos) {
			continue
		}
		s.collide(proj, pos)
	}
}

// move 按轨迹类型前进一帧
func move(proj *components.ProjectileComponent, pos *components.PositionComponent, speed float64) {
	pos.X += proj.Speed * speed

	switch proj.Kind {
	case components.ProjectileTop, components.ProjectileBottom:
		if proj.Traveled < config.CellHeight {
			step := proj.Speed * speed
			if proj.Traveled+step > config.CellHeight {
				step = config.CellHeight - proj.Traveled
			}
			proj.Traveled += step
			if proj.Kind == components.ProjectileTop {
				pos.Y -= step
			} else {
				pos.Y += step
			}
		}
	case components.ProjectileParabolic:
		proj.VY += entities.ParabolicGravity * speed
		pos.Y += proj.VY * speed
		// 落地后弹起，继续沿本行前进
		if pos.Y >= proj.BaselineY && proj.VY > 0 {
			pos.Y = proj.BaselineY
			proj.VY = entities.ParabolicInitialVY
		}
	}
}

// canHit 抛物线子弹只在下落且接近基准线时命中
func canHit(proj *components.ProjectileComponent, pos *components.PositionComponent) bool {
	if proj.Kind != components.ProjectileParabolic {
		return true
	}
	return proj.VY >= 0 && pos.Y >= proj.BaselineY-parabolicHitWindow
}

// projectileRow 子弹当前所在行
// 抛物线子弹始终属于发射行，其余按垂直中心计算
func projectileRow(proj *components.ProjectileComponent, pos *components.PositionComponent) int {
	if proj.Kind == components.ProjectileParabolic {
		return proj.Row
	}
	return config.RowAt(pos.CenterY())
}

// collide 命中同行第一个重叠的存活僵尸
func (s *ProjectileSystem) collide(proj *components.ProjectileComponent, pos *components.PositionComponent) {
	row := projectileRow(proj, pos)
	for _, z := range liveZombies(s.entityManager) {
		if z.Zombie.Row != row || !pos.Overlaps(z.Pos) {
			continue
		}
		z.Health.CurrentHealth -= proj.Damage
		proj.Delete = true
		s.audio.Play(game.SoundHit)
		return
	}
}

// ClearProjectiles 立即删除所有子弹（进入下一关时）
func ClearProjectiles(em *ecs.EntityManager) int {
	ids := ecs.GetEntitiesWith1[*components.ProjectileComponent](em)
	for _, id := range ids {
		em.DestroyEntity(id)
	}
	em.RemoveMarkedEntities()
	return len(ids)
}
