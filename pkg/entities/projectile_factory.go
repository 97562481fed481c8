package entities

import (
	"github.com/decker502/lawndefense/pkg/components"
	"github.com/decker502/lawndefense/pkg/ecs"
)

// 子弹参数
const (
	ProjectileSpeed    = 5.0  // 水平速度（像素/帧）
	ProjectileSize     = 25.0 // 豌豆尺寸
	MelonSize          = 35.0 // 西瓜尺寸
	ParabolicInitialVY = -8.0 // 抛物线初始垂直速度
	ParabolicGravity   = 0.4  // 抛物线重力加速度
)

// NewProjectileEntity 创建子弹
// (x, y) 为子弹左上角，row 为发射时所在行
func NewProjectileEntity(em *ecs.EntityManager, kind components.ProjectileKind, x, y, damage float64, row int) ecs.EntityID {
	size := ProjectileSize
	if kind == components.ProjectileParabolic {
		size = MelonSize
	}

	proj := &components.ProjectileComponent{
		Kind:      kind,
		Damage:    damage,
		Speed:     ProjectileSpeed,
		BaselineY: y,
		Row:       row,
	}
	if kind == components.ProjectileParabolic {
		proj.VY = ParabolicInitialVY
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y, Width: size, Height: size})
	ecs.AddComponent(em, id, proj)
	ecs.AddComponent(em, id, &components.SpriteComponent{Name: kind.String(), FrameCount: 1})
	return id
}
