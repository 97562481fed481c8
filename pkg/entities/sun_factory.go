package entities

import (
	"github.com/decker502/lawndefense/pkg/components"
	"github.com/decker502/lawndefense/pkg/ecs"
)

// 阳光参数
const (
	SunSize      = 60.0 // 阳光尺寸
	SunLifetime  = 600  // 落地后未收集阳光的存在时间（帧）
	SkySunValue  = 25   // 天降阳光数值
	SunFallSpeed = 1.0  // 下落速度（像素/帧）

	sunSpriteFrames = 2
)

// NewSunEntity 创建阳光
// 阳光从 (x, y) 下落到 targetY 后停住，落地后超过 SunLifetime 帧未收集则消失
func NewSunEntity(em *ecs.EntityManager, x, y, targetY float64, value int) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y, Width: SunSize, Height: SunSize})
	ecs.AddComponent(em, id, &components.SunComponent{Value: value, TargetY: targetY})
	ecs.AddComponent(em, id, &components.SpriteComponent{Name: "sun", FrameCount: sunSpriteFrames, FrameDelay: 20})
	return id
}
