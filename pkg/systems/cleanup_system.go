package systems

import (
	"github.com/decker502/lawndefense/pkg/components"
	"github.com/decker502/lawndefense/pkg/ecs"
)

// CleanupSystem 每帧最后执行，移除所有标记删除的实体
type CleanupSystem struct {
	entityManager *ecs.EntityManager
}

// NewCleanupSystem 创建清理系统
func NewCleanupSystem(em *ecs.EntityManager) *CleanupSystem {
	return &CleanupSystem{entityManager: em}
}

// Update 根据各组件的 Delete 标记销毁实体，返回移除数量
func (s *CleanupSystem) Update() int {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith1[*components.ZombieComponent](em) {
		if z, _ := ecs.GetComponent[*components.ZombieComponent](em, id); z.Delete {
			em.DestroyEntity(id)
		}
	}
	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](em) {
		if p, _ := ecs.GetComponent[*components.ProjectileComponent](em, id); p.Delete {
			em.DestroyEntity(id)
		}
	}
	for _, id := range ecs.GetEntitiesWith1[*components.SunComponent](em) {
		if sun, _ := ecs.GetComponent[*components.SunComponent](em, id); sun.Delete {
			em.DestroyEntity(id)
		}
	}
	for _, id := range ecs.GetEntitiesWith1[*components.LawnCleanerComponent](em) {
		if c, _ := ecs.GetComponent[*components.LawnCleanerComponent](em, id); c.Delete {
			em.DestroyEntity(id)
		}
	}
	return em.RemoveMarkedEntities()
}
