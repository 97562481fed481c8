package systems

import (
	"testing"

	"github.com/decker502/lawndefense/pkg/components"
	"github.com/decker502/lawndefense/pkg/entities"
	"github.com/decker502/lawndefense/pkg/types"
)

// TestCleanupRemovesFlaggedEntities 测试清理所有带删除标记的实体
func TestCleanupRemovesFlaggedEntities(t *testing.T) {
	w := newTestWorld(t)
	zombieID := w.zombie(t, types.ZombieNormal, 0, 900)
	keptZombie := w.zombie(t, types.ZombieNormal, 1, 900)
	projID := entities.NewProjectileEntity(w.em, components.ProjectileStraight, 500, 150, 10, 0)
	sunID := entities.NewSunEntity(w.em, 500, 300, 300, 25)
	cleanerID := entities.NewLawnCleanerEntity(w.em, 0)
	plantID := w.plant(t, types.PlantWallNut, 0, 0)

	mustComponent[*components.ZombieComponent](t, w.em, zombieID).Delete = true
	mustComponent[*components.ProjectileComponent](t, w.em, projID).Delete = true
	mustComponent[*components.SunComponent](t, w.em, sunID).Delete = true
	mustComponent[*components.LawnCleanerComponent](t, w.em, cleanerID).Delete = true

	if n := NewCleanupSystem(w.em).Update(); n != 4 {
		t.Errorf("Expected 4 entities removed, got %d", n)
	}
	for name, exists := range map[string]bool{
		"zombie":     w.em.Exists(zombieID),
		"projectile": w.em.Exists(projID),
		"sun":        w.em.Exists(sunID),
		"cleaner":    w.em.Exists(cleanerID),
	} {
		if exists {
			t.Errorf("Expected flagged %s removed", name)
		}
	}
	if !w.em.Exists(keptZombie) || !w.em.Exists(plantID) {
		t.Error("Expected unflagged entities kept")
	}
}

// TestAnimationAdvancesWithSpeed 测试精灵帧随游戏速度推进
func TestAnimationAdvancesWithSpeed(t *testing.T) {
	tests := []struct {
		name     string
		speed    int
		updates  int
		expected int
	}{
		{"1 倍速未到一帧", 1, 9, 0},
		{"1 倍速一帧", 1, 10, 1},
		{"3 倍速", 3, 10, 3},
		{"循环回到第一帧", 2, 30, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			id := w.zombie(t, types.ZombieNormal, 0, 900)
			w.gs.GameSpeed = tt.speed
			as := NewAnimationSystem(w.em, w.gs)
			for i := 0; i < tt.updates; i++ {
				as.Update()
			}
			if got := mustComponent[*components.SpriteComponent](t, w.em, id).Frame; got != tt.expected {
				t.Errorf("Expected frame %d, got %d", tt.expected, got)
			}
		})
	}
}
