package systems

import (
	"math"
	"testing"

	"github.com/decker502/lawndefense/pkg/components"
	"github.com/decker502/lawndefense/pkg/ecs"
	"github.com/decker502/lawndefense/pkg/game"
	"github.com/decker502/lawndefense/pkg/types"
)

func countProjectiles(em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[*components.ProjectileComponent](em))
}

func countSuns(em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[*components.SunComponent](em))
}

// TestShooterFiring 测试射手在本行有僵尸时按间隔射击
func TestShooterFiring(t *testing.T) {
	tests := []struct {
		name      string
		plant     types.PlantType
		row       int
		zombieRow int
		zombieX   float64
		frames    int
		expected  int
	}{
		{"豌豆射手：前方有僵尸，节拍到达", types.PlantPeaShooter, 2, 2, 1000, 100, 1},
		{"豌豆射手：节拍未到", types.PlantPeaShooter, 2, 2, 1000, 99, 0},
		{"豌豆射手：僵尸在其他行", types.PlantPeaShooter, 2, 3, 1000, 100, 0},
		{"豌豆射手：僵尸在植物身后", types.PlantPeaShooter, 2, 2, 200, 100, 0},
		{"双发射手：一次两颗", types.PlantRepeater, 2, 2, 1000, 100, 2},
		{"三线射手：中间行三颗", types.PlantThreePeaShooter, 2, 2, 1000, 100, 3},
		{"三线射手：相邻行有僵尸也射击", types.PlantThreePeaShooter, 2, 1, 1000, 100, 3},
		{"三线射手：顶行只有两颗", types.PlantThreePeaShooter, 0, 0, 1000, 100, 2},
		{"三线射手：底行只有两颗", types.PlantThreePeaShooter, 4, 4, 1000, 100, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.plant(t, tt.plant, tt.row, 0)
			w.zombie(t, types.ZombieNormal, tt.zombieRow, tt.zombieX)
			w.gs.Frames = tt.frames

			w.plantSystem().Update()

			if got := countProjectiles(w.em); got != tt.expected {
				t.Errorf("Expected %d projectiles, got %d", tt.expected, got)
			}
		})
	}
}

// TestShooterLatchesAttack 测试节拍在没有目标时被锁存，僵尸出现后立即射击
func TestShooterLatchesAttack(t *testing.T) {
	w := newTestWorld(t)
	id := w.plant(t, types.PlantPeaShooter, 1, 0)
	ps := w.plantSystem()

	w.gs.Frames = 100
	ps.Update()
	if countProjectiles(w.em) != 0 {
		t.Fatal("Expected no projectile without a target")
	}
	plant := mustComponent[*components.PlantComponent](t, w.em, id)
	if !plant.AttackNow {
		t.Fatal("Expected attack to be latched")
	}

	w.zombie(t, types.ZombieNormal, 1, 1000)
	w.gs.Frames = 101
	ps.Update()
	if got := countProjectiles(w.em); got != 1 {
		t.Fatalf("Expected latched shot, got %d projectiles", got)
	}
	if plant.AttackNow {
		t.Error("Expected latch to be cleared after firing")
	}
	if w.audio.count(game.SoundShoot) != 1 {
		t.Errorf("Expected shoot sound once, got %d", w.audio.count(game.SoundShoot))
	}
}

// TestZombieContact 测试僵尸啃食植物
func TestZombieContact(t *testing.T) {
	w := newTestWorld(t)
	plantID := w.plant(t, types.PlantWallNut, 0, 1)
	zombieID := w.zombie(t, types.ZombieNormal, 0, 520)
	w.plantSystem().Update()

	health := mustComponent[*components.HealthComponent](t, w.em, plantID)
	if math.Abs(health.CurrentHealth-(1000-PlantContactDamage)) > 1e-9 {
		t.Errorf("Expected health %.1f, got %.4f", 1000-PlantContactDamage, health.CurrentHealth)
	}
	zombie, _, _ := zombieAt(t, w, zombieID)
	if zombie.Increment != 0 || !zombie.Attacking {
		t.Errorf("Expected zombie to stop and attack, got increment=%.2f attacking=%v", zombie.Increment, zombie.Attacking)
	}
}

// TestPlantDeathReleasesZombies 测试植物被吃掉后僵尸恢复前进
func TestPlantDeathReleasesZombies(t *testing.T) {
	w := newTestWorld(t)
	plantID := w.plant(t, types.PlantSunflower, 0, 1)
	zombieID := w.zombie(t, types.ZombieNormal, 0, 520)
	ps := w.plantSystem()

	ps.Update()
	zombie, _, _ := zombieAt(t, w, zombieID)
	if zombie.Increment != 0 {
		t.Fatal("Expected zombie to be blocked")
	}

	mustComponent[*components.HealthComponent](t, w.em, plantID).CurrentHealth = 0.1
	ps.Update()
	w.em.RemoveMarkedEntities()

	if w.em.Exists(plantID) {
		t.Error("Expected dead plant to be removed")
	}
	if zombie.Increment != zombie.Velocity || zombie.Attacking {
		t.Errorf("Expected zombie released, got increment=%.2f attacking=%v", zombie.Increment, zombie.Attacking)
	}
}

// TestSunflowerProducesSun 测试向日葵按自身计数器产出阳光
func TestSunflowerProducesSun(t *testing.T) {
	w := newTestWorld(t)
	w.plant(t, types.PlantSunflower, 2, 3)
	ps := w.plantSystem()

	for i := 0; i < 1998; i++ {
		ps.Update()
	}
	if countSuns(w.em) != 0 {
		t.Fatalf("Expected no sun before the interval, got %d", countSuns(w.em))
	}
	ps.Update()
	if countSuns(w.em) != 1 {
		t.Fatalf("Expected one sun, got %d", countSuns(w.em))
	}

	id := ecs.GetEntitiesWith1[*components.SunComponent](w.em)[0]
	if sun := mustComponent[*components.SunComponent](t, w.em, id); sun.Value != 25 {
		t.Errorf("Expected sun value 25, got %d", sun.Value)
	}
}

// TestChomper 测试大嘴花吞食和咀嚼冷却
func TestChomper(t *testing.T) {
	t.Run("射程内的僵尸被吞掉", func(t *testing.T) {
		w := newTestWorld(t)
		plantID := w.plant(t, types.PlantChomper, 0, 0)
		zombieID := w.zombie(t, types.ZombieBucketHead, 0, 520)
		w.plantSystem().Update()

		zombie, _, health := zombieAt(t, w, zombieID)
		if health.CurrentHealth != 0 || !zombie.Eaten {
			t.Fatalf("Expected zombie eaten, got health=%.1f eaten=%v", health.CurrentHealth, zombie.Eaten)
		}
		if !mustComponent[*components.PlantComponent](t, w.em, plantID).Chewing {
			t.Error("Expected chomper to be chewing")
		}
		if w.audio.count(game.SoundChomp) != 1 {
			t.Error("Expected chomp sound")
		}

		NewZombieSystem(w.em, w.gs, w.audio).Update()
		NewCleanupSystem(w.em).Update()
		if w.em.Exists(zombieID) {
			t.Error("Expected eaten zombie to be removed immediately")
		}
		if w.gs.ZombiesKilled != 1 || w.gs.Score != game.ScorePerKill {
			t.Errorf("Expected the eaten zombie to count as a kill, got kills=%d score=%d", w.gs.ZombiesKilled, w.gs.Score)
		}
	})

	t.Run("射程外的僵尸不受影响", func(t *testing.T) {
		w := newTestWorld(t)
		w.plant(t, types.PlantChomper, 0, 0)
		zombieID := w.zombie(t, types.ZombieNormal, 0, 600)
		w.plantSystem().Update()

		if _, _, health := zombieAt(t, w, zombieID); health.CurrentHealth <= 0 {
			t.Error("Expected zombie out of range to survive")
		}
	})

	t.Run("咀嚼期间不再吞食", func(t *testing.T) {
		w := newTestWorld(t)
		plantID := w.plant(t, types.PlantChomper, 0, 0)
		w.zombie(t, types.ZombieNormal, 0, 520)
		ps := w.plantSystem()
		ps.Update()

		second := w.zombie(t, types.ZombieNormal, 0, 510)
		for i := 0; i < 599; i++ {
			ps.Update()
		}
		if _, _, health := zombieAt(t, w, second); health.CurrentHealth <= 0 {
			t.Fatal("Expected no second bite while chewing")
		}

		ps.Update()
		plant := mustComponent[*components.PlantComponent](t, w.em, plantID)
		if plant.Chewing {
			t.Fatal("Expected chewing to end after the interval")
		}
		ps.Update()
		if _, _, health := zombieAt(t, w, second); health.CurrentHealth > 0 {
			t.Error("Expected the second zombie eaten after chewing")
		}
	})
}

// TestPotatoMine 测试土豆地雷准备和爆炸
func TestPotatoMine(t *testing.T) {
	t.Run("准备完成前不爆炸", func(t *testing.T) {
		w := newTestWorld(t)
		mineID := w.plant(t, types.PlantPotatoMines, 0, 1)
		zombieID := w.zombie(t, types.ZombieNormal, 0, 1000)
		ps := w.plantSystem()
		for i := 0; i < 899; i++ {
			ps.Update()
		}
		if mustComponent[*components.PlantComponent](t, w.em, mineID).Armed {
			t.Fatal("Expected mine unarmed before the delay")
		}
		ps.Update()
		if !mustComponent[*components.PlantComponent](t, w.em, mineID).Armed {
			t.Fatal("Expected mine armed after the delay")
		}
		if _, _, health := zombieAt(t, w, zombieID); health.CurrentHealth != 100 {
			t.Errorf("Expected distant zombie untouched, got %.1f", health.CurrentHealth)
		}
	})

	t.Run("地面僵尸踩上后爆炸", func(t *testing.T) {
		w := newTestWorld(t)
		mineID := w.plant(t, types.PlantPotatoMines, 0, 1)
		mustComponent[*components.PlantComponent](t, w.em, mineID).Armed = true
		zombieID := w.zombie(t, types.ZombieFootball, 0, 520)
		w.plantSystem().Update()
		w.em.RemoveMarkedEntities()

		if _, _, health := zombieAt(t, w, zombieID); health.CurrentHealth > 0 {
			t.Errorf("Expected zombie killed by explosion, got %.1f", health.CurrentHealth)
		}
		if w.em.Exists(mineID) {
			t.Error("Expected mine to be consumed")
		}
		if w.audio.count(game.SoundExplode) != 1 {
			t.Error("Expected explosion sound")
		}
	})

	t.Run("飞行僵尸不触发", func(t *testing.T) {
		w := newTestWorld(t)
		mineID := w.plant(t, types.PlantPotatoMines, 0, 1)
		mustComponent[*components.PlantComponent](t, w.em, mineID).Armed = true
		zombieID := w.zombie(t, types.ZombieBalloon, 0, 520)
		w.plantSystem().Update()

		if _, _, health := zombieAt(t, w, zombieID); health.CurrentHealth != health.MaxHealth {
			t.Error("Expected balloon zombie untouched")
		}
		if w.em.IsMarkedForDestroy(mineID) {
			t.Error("Expected mine to remain")
		}
	})
}

// TestSpikeweed 测试地刺持续伤害地面僵尸且不阻挡
func TestSpikeweed(t *testing.T) {
	w := newTestWorld(t)
	spikeID := w.plant(t, types.PlantSpikeweed, 0, 1)
	groundID := w.zombie(t, types.ZombieNormal, 0, 520)
	flyingID := w.zombie(t, types.ZombieBalloon, 0, 520)
	w.gs.GameSpeed = 2

	w.plantSystem().Update()

	ground, _, groundHealth := zombieAt(t, w, groundID)
	if math.Abs(groundHealth.CurrentHealth-(100-0.24)) > 1e-9 {
		t.Errorf("Expected ground zombie health %.2f, got %.4f", 100-0.24, groundHealth.CurrentHealth)
	}
	if ground.Increment != ground.Velocity {
		t.Error("Expected spikeweed not to block zombies")
	}
	if _, _, flyingHealth := zombieAt(t, w, flyingID); flyingHealth.CurrentHealth != flyingHealth.MaxHealth {
		t.Error("Expected flying zombie untouched")
	}
	if health := mustComponent[*components.HealthComponent](t, w.em, spikeID); health.CurrentHealth != health.MaxHealth {
		t.Error("Expected spikeweed not to be eaten")
	}
}

// TestMelonPult 测试西瓜投手有目标时累积计数并投掷
func TestMelonPult(t *testing.T) {
	w := newTestWorld(t)
	id := w.plant(t, types.PlantMelonPult, 0, 0)
	ps := w.plantSystem()

	for i := 0; i < 50; i++ {
		ps.Update()
	}
	if got := mustComponent[*components.PlantComponent](t, w.em, id).Counter; got != 0 {
		t.Fatalf("Expected counter idle without a target, got %d", got)
	}

	w.zombie(t, types.ZombieNormal, 0, 1000)
	for i := 0; i < 99; i++ {
		ps.Update()
	}
	if countProjectiles(w.em) != 0 {
		t.Fatal("Expected no melon before the interval")
	}
	ps.Update()

	ids := ecs.GetEntitiesWith1[*components.ProjectileComponent](w.em)
	if len(ids) != 1 {
		t.Fatalf("Expected one melon, got %d", len(ids))
	}
	proj := mustComponent[*components.ProjectileComponent](t, w.em, ids[0])
	if proj.Kind != components.ProjectileParabolic || proj.Damage != 25 {
		t.Errorf("Expected parabolic melon with damage 25, got %s %.0f", proj.Kind, proj.Damage)
	}
}

// TestMelonPultResetsWithoutTarget 测试目标消失后计数清零，新目标要等满间隔
func TestMelonPultResetsWithoutTarget(t *testing.T) {
	w := newTestWorld(t)
	id := w.plant(t, types.PlantMelonPult, 0, 0)
	ps := w.plantSystem()

	zombie := w.zombie(t, types.ZombieNormal, 0, 1000)
	for i := 0; i < 60; i++ {
		ps.Update()
	}
	if got := mustComponent[*components.PlantComponent](t, w.em, id).Counter; got != 60 {
		t.Fatalf("Expected counter 60 with a target, got %d", got)
	}

	w.em.DestroyEntity(zombie)
	w.em.RemoveMarkedEntities()
	ps.Update()
	if got := mustComponent[*components.PlantComponent](t, w.em, id).Counter; got != 0 {
		t.Fatalf("Expected counter reset after losing the target, got %d", got)
	}

	w.zombie(t, types.ZombieNormal, 0, 1000)
	for i := 0; i < 99; i++ {
		ps.Update()
	}
	if countProjectiles(w.em) != 0 {
		t.Fatal("Expected no melon before a full interval")
	}
	ps.Update()
	if countProjectiles(w.em) != 1 {
		t.Errorf("Expected one melon after a full interval, got %d", countProjectiles(w.em))
	}
}

// TestPlantAt 测试按格子查找植物
func TestPlantAt(t *testing.T) {
	w := newTestWorld(t)
	id := w.plant(t, types.PlantWallNut, 3, 4)

	got, plant, ok := PlantAt(w.em, 3, 4)
	if !ok || got != id || plant.PlantType != types.PlantWallNut {
		t.Fatalf("Expected wallnut %d at (3, 4), got %d ok=%v", id, got, ok)
	}
	if _, _, ok := PlantAt(w.em, 3, 5); ok {
		t.Error("Expected empty cell")
	}
	w.em.DestroyEntity(id)
	if _, _, ok := PlantAt(w.em, 3, 4); ok {
		t.Error("Expected marked plant to be ignored")
	}
}
