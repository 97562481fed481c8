package systems

import (
	"github.com/decker502/lawndefense/pkg/components"
	"github.com/decker502/lawndefense/pkg/ecs"
	"github.com/decker502/lawndefense/pkg/game"
)

// zombieRef 一次查询中僵尸的组件集合
type zombieRef struct {
	ID     ecs.EntityID
	Zombie *components.ZombieComponent
	Pos    *components.PositionComponent
	Health *components.HealthComponent
}

// queryZombies 按创建顺序返回所有僵尸（包括死亡中的）
func queryZombies(em *ecs.EntityManager) []zombieRef {
	ids := ecs.GetEntitiesWith3[*components.ZombieComponent, *components.PositionComponent, *components.HealthComponent](em)
	refs := make([]zombieRef, 0, len(ids))
	for _, id := range ids {
		z, _ := ecs.GetComponent[*components.ZombieComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
		refs = append(refs, zombieRef{ID: id, Zombie: z, Pos: pos, Health: health})
	}
	return refs
}

// liveZombies 未死亡且生命值大于 0 的僵尸
func liveZombies(em *ecs.EntityManager) []zombieRef {
	all := queryZombies(em)
	live := all[:0]
	for _, z := range all {
		if !z.Zombie.Die && z.Health.CurrentHealth > 0 {
			live = append(live, z)
		}
	}
	return live
}

// overlappingZombies 与 pos 几何重叠的存活僵尸
// groundOnly 为 true 时跳过飞行僵尸（地面陷阱）
func overlappingZombies(em *ecs.EntityManager, pos *components.PositionComponent, groundOnly bool) []zombieRef {
	var result []zombieRef
	for _, z := range liveZombies(em) {
		if groundOnly && z.Zombie.Flying {
			continue
		}
		if pos.Overlaps(z.Pos) {
			result = append(result, z)
		}
	}
	return result
}

// zombieAheadInRow 同一行中是否有位于 x 右侧（含重叠）的存活僵尸
func zombieAheadInRow(em *ecs.EntityManager, row int, x float64) bool {
	for _, z := range liveZombies(em) {
		if z.Zombie.Row == row && z.Pos.Right() >= x {
			return true
		}
	}
	return false
}

// countZombies 僵尸实体总数（包括死亡中的）
func countZombies(em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[*components.ZombieComponent](em))
}

// silentAudio 未配置音频时使用
type silentAudio struct{}

func (silentAudio) Play(string) {}

// orSilent 保证音频接口非 nil
func orSilent(a game.AudioPlayer) game.AudioPlayer {
	if a == nil {
		return silentAudio{}
	}
	return a
}
