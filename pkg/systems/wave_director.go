package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/lawndefense/pkg/config"
	"github.com/decker502/lawndefense/pkg/ecs"
	"github.com/decker502/lawndefense/pkg/entities"
	"github.com/decker502/lawndefense/pkg/game"
	"github.com/decker502/lawndefense/pkg/types"
)

// CurrentWave 已越过的波次阈值数量
func CurrentWave(frames int, thresholds []int) int {
	wave := 0
	for _, t := range thresholds {
		if t <= frames {
			wave++
		}
	}
	return wave
}

// WaveDirector 僵尸生成系统
// 职责：
// - 根据帧数推进波次
// - 按当前生成间隔在随机行生成波次池中的随机僵尸
// - 每次生成后缩短生成间隔，直到下限
// - 本关需要击杀的僵尸都已生成后停止生成
type WaveDirector struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	zombies       *config.ZombieStatsConfig
	rng           *rand.Rand
}

// NewWaveDirector 创建僵尸生成系统
// rng 由调用方注入，相同种子得到相同的生成序列
func NewWaveDirector(em *ecs.EntityManager, gs *game.GameState, zombies *config.ZombieStatsConfig, rng *rand.Rand) *WaveDirector {
	return &WaveDirector{
		entityManager: em,
		gameState:     gs,
		zombies:       zombies,
		rng:           rng,
	}
}

// Update 推进波次并按需生成僵尸
func (d *WaveDirector) Update() {
	gs := d.gameState
	wave := CurrentWave(gs.Frames, gs.Preset.WaveThresholds)
	if wave != gs.CurrentWave {
		log.Printf("[WaveDirector] Wave %d -> %d at frame %d", gs.CurrentWave, wave, gs.Frames)
		gs.CurrentWave = wave
	}

	if !d.ShouldSpawn() {
		return
	}
	d.Spawn()
}

// ShouldSpawn 本帧是否生成僵尸
func (d *WaveDirector) ShouldSpawn() bool {
	gs := d.gameState
	if gs.LevelComplete {
		return false
	}
	if gs.ZombiesKilled+countZombies(d.entityManager) >= gs.ZombiesToKill {
		return false
	}
	return gs.Tick(gs.ZombieSpawnRate)
}

// Spawn 在随机行生成一只当前波次的僵尸
func (d *WaveDirector) Spawn() (ecs.EntityID, bool) {
	gs := d.gameState
	pool := d.zombies.WavePool(gs.CurrentWave)
	if len(pool) == 0 {
		return 0, false
	}

	row := d.rng.Intn(config.GridRows)
	zombieType := pool[d.rng.Intn(len(pool))]

	id, err := entities.NewZombieEntity(d.entityManager, d.zombies, gs.Preset, zombieType, row, config.CanvasWidth)
	if err != nil {
		log.Printf("[WaveDirector] Warning: failed to spawn %s: %v", zombieType, err)
		return 0, false
	}

	if gs.ZombieSpawnRate > gs.Preset.MinSpawnRate {
		gs.ZombieSpawnRate -= gs.Preset.SpawnRateDecrease
	}
	return id, true
}

// SpawnType 在指定行生成指定僵尸，用于脚本回放
func (d *WaveDirector) SpawnType(zombieType types.ZombieType, row int) (ecs.EntityID, error) {
	return entities.NewZombieEntity(d.entityManager, d.zombies, d.gameState.Preset, zombieType, row, config.CanvasWidth)
}
