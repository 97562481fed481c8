package systems

import (
	"log"

	"github.com/decker502/lawndefense/pkg/ecs"
	"github.com/decker502/lawndefense/pkg/game"
)

// LevelSystem 关卡进度系统
// 职责：
// - 击杀数达标且场上没有僵尸时判定过关
// - 显示过关提示 LevelCompleteFrames 帧（期间游戏帧冻结）
// - 提示结束后进入下一关：发放奖励、清空子弹、重置生成参数
type LevelSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	audio         game.AudioPlayer
}

// NewLevelSystem 创建关卡系统
func NewLevelSystem(em *ecs.EntityManager, gs *game.GameState, audio game.AudioPlayer) *LevelSystem {
	return &LevelSystem{
		entityManager: em,
		gameState:     gs,
		audio:         orSilent(audio),
	}
}

// Update 检查过关条件并推进过关提示
func (s *LevelSystem) Update() {
	gs := s.gameState

	if gs.ShowingLevelComplete {
		gs.LevelCompleteTimer--
		if gs.LevelCompleteTimer <= 0 {
			s.NextLevel()
		}
		return
	}

	if !gs.LevelComplete && gs.ZombiesKilled >= gs.ZombiesToKill && countZombies(s.entityManager) == 0 {
		gs.LevelComplete = true
		gs.ShowingLevelComplete = true
		gs.LevelCompleteTimer = game.LevelCompleteFrames
		gs.LastLevelBonus = game.LevelBonus(gs.GameLevel + 1)
		s.audio.Play(game.SoundLevelComplete)
		log.Printf("[LevelSystem] Level %d complete (%d/%d kills)", gs.GameLevel, gs.ZombiesKilled, gs.ZombiesToKill)
	}
}

// NextLevel 进入下一关
func (s *LevelSystem) NextLevel() {
	gs := s.gameState
	gs.GameLevel++
	gs.Frames = 1
	gs.CurrentWave = 0
	bonus := game.LevelBonus(gs.GameLevel)
	gs.AddSun(bonus)
	gs.LastLevelBonus = bonus

	cleared := ClearProjectiles(s.entityManager)
	s.SetupLevel()
	log.Printf("[LevelSystem] Entering level %d: +%d sun, %d projectiles cleared, need %d kills, spawn rate %d",
		gs.GameLevel, bonus, cleared, gs.ZombiesToKill, gs.ZombieSpawnRate)
}

// SetupLevel 按当前关卡重置击杀目标和生成间隔
func (s *LevelSystem) SetupLevel() {
	gs := s.gameState
	gs.ZombiesKilled = 0
	gs.ZombiesToKill = game.ZombiesToKillForLevel(gs.GameLevel)
	gs.ZombieSpawnRate = game.SpawnRateForLevel(gs.Preset.ZombieSpawnRate, gs.GameLevel)
	gs.LevelComplete = false
	gs.ShowingLevelComplete = false
	gs.LevelCompleteTimer = 0
}
