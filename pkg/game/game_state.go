package game

import (
	"math"

	"github.com/decker502/lawndefense/pkg/config"
	"github.com/decker502/lawndefense/pkg/types"
)

// Phase 对局阶段
type Phase int

const (
	// PhasePlaying 游戏进行中
	PhasePlaying Phase = iota
	// PhaseGameOver 僵尸进屋，对局结束（终态）
	PhaseGameOver
)

// SpeedOptions 可选的游戏速度倍率
var SpeedOptions = []int{1, 2, 3}

// 关卡常量
const (
	BaseZombiesToKill     = 10  // 第 1 关需要击杀的僵尸数
	ZombiesToKillPerLevel = 8   // 每关增加的击杀数
	LevelCompleteFrames   = 180 // 过关提示显示的帧数
	ScorePerKill          = 10  // 每个击杀的得分
)

// PointerState 前端写入的指针状态
type PointerState struct {
	X            float64
	Y            float64
	Clicked      bool // 本帧左键按下
	RightClicked bool // 本帧右键按下（取消选择）
}

// GameState 存储一局游戏的全部状态
// 由 GameLoop 持有，并显式传给每个系统
type GameState struct {
	Frames      int                     // 游戏帧计数（过关提示期间冻结）
	Difficulty  string                  // 当前难度名称
	Preset      config.DifficultyPreset // 当前难度参数
	CurrentWave int                     // 当前波次

	Sun       int // 当前阳光数量
	Score     int
	HighScore int

	GameSpeed  int // 游戏速度倍率
	SpeedIndex int // SpeedOptions 中的下标

	GameLevel            int
	ZombiesKilled        int
	ZombiesToKill        int
	LevelComplete        bool
	ShowingLevelComplete bool
	LevelCompleteTimer   int
	LastLevelBonus       int // 最近一次过关奖励，用于提示显示

	ZombieSpawnRate int // 当前僵尸生成间隔（帧）

	Pointer       PointerState
	SelectedPlant types.PlantType // PlantUnknown 表示未选择
	ShovelActive  bool

	Music  bool // 背景音乐开关
	Volume bool // 音效开关

	Phase Phase
}

// NewGameState 按难度创建第 1 关的初始状态
func NewGameState(difficulty string, preset config.DifficultyPreset) *GameState {
	return &GameState{
		Frames:          1,
		Difficulty:      difficulty,
		Preset:          preset,
		Sun:             preset.StartSunCount,
		GameSpeed:       SpeedOptions[0],
		GameLevel:       1,
		ZombiesToKill:   ZombiesToKillForLevel(1),
		ZombieSpawnRate: SpawnRateForLevel(preset.ZombieSpawnRate, 1),
		Music:           true,
		Volume:          true,
		Phase:           PhasePlaying,
	}
}

// AddSun 增加阳光
func (gs *GameState) AddSun(amount int) {
	if amount <= 0 {
		return
	}
	gs.Sun += amount
}

// SpendSun 扣除阳光，如果阳光不足返回 false
// 只有当阳光充足时才会扣除，阳光永远不会变成负数
func (gs *GameState) SpendSun(amount int) bool {
	if amount < 0 || gs.Sun < amount {
		return false
	}
	gs.Sun -= amount
	return true
}

// CanAfford 阳光是否足够
func (gs *GameState) CanAfford(amount int) bool {
	return amount >= 0 && gs.Sun >= amount
}

// RecordKill 记录一次击杀
func (gs *GameState) RecordKill() {
	gs.ZombiesKilled++
	gs.Score += ScorePerKill
	if gs.Score > gs.HighScore {
		gs.HighScore = gs.Score
	}
}

// CycleSpeed 切换到下一个游戏速度
func (gs *GameState) CycleSpeed() int {
	return gs.SetSpeed(SpeedOptions[(gs.SpeedIndex+1)%len(SpeedOptions)])
}

// SpeedIndexOf 速度倍率在 SpeedOptions 中的下标，不存在时返回 -1
func SpeedIndexOf(speed int) int {
	for i, s := range SpeedOptions {
		if s == speed {
			return i
		}
	}
	return -1
}

// SetSpeed 设置速度倍率，非法值保持原速度，返回当前倍率
func (gs *GameState) SetSpeed(speed int) int {
	if i := SpeedIndexOf(speed); i >= 0 {
		gs.SpeedIndex = i
		gs.GameSpeed = speed
	}
	return gs.GameSpeed
}

// SelectPlant 选择种植卡片，同时退出铲子模式
func (gs *GameState) SelectPlant(pt types.PlantType) {
	gs.SelectedPlant = pt
	gs.ShovelActive = false
}

// ToggleShovel 切换铲子模式，同时取消卡片选择
func (gs *GameState) ToggleShovel() {
	gs.ShovelActive = !gs.ShovelActive
	gs.SelectedPlant = types.PlantUnknown
}

// CancelSelection 取消卡片和铲子
func (gs *GameState) CancelSelection() {
	gs.SelectedPlant = types.PlantUnknown
	gs.ShovelActive = false
}

// IsGameOver 对局是否已结束
func (gs *GameState) IsGameOver() bool {
	return gs.Phase == PhaseGameOver
}

// Tick 判断周期为 rate 的事件本帧是否触发
// 帧计数每次前进 GameSpeed，用区间判断避免高速时跳过整除点；速度为 1 时等价于 frames%rate == 0
func (gs *GameState) Tick(rate int) bool {
	return Every(gs.Frames, rate, gs.GameSpeed)
}

// Every 判断计数器 counter 在以 step 前进时是否越过了 rate 的整数倍
func Every(counter, rate, step int) bool {
	if rate <= 0 {
		return false
	}
	if step < 1 {
		step = 1
	}
	return counter%rate < step
}

// LevelBonus 进入 level 关时奖励的阳光
// 提示文字和实际入账使用同一个值
func LevelBonus(level int) int {
	return 50 + level*25
}

// ZombiesToKillForLevel 第 level 关需要击杀的僵尸数
func ZombiesToKillForLevel(level int) int {
	return BaseZombiesToKill + (level-1)*ZombiesToKillPerLevel
}

// SpawnRateForLevel 第 level 关的初始僵尸生成间隔
func SpawnRateForLevel(baseRate, level int) int {
	return int(math.Floor(float64(baseRate) / (1 + float64(level-1)*0.1)))
}
