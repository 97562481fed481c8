// Package simulation 把各系统串成一局完整的游戏
//
// GameLoop 拥有实体管理器和 GameState，每次 Step 推进一帧。
// 桌面、终端和无界面回放三种前端都只通过 GameLoop 驱动游戏。
package simulation

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/lawndefense/pkg/config"
	"github.com/decker502/lawndefense/pkg/ecs"
	"github.com/decker502/lawndefense/pkg/entities"
	"github.com/decker502/lawndefense/pkg/game"
	"github.com/decker502/lawndefense/pkg/render"
	"github.com/decker502/lawndefense/pkg/systems"
	"github.com/decker502/lawndefense/pkg/types"
)

// statusLogInterval 状态日志的输出间隔（帧）
const statusLogInterval = 600

// MusicPlayer 背景音乐开关
type MusicPlayer interface {
	SetMusicEnabled(enabled bool)
}

// Options 创建 GameLoop 的参数
// 所有字段都可以为空，为空时使用内置默认值或设置中保存的难度
type Options struct {
	Difficulty   string
	Difficulties *config.DifficultyConfig
	Plants       *config.PlantStatsConfig
	Zombies      *config.ZombieStatsConfig

	Renderer render.Renderer  // 每帧绘制目标，nil 表示不绘制
	Audio    game.AudioPlayer // 音效，受 GameState.Volume 控制
	Music    MusicPlayer      // 背景音乐
	Scores   game.ScoreStore  // 最高分存储
	Settings *game.SettingsManager
	Clock    game.Clock // 卡片冷却使用的真实时钟
	Rand     *rand.Rand // 僵尸和天降阳光的随机源
}

// GameLoop 游戏主循环
//
// 每帧顺序：
//   - 玩家点击（帧之间的离散事件）
//   - 植物 → 僵尸 → 生成 → 子弹 → 阳光 → 除草车 → 生命周期
//   - 清理 → 动画、提示 → 绘制 → 关卡进度
//
// 过关提示期间游戏帧冻结，只推进提示计时。
type GameLoop struct {
	opts  Options
	audio *gatedAudio

	entityManager *ecs.EntityManager
	gameState     *game.GameState

	plantSystem       *systems.PlantSystem
	zombieSystem      *systems.ZombieSystem
	waveDirector      *systems.WaveDirector
	projectileSystem  *systems.ProjectileSystem
	sunSystem         *systems.SunSystem
	lawnCleanerSystem *systems.LawnCleanerSystem
	lifetimeSystem    *systems.LifetimeSystem
	cleanupSystem     *systems.CleanupSystem
	animationSystem   *systems.AnimationSystem
	tooltipSystem     *systems.TooltipSystem
	plantingSystem    *systems.PlantingSystem
	renderSystem      *systems.RenderSystem
	levelSystem       *systems.LevelSystem

	steps     int
	gameOver  bool
	overShown bool // 结束画面至少已显示过一帧
	scoreSave <-chan struct{}
}

// New 创建 GameLoop 并开始第 1 关
func New(opts Options) (*GameLoop, error) {
	if opts.Difficulties == nil {
		opts.Difficulties = config.DefaultDifficultyConfig()
	}
	if opts.Plants == nil {
		opts.Plants = config.DefaultPlantStats()
	}
	if opts.Zombies == nil {
		opts.Zombies = config.DefaultZombieStats()
	}
	if opts.Clock == nil {
		opts.Clock = game.SystemClock{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Difficulty == "" {
		opts.Difficulty = config.DifficultyNormal
		if opts.Settings != nil && opts.Settings.GetSettings().Difficulty != "" {
			opts.Difficulty = opts.Settings.GetSettings().Difficulty
		}
	}

	l := &GameLoop{opts: opts}
	l.audio = &gatedAudio{loop: l, out: opts.Audio}
	if err := l.Reset(opts.Difficulty); err != nil {
		return nil, err
	}
	l.gameState.HighScore = game.LoadHighScore(context.Background(), opts.Scores)
	return l, nil
}

// Reset 按指定难度重新开始，最高分保留
func (l *GameLoop) Reset(difficulty string) error {
	preset, err := l.opts.Difficulties.Preset(difficulty)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	highScore := 0
	if l.gameState != nil {
		highScore = l.gameState.HighScore
	}

	em := ecs.NewEntityManager()
	gs := game.NewGameState(difficulty, preset)
	gs.HighScore = highScore
	if l.opts.Settings != nil {
		s := l.opts.Settings.GetSettings()
		gs.Music = s.MusicEnabled
		gs.Volume = s.SoundEnabled
		gs.SetSpeed(s.GameSpeed)
		l.opts.Settings.SetDifficulty(difficulty)
	}

	entities.NewLawnGrid(em)
	entities.NewLawnCleaners(em)
	entities.NewPlantCards(em, l.opts.Plants)

	l.entityManager = em
	l.gameState = gs
	l.plantSystem = systems.NewPlantSystem(em, gs, l.opts.Plants, l.audio)
	l.zombieSystem = systems.NewZombieSystem(em, gs, l.audio)
	l.waveDirector = systems.NewWaveDirector(em, gs, l.opts.Zombies, l.opts.Rand)
	l.projectileSystem = systems.NewProjectileSystem(em, gs, l.audio)
	l.sunSystem = systems.NewSunSystem(em, gs, l.opts.Rand, l.audio)
	l.lawnCleanerSystem = systems.NewLawnCleanerSystem(em, gs, l.audio)
	l.lifetimeSystem = systems.NewLifetimeSystem(em, gs)
	l.cleanupSystem = systems.NewCleanupSystem(em)
	l.animationSystem = systems.NewAnimationSystem(em, gs)
	l.tooltipSystem = systems.NewTooltipSystem(em, gs)
	l.plantingSystem = systems.NewPlantingSystem(em, gs, l.opts.Plants, l.opts.Clock, l.plantSystem, l.audio)
	l.renderSystem = systems.NewRenderSystem(em, gs, l.plantingSystem)
	l.levelSystem = systems.NewLevelSystem(em, gs, l.audio)

	l.steps = 0
	l.gameOver = false
	l.overShown = false
	l.scoreSave = nil

	if l.opts.Music != nil {
		l.opts.Music.SetMusicEnabled(gs.Music)
	}
	log.Printf("[GameLoop] New game: difficulty=%s sun=%d spawnRate=%d", difficulty, gs.Sun, gs.ZombieSpawnRate)
	return nil
}

// Step 推进一帧
// 返回 false 表示对局已结束，之后的调用不再改变状态
func (l *GameLoop) Step() bool {
	gs := l.gameState
	if gs.IsGameOver() {
		l.overShown = true
		return false
	}

	if gs.Pointer.Clicked {
		gs.Pointer.Clicked = false
		l.Click(gs.Pointer.X, gs.Pointer.Y)
	}
	if gs.Pointer.RightClicked {
		gs.Pointer.RightClicked = false
		gs.CancelSelection()
	}

	if !gs.ShowingLevelComplete {
		l.plantSystem.Update()
		l.zombieSystem.Update()
		l.waveDirector.Update()
		l.projectileSystem.Update()
		l.sunSystem.Update()
		l.lawnCleanerSystem.Update()
		l.lifetimeSystem.Update()
		gs.Frames += gs.GameSpeed
	} else {
		l.sunSystem.MoveAndCollect()
	}

	l.cleanupSystem.Update()
	l.animationSystem.Update()
	l.tooltipSystem.Update()
	l.Render()
	l.levelSystem.Update()

	l.steps++
	if l.steps%statusLogInterval == 0 {
		log.Printf("[GameLoop] step=%d frame=%d level=%d wave=%d sun=%d kills=%d/%d entities=%d",
			l.steps, gs.Frames, gs.GameLevel, gs.CurrentWave, gs.Sun, gs.ZombiesKilled, gs.ZombiesToKill, l.entityManager.EntityCount())
	}

	if gs.IsGameOver() {
		l.finish()
		return false
	}
	return true
}

// finish 对局结束时只执行一次
func (l *GameLoop) finish() {
	if l.gameOver {
		return
	}
	l.gameOver = true
	gs := l.gameState
	l.audio.Play(game.SoundGameOver)
	l.scoreSave = game.SaveHighScoreAsync(context.Background(), l.opts.Scores, gs.HighScore)
	log.Printf("[GameLoop] Game over at level %d: score=%d highScore=%d", gs.GameLevel, gs.Score, gs.HighScore)
}

// SaveHighScore 同步写入当前最高分（程序退出时）
func (l *GameLoop) SaveHighScore(ctx context.Context) error {
	if l.opts.Scores == nil {
		return nil
	}
	if err := l.opts.Scores.SetHighScore(ctx, l.gameState.HighScore); err != nil {
		return fmt.Errorf("failed to save high score on exit: %w", err)
	}
	return nil
}

// Render 把当前画面画到 Options.Renderer
func (l *GameLoop) Render() {
	if l.opts.Renderer == nil {
		return
	}
	l.renderSystem.Draw(l.opts.Renderer)
}

// Draw 把当前画面画到指定 Renderer
func (l *GameLoop) Draw(r render.Renderer) {
	l.renderSystem.Draw(r)
}

// RestartClick 结束画面上的点击，重新开始时返回 true。
// 和结束同一帧到达的点击已被 Step 消费，不会跳过结束画面
func (l *GameLoop) RestartClick(x, y float64) bool {
	if !l.gameState.IsGameOver() || !l.overShown {
		return false
	}
	l.Click(x, y)
	return true
}

// Click 处理一次左键点击
// 游戏结束后点击任意位置以相同难度重新开始
func (l *GameLoop) Click(x, y float64) systems.ClickResult {
	gs := l.gameState
	if gs.IsGameOver() {
		if err := l.Reset(gs.Difficulty); err != nil {
			log.Printf("[GameLoop] Warning: restart failed: %v", err)
		}
		return systems.ClickIgnored
	}
	if gs.ShowingLevelComplete {
		return systems.ClickIgnored
	}

	switch {
	case config.SpeedBounds.Contains(x, y):
		l.CycleSpeed()
		return systems.ClickIgnored
	case config.MusicBounds.Contains(x, y):
		l.ToggleMusic()
		return systems.ClickIgnored
	case config.VolumeBounds.Contains(x, y):
		l.ToggleMute()
		return systems.ClickIgnored
	}
	return l.plantingSystem.HandleClick(x, y)
}

// SetPointer 前端写入指针状态，点击在下一次 Step 开始时处理
func (l *GameLoop) SetPointer(x, y float64, clicked, rightClicked bool) {
	p := &l.gameState.Pointer
	p.X, p.Y = x, y
	p.Clicked = p.Clicked || clicked
	p.RightClicked = p.RightClicked || rightClicked
}

// SelectCard 按卡片栏下标选择植物（键盘快捷键）
func (l *GameLoop) SelectCard(index int) bool {
	if index < 0 || index >= len(types.CardOrder) || l.gameState.IsGameOver() {
		return false
	}
	l.plantingSystem.SelectCard(types.CardOrder[index])
	return true
}

// ToggleShovel 切换铲子
func (l *GameLoop) ToggleShovel() {
	l.gameState.ToggleShovel()
}

// CancelSelection 取消卡片和铲子
func (l *GameLoop) CancelSelection() {
	l.gameState.CancelSelection()
}

// CycleSpeed 切换游戏速度并保存设置
func (l *GameLoop) CycleSpeed() int {
	speed := l.gameState.CycleSpeed()
	if l.opts.Settings != nil {
		l.opts.Settings.SetGameSpeed(speed)
		l.saveSettings()
	}
	log.Printf("[GameLoop] Game speed x%d", speed)
	return speed
}

// ToggleMusic 切换背景音乐并保存设置
func (l *GameLoop) ToggleMusic() bool {
	gs := l.gameState
	gs.Music = !gs.Music
	if l.opts.Music != nil {
		l.opts.Music.SetMusicEnabled(gs.Music)
	}
	if l.opts.Settings != nil {
		l.opts.Settings.SetMusicEnabled(gs.Music)
		l.saveSettings()
	}
	return gs.Music
}

// ToggleMute 切换音效并保存设置
func (l *GameLoop) ToggleMute() bool {
	gs := l.gameState
	gs.Volume = !gs.Volume
	if l.opts.Settings != nil {
		l.opts.Settings.SetSoundEnabled(gs.Volume)
		l.saveSettings()
	}
	return gs.Volume
}

func (l *GameLoop) saveSettings() {
	if err := l.opts.Settings.Save(); err != nil {
		log.Printf("[GameLoop] Warning: failed to save settings: %v", err)
	}
}

// Place 选择植物并种到指定格子，遵守阳光和冷却规则（脚本回放使用）
func (l *GameLoop) Place(pt types.PlantType, row, col int) bool {
	l.gameState.SelectPlant(pt)
	ok := l.plantingSystem.TryPlant(row, col)
	if !ok {
		l.gameState.CancelSelection()
	}
	return ok
}

// Upgrade 升级指定格子上的植物（脚本回放使用）
func (l *GameLoop) Upgrade(row, col int) bool {
	return l.plantingSystem.TryUpgrade(row, col)
}

// Shovel 铲除指定格子上的植物（脚本回放使用）
func (l *GameLoop) Shovel(row, col int) bool {
	return l.plantingSystem.Shovel(row, col)
}

// SpawnZombie 在指定行立即生成僵尸（脚本回放使用）
func (l *GameLoop) SpawnZombie(zt types.ZombieType, row int) (ecs.EntityID, error) {
	return l.waveDirector.SpawnType(zt, row)
}

// State 当前游戏状态
func (l *GameLoop) State() *game.GameState {
	return l.gameState
}

// EntityManager 当前实体管理器
func (l *GameLoop) EntityManager() *ecs.EntityManager {
	return l.entityManager
}

// CardStates 卡片栏状态
func (l *GameLoop) CardStates() []systems.CardState {
	return l.plantingSystem.CardStates()
}

// ScoreSaved 最高分写入完成时关闭的 channel，未结束时返回 nil
func (l *GameLoop) ScoreSaved() <-chan struct{} {
	return l.scoreSave
}

// gatedAudio 音效关闭时丢弃播放请求
type gatedAudio struct {
	loop *GameLoop
	out  game.AudioPlayer
}

func (a *gatedAudio) Play(soundID string) {
	if a.out == nil || !a.loop.gameState.Volume {
		return
	}
	a.out.Play(soundID)
}
