package systems

import (
	"log"
	"time"

	"github.com/decker502/lawndefense/pkg/components"
	"github.com/decker502/lawndefense/pkg/config"
	"github.com/decker502/lawndefense/pkg/ecs"
	"github.com/decker502/lawndefense/pkg/entities"
	"github.com/decker502/lawndefense/pkg/game"
	"github.com/decker502/lawndefense/pkg/types"
)

// ClickResult 一次点击产生的效果
type ClickResult int

const (
	ClickIgnored ClickResult = iota
	ClickCardSelected
	ClickCardDeselected
	ClickShovelToggled
	ClickPlanted
	ClickUpgraded
	ClickRemoved
)

// PlantingSystem 种植、升级和铲除
// 玩家操作在两帧之间处理，全部是无副作用失败（返回 ClickIgnored）
type PlantingSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	stats         *config.PlantStatsConfig
	clock         game.Clock
	plants        *PlantSystem
	audio         game.AudioPlayer
}

// NewPlantingSystem 创建种植系统
func NewPlantingSystem(em *ecs.EntityManager, gs *game.GameState, stats *config.PlantStatsConfig, clock game.Clock, plants *PlantSystem, audio game.AudioPlayer) *PlantingSystem {
	if clock == nil {
		clock = game.SystemClock{}
	}
	return &PlantingSystem{
		entityManager: em,
		gameState:     gs,
		stats:         stats,
		clock:         clock,
		plants:        plants,
		audio:         orSilent(audio),
	}
}

// HandleClick 处理卡片栏、铲子和草坪上的点击
func (s *PlantingSystem) HandleClick(x, y float64) ClickResult {
	if config.ShovelBounds.Contains(x, y) {
		s.gameState.ToggleShovel()
		return ClickShovelToggled
	}

	for i, pt := range types.CardOrder {
		if config.CardBounds(i).Contains(x, y) {
			return s.SelectCard(pt)
		}
	}

	col, row, ok := config.CellAt(x, y)
	if !ok {
		return ClickIgnored
	}
	return s.HandleCell(row, col)
}

// SelectCard 选择卡片，再次点击已选中的卡片取消选择
func (s *PlantingSystem) SelectCard(pt types.PlantType) ClickResult {
	if s.gameState.SelectedPlant == pt {
		s.gameState.CancelSelection()
		return ClickCardDeselected
	}
	s.gameState.SelectPlant(pt)
	return ClickCardSelected
}

// HandleCell 点击草坪格子
// 铲子模式下移除植物；格子上有可升级植物时升级；否则种下选中的植物
func (s *PlantingSystem) HandleCell(row, col int) ClickResult {
	if s.gameState.ShovelActive {
		if s.Shovel(row, col) {
			return ClickRemoved
		}
		return ClickIgnored
	}

	if _, _, occupied := PlantAt(s.entityManager, row, col); occupied {
		if s.TryUpgrade(row, col) {
			return ClickUpgraded
		}
		return ClickIgnored
	}

	if s.TryPlant(row, col) {
		return ClickPlanted
	}
	return ClickIgnored
}

// TryPlant 在空格子上种下选中的植物
// 需要：已选卡片、卡片冷却结束、阳光足够
func (s *PlantingSystem) TryPlant(row, col int) bool {
	gs := s.gameState
	pt := gs.SelectedPlant
	if pt == types.PlantUnknown {
		return false
	}
	if _, _, occupied := PlantAt(s.entityManager, row, col); occupied {
		return false
	}

	card := s.card(pt)
	now := s.clock.Now()
	if card != nil && !card.IsReady(now) {
		return false
	}

	cost := s.stats.PlantCost(pt)
	if !gs.CanAfford(cost) {
		return false
	}

	if _, err := entities.NewPlantEntity(s.entityManager, s.stats, pt, row, col); err != nil {
		log.Printf("[PlantingSystem] Warning: failed to plant %s: %v", pt, err)
		return false
	}
	gs.SpendSun(cost)
	if card != nil {
		card.ReadyAt = now.Add(time.Duration(gs.Preset.PlantCooldown) * time.Millisecond)
	}
	gs.CancelSelection()
	s.audio.Play(game.SoundPlant)
	return true
}

// TryUpgrade 升级格子上的植物
// 需要：植物可升级、未满级、阳光足够支付升级费用
func (s *PlantingSystem) TryUpgrade(row, col int) bool {
	id, plant, ok := PlantAt(s.entityManager, row, col)
	if !ok || !CanUpgrade(plant) {
		return false
	}
	cost := UpgradeCost(plant)
	if !s.gameState.CanAfford(cost) {
		return false
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
	if !ok {
		return false
	}
	if !Upgrade(plant, health, s.stats) {
		return false
	}
	s.gameState.SpendSun(cost)
	s.audio.Play(game.SoundUpgrade)
	log.Printf("[PlantingSystem] %s at (%d, %d) upgraded to level %d for %d sun", plant.PlantType, row, col, plant.Level, cost)
	return true
}

// Shovel 铲除格子上的植物，被它阻挡的僵尸恢复前进
func (s *PlantingSystem) Shovel(row, col int) bool {
	id, _, ok := PlantAt(s.entityManager, row, col)
	if !ok {
		return false
	}
	s.plants.RemovePlant(id)
	s.entityManager.RemoveMarkedEntities()
	s.gameState.ShovelActive = false
	s.audio.Play(game.SoundShovel)
	return true
}

// card 查找植物对应的卡片
func (s *PlantingSystem) card(pt types.PlantType) *components.PlantCardComponent {
	for _, id := range ecs.GetEntitiesWith1[*components.PlantCardComponent](s.entityManager) {
		card, _ := ecs.GetComponent[*components.PlantCardComponent](s.entityManager, id)
		if card.PlantType == pt {
			return card
		}
	}
	return nil
}

// CardState 卡片在 now 时刻的显示状态
type CardState struct {
	PlantType  types.PlantType
	Bounds     config.Rect
	Cost       int
	Remaining  time.Duration
	Affordable bool
	Selected   bool
}

// CardStates 按卡片栏顺序返回所有卡片的状态
func (s *PlantingSystem) CardStates() []CardState {
	now := s.clock.Now()
	ids := ecs.GetEntitiesWith1[*components.PlantCardComponent](s.entityManager)
	states := make([]CardState, 0, len(ids))
	for _, id := range ids {
		card, _ := ecs.GetComponent[*components.PlantCardComponent](s.entityManager, id)
		states = append(states, CardState{
			PlantType:  card.PlantType,
			Bounds:     config.CardBounds(card.Index),
			Cost:       card.SunCost,
			Remaining:  card.Remaining(now),
			Affordable: s.gameState.CanAfford(card.SunCost),
			Selected:   s.gameState.SelectedPlant == card.PlantType,
		})
	}
	return states
}
