package systems

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/decker502/lawndefense/pkg/components"
	"github.com/decker502/lawndefense/pkg/config"
	"github.com/decker502/lawndefense/pkg/ecs"
	"github.com/decker502/lawndefense/pkg/game"
	"github.com/decker502/lawndefense/pkg/render"
)

// HUD 文字位置
const (
	hudTextY      = 40.0
	hudLineHeight = 18.0
	hudStatsX     = 320.0
	cardTextPad   = 6.0
)

// RenderSystem 每帧把草坪、实体、HUD 和提示画到 Renderer
//
// 绘制顺序（从底到顶）：
//   - 草坪和房子
//   - 除草车、植物
//   - 僵尸和子弹（按 Y 排序，同一行右侧先画）
//   - HUD：卡片栏、计数器、按钮
//   - 阳光（在卡片栏之上，便于收集）
//   - 悬停提示、过关和游戏结束提示
type RenderSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	planting      *PlantingSystem
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, gs *game.GameState, planting *PlantingSystem) *RenderSystem {
	return &RenderSystem{entityManager: em, gameState: gs, planting: planting}
}

// Draw 绘制一整帧
func (s *RenderSystem) Draw(r render.Renderer) {
	s.drawLawn(r)
	s.DrawGameWorld(r)
	s.drawHUD(r)
	s.DrawSuns(r)
	s.drawTooltips(r)
	s.drawOverlays(r)
}

// drawLawn 棋盘格草坪和左侧的房子
func (s *RenderSystem) drawLawn(r render.Renderer) {
	r.FillRect(render.Rect{X: 0, Y: config.GridRowStart, W: config.LawnCleanerX, H: config.CellHeight * config.GridRows}, render.ColorHouse)
	for _, id := range ecs.GetEntitiesWith2[*components.GridCellComponent, *components.PositionComponent](s.entityManager) {
		cell, _ := ecs.GetComponent[*components.GridCellComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		c := render.ColorLawnLight
		if (cell.Row+cell.Col)%2 == 1 {
			c = render.ColorLawnDark
		}
		r.FillRect(rectOf(pos), c)
	}
}

// DrawGameWorld 绘制除草车、植物、僵尸和子弹
func (s *RenderSystem) DrawGameWorld(r render.Renderer) {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.SpriteComponent](s.entityManager)

	// 第一遍：除草车和植物
	for _, id := range ids {
		if ecs.HasComponent[*components.PlantComponent](s.entityManager, id) ||
			ecs.HasComponent[*components.LawnCleanerComponent](s.entityManager, id) {
			s.drawEntity(r, id)
		}
	}

	// 第二遍：僵尸和子弹，上方行先画，同一行右侧先画
	movers := make([]ecs.EntityID, 0, len(ids))
	for _, id := range ids {
		if ecs.HasComponent[*components.ZombieComponent](s.entityManager, id) ||
			ecs.HasComponent[*components.ProjectileComponent](s.entityManager, id) {
			movers = append(movers, id)
		}
	}
	sort.SliceStable(movers, func(i, j int) bool {
		pi, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, movers[i])
		pj, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, movers[j])
		if pi.Y != pj.Y {
			return pi.Y < pj.Y
		}
		return pi.X > pj.X
	})
	for _, id := range movers {
		s.drawEntity(r, id)
	}
}

// DrawSuns 绘制阳光（最顶层实体）
func (s *RenderSystem) DrawSuns(r render.Renderer) {
	for _, id := range ecs.GetEntitiesWith3[*components.SunComponent, *components.PositionComponent, *components.SpriteComponent](s.entityManager) {
		s.drawEntity(r, id)
	}
}

func (s *RenderSystem) drawEntity(r render.Renderer, id ecs.EntityID) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	r.DrawEntity(sprite.Name, render.FrameRect{Index: sprite.Frame, W: pos.Width, H: pos.Height}, rectOf(pos))
}

// drawHUD 卡片栏、计数器和按钮
func (s *RenderSystem) drawHUD(r render.Renderer) {
	gs := s.gameState

	for _, card := range s.planting.CardStates() {
		b := card.Bounds
		r.DrawEntity("card_"+card.PlantType.ConfigKey(), render.FrameRect{W: b.W, H: b.H}, b)
		r.DrawText(card.PlantType.String(), b.X+cardTextPad, b.Y+hudLineHeight, render.ColorText)
		var costColor color.Color = render.ColorText
		if !card.Affordable {
			costColor = render.ColorWarning
		}
		r.DrawText(fmt.Sprintf("%d", card.Cost), b.X+cardTextPad, b.Y+2*hudLineHeight, costColor)

		if card.Remaining > 0 {
			total := float64(gs.Preset.PlantCooldown) / 1000
			frac := 1.0
			if total > 0 {
				frac = min(card.Remaining.Seconds()/total, 1)
			}
			r.FillRect(render.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H * frac}, render.ColorCooldown)
			r.DrawText(fmt.Sprintf("%.1fs", card.Remaining.Seconds()), b.X+b.W/2, b.Y+b.H/2, render.ColorText)
		}
		if card.Selected {
			r.FillRect(b, render.ColorSelected)
		}
	}

	r.DrawEntity("sun", render.FrameRect{W: config.ButtonSize, H: config.ButtonSize},
		render.Rect{X: config.SunCounterX, Y: config.SunCounterY, W: config.ButtonSize, H: config.ButtonSize})
	r.DrawText(fmt.Sprintf("%d", gs.Sun), config.SunCounterX+config.ButtonSize+cardTextPad, hudTextY, render.ColorText)

	stats := []string{
		fmt.Sprintf("Score: %d  High score: %d", gs.Score, gs.HighScore),
		fmt.Sprintf("Level %d  Kills: %d/%d", gs.GameLevel, gs.ZombiesKilled, gs.ZombiesToKill),
		fmt.Sprintf("Difficulty: %s  Wave: %d", gs.Difficulty, gs.CurrentWave+1),
	}
	for i, line := range stats {
		r.DrawText(line, hudStatsX, hudTextY+float64(i)*hudLineHeight, render.ColorText)
	}

	shovel := render.ColorPanel
	if gs.ShovelActive {
		shovel = render.ColorSelected
	}
	r.FillRect(config.ShovelBounds, shovel)
	r.DrawText("Shovel", config.ShovelBounds.X+cardTextPad, config.ShovelBounds.Y+config.ShovelBounds.H/2, render.ColorText)

	s.drawButton(r, config.SpeedBounds, fmt.Sprintf("x%d", gs.GameSpeed), true)
	s.drawButton(r, config.VolumeBounds, "SFX", gs.Volume)
	s.drawButton(r, config.MusicBounds, "BGM", gs.Music)
}

func (s *RenderSystem) drawButton(r render.Renderer, b render.Rect, label string, on bool) {
	c := render.ColorPanel
	if !on {
		c = render.ColorCooldown
	}
	r.FillRect(b, c)
	r.DrawText(label, b.X+cardTextPad, b.Y+b.H/2, render.ColorText)
}

func (s *RenderSystem) drawTooltips(r render.Renderer) {
	for _, id := range ecs.GetEntitiesWith1[*components.TooltipComponent](s.entityManager) {
		tip, _ := ecs.GetComponent[*components.TooltipComponent](s.entityManager, id)
		if tip.IsVisible && tip.Text != "" {
			r.DrawText(tip.Text, tip.X, tip.Y, render.ColorText)
		}
	}
}

// drawOverlays 过关提示和游戏结束画面
func (s *RenderSystem) drawOverlays(r render.Renderer) {
	gs := s.gameState
	screen := render.Rect{W: config.CanvasWidth, H: config.CanvasHeight}
	cx, cy := config.CanvasWidth/2-80, config.CanvasHeight/2

	switch {
	case gs.IsGameOver():
		r.FillRect(screen, render.ColorOverlay)
		r.DrawText("THE ZOMBIES ATE YOUR BRAINS!", cx, cy-hudLineHeight, render.ColorWarning)
		r.DrawText(fmt.Sprintf("Score: %d  High score: %d", gs.Score, gs.HighScore), cx, cy, render.ColorText)
		r.DrawText("Click to play again", cx, cy+hudLineHeight, render.ColorText)
	case gs.ShowingLevelComplete:
		r.FillRect(screen, render.ColorOverlay)
		r.DrawText(fmt.Sprintf("Level %d complete!", gs.GameLevel), cx, cy-hudLineHeight, render.ColorText)
		r.DrawText(fmt.Sprintf("+%d sun", gs.LastLevelBonus), cx, cy, render.ColorText)
	}
}

func rectOf(pos *components.PositionComponent) render.Rect {
	return render.Rect{X: pos.X, Y: pos.Y, W: pos.Width, H: pos.Height}
}
