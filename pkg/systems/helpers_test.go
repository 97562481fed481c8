package systems

import (
	"image/color"
	"testing"
	"time"

	"github.com/decker502/lawndefense/pkg/components"
	"github.com/decker502/lawndefense/pkg/config"
	"github.com/decker502/lawndefense/pkg/ecs"
	"github.com/decker502/lawndefense/pkg/entities"
	"github.com/decker502/lawndefense/pkg/game"
	"github.com/decker502/lawndefense/pkg/render"
	"github.com/decker502/lawndefense/pkg/types"
)

// recordingAudio 记录播放过的音效
type recordingAudio struct {
	played []string
}

func (a *recordingAudio) Play(id string) { a.played = append(a.played, id) }

func (a *recordingAudio) count(id string) int {
	n := 0
	for _, p := range a.played {
		if p == id {
			n++
		}
	}
	return n
}

// fakeClock 手动推进的时钟
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// drawCall 一次绘制调用
type drawCall struct {
	kind   string // entity, rect, text
	sprite string
	frame  render.FrameRect
	dest   render.Rect
	text   string
}

// recordingRenderer 记录所有绘制调用
type recordingRenderer struct {
	calls []drawCall
}

func (r *recordingRenderer) DrawEntity(sprite string, frame render.FrameRect, dest render.Rect) {
	r.calls = append(r.calls, drawCall{kind: "entity", sprite: sprite, frame: frame, dest: dest})
}

func (r *recordingRenderer) FillRect(dest render.Rect, _ color.Color) {
	r.calls = append(r.calls, drawCall{kind: "rect", dest: dest})
}

func (r *recordingRenderer) DrawText(s string, x, y float64, _ color.Color) {
	r.calls = append(r.calls, drawCall{kind: "text", text: s, dest: render.Rect{X: x, Y: y}})
}

func (r *recordingRenderer) sprites() []string {
	var names []string
	for _, c := range r.calls {
		if c.kind == "entity" {
			names = append(names, c.sprite)
		}
	}
	return names
}

func (r *recordingRenderer) texts() []string {
	var texts []string
	for _, c := range r.calls {
		if c.kind == "text" {
			texts = append(texts, c.text)
		}
	}
	return texts
}

// testWorld 一局测试用的游戏世界
type testWorld struct {
	em      *ecs.EntityManager
	gs      *game.GameState
	plants  *config.PlantStatsConfig
	zombies *config.ZombieStatsConfig
	audio   *recordingAudio
}

// newTestWorld 创建 normal 难度、第 1 关的空草坪
func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	preset, err := config.DefaultDifficultyConfig().Preset(config.DifficultyNormal)
	if err != nil {
		t.Fatalf("normal preset: %v", err)
	}
	return &testWorld{
		em:      ecs.NewEntityManager(),
		gs:      game.NewGameState(config.DifficultyNormal, preset),
		plants:  config.DefaultPlantStats(),
		zombies: config.DefaultZombieStats(),
		audio:   &recordingAudio{},
	}
}

func (w *testWorld) plant(t *testing.T, pt types.PlantType, row, col int) ecs.EntityID {
	t.Helper()
	id, err := entities.NewPlantEntity(w.em, w.plants, pt, row, col)
	if err != nil {
		t.Fatalf("plant %s: %v", pt, err)
	}
	return id
}

func (w *testWorld) zombie(t *testing.T, zt types.ZombieType, row int, x float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewZombieEntity(w.em, w.zombies, w.gs.Preset, zt, row, x)
	if err != nil {
		t.Fatalf("zombie %s: %v", zt, err)
	}
	return id
}

func (w *testWorld) plantSystem() *PlantSystem {
	return NewPlantSystem(w.em, w.gs, w.plants, w.audio)
}

func mustComponent[T any](t *testing.T, em *ecs.EntityManager, id ecs.EntityID) T {
	t.Helper()
	c, ok := ecs.GetComponent[T](em, id)
	if !ok {
		var zero T
		t.Fatalf("entity %d has no %T", id, zero)
	}
	return c
}

func zombieAt(t *testing.T, w *testWorld, id ecs.EntityID) (*components.ZombieComponent, *components.PositionComponent, *components.HealthComponent) {
	t.Helper()
	return mustComponent[*components.ZombieComponent](t, w.em, id),
		mustComponent[*components.PositionComponent](t, w.em, id),
		mustComponent[*components.HealthComponent](t, w.em, id)
}
