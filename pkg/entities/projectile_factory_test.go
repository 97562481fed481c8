package entities

import (
	"testing"

	"github.com/decker502/lawndefense/pkg/components"
	"github.com/decker502/lawndefense/pkg/config"
	"github.com/decker502/lawndefense/pkg/ecs"
)

func TestNewProjectileEntity(t *testing.T) {
	tests := []struct {
		name string
		kind components.ProjectileKind
		vy   float64
		size float64
	}{
		{"直线豌豆", components.ProjectileStraight, 0, ProjectileSize},
		{"上弹道", components.ProjectileTop, 0, ProjectileSize},
		{"西瓜抛物线", components.ProjectileParabolic, ParabolicInitialVY, MelonSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id := NewProjectileEntity(em, tt.kind, 500, 150, 20, 0)

			proj, ok := ecs.GetComponent[*components.ProjectileComponent](em, id)
			if !ok {
				t.Fatal("missing ProjectileComponent")
			}
			if proj.Damage != 20 || proj.Speed != ProjectileSpeed || proj.VY != tt.vy || proj.BaselineY != 150 {
				t.Errorf("projectile = %+v", proj)
			}
			if pos := mustPosition(t, em, id); pos.Width != tt.size {
				t.Errorf("size = %v, want %v", pos.Width, tt.size)
			}
		})
	}
}

func TestNewSunEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewSunEntity(em, 600, 0, 300, 25)

	sun, _ := ecs.GetComponent[*components.SunComponent](em, id)
	if sun.Value != 25 || sun.TargetY != 300 || sun.Collected {
		t.Errorf("sun = %+v", sun)
	}
	if ecs.HasComponent[*components.LifetimeComponent](em, id) {
		t.Error("lifetime should start only after the sun lands")
	}
}

func TestNewLawnCleaners(t *testing.T) {
	em := ecs.NewEntityManager()
	ids := NewLawnCleaners(em)
	if len(ids) != config.GridRows {
		t.Fatalf("got %d cleaners, want %d", len(ids), config.GridRows)
	}

	for row, id := range ids {
		cleaner, _ := ecs.GetComponent[*components.LawnCleanerComponent](em, id)
		pos := mustPosition(t, em, id)
		if cleaner.Row != row || cleaner.Triggered {
			t.Errorf("cleaner %d = %+v", row, cleaner)
		}
		if pos.X != config.LawnCleanerX || pos.Y != config.RowTop(row)+config.LawnCleanerOffsetY {
			t.Errorf("cleaner %d at (%v,%v)", row, pos.X, pos.Y)
		}
	}
}

func TestNewLawnGridAndCards(t *testing.T) {
	em := ecs.NewEntityManager()
	cells := NewLawnGrid(em)
	if len(cells) != config.GridRows*config.GridColumns {
		t.Fatalf("got %d cells", len(cells))
	}
	last, _ := ecs.GetComponent[*components.GridCellComponent](em, cells[len(cells)-1])
	if last.Row != config.GridRows-1 || last.Col != config.GridColumns-1 {
		t.Errorf("last cell = %+v", last)
	}

	cards := NewPlantCards(em, config.DefaultPlantStats())
	if len(cards) != 9 {
		t.Fatalf("got %d cards, want 9", len(cards))
	}
	card, _ := ecs.GetComponent[*components.PlantCardComponent](em, cards[3])
	if card.SunCost != 75 || card.Index != 3 {
		t.Errorf("card 3 = %+v", card)
	}
}
