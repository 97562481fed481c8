package simulation

import (
	"errors"
	"os"
	"reflect"
	"testing"

	"github.com/decker502/lawndefense/pkg/systems"
)

const testScenario = `
name: test
difficulty: normal
seed: 7
steps: 400
snapshots: [400]
actions:
  - {at: 300, action: place, plant: sunflower, row: 1, col: 0}
  - {at: 1, action: place, plant: sunflower, row: 0, col: 0}
  - {at: 2, action: place, plant: sunflower, row: 1, col: 0}
  - {at: 2, action: place, plant: peashooter, row: 2, col: 0}
  - {at: 3, action: upgrade, row: 2, col: 0}
  - {at: 4, action: shovel, row: 3, col: 3}
  - {at: 5, action: spawn, zombie: conehead, row: 2}
`

func TestParseScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(testScenario))
	if err != nil {
		t.Fatalf("ParseScenario: %v", err)
	}
	if sc.Steps != 400 || sc.Seed != 7 || len(sc.Actions) != 7 {
		t.Fatalf("Unexpected scenario: %+v", sc)
	}
	// 按步数稳定排序
	if sc.Actions[0].At != 1 || sc.Actions[len(sc.Actions)-1].At != 300 {
		t.Errorf("Expected actions sorted by step, got first=%d last=%d", sc.Actions[0].At, sc.Actions[len(sc.Actions)-1].At)
	}
	if sc.Actions[1].Plant != "sunflower" || sc.Actions[2].Plant != "peashooter" {
		t.Errorf("Expected stable order within a step, got %s then %s", sc.Actions[1].Plant, sc.Actions[2].Plant)
	}
}

func TestParseScenarioInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"步数为零", "steps: 0"},
		{"截图越界", "steps: 10\nsnapshots: [11]"},
		{"动作越界", "steps: 10\nactions:\n  - {at: 0, action: shovel}"},
		{"未知植物", "steps: 10\nactions:\n  - {at: 1, action: place, plant: cactus}"},
		{"未知僵尸", "steps: 10\nactions:\n  - {at: 1, action: spawn, zombie: yeti}"},
		{"未知动作", "steps: 10\nactions:\n  - {at: 1, action: dance}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalidScenario) {
				t.Errorf("Expected ErrInvalidScenario, got %v", err)
			}
		})
	}

	if _, err := ParseScenario([]byte("steps: [")); err == nil || errors.Is(err, ErrInvalidScenario) {
		t.Errorf("Expected YAML parse error, got %v", err)
	}
}

func TestScenarioFiles(t *testing.T) {
	data, err := os.ReadFile("../../data/scenarios/opening.yaml")
	if err != nil {
		t.Fatalf("Failed to read scenario: %v", err)
	}
	sc, err := ParseScenario(data)
	if err != nil {
		t.Fatalf("ParseScenario: %v", err)
	}
	if sc.Name != "opening" || len(sc.Snapshots) == 0 {
		t.Errorf("Unexpected scenario: %+v", sc)
	}
}

func TestRunScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(testScenario))
	if err != nil {
		t.Fatalf("ParseScenario: %v", err)
	}

	var (
		calls      int
		lateFlower bool
		level      int
	)
	result, err := RunScenario(Options{}, sc, func(step int, l *GameLoop) {
		calls++
		if step == 300 {
			_, plant, ok := systems.PlantAt(l.EntityManager(), 1, 0)
			lateFlower = ok && plant.PlantType.ConfigKey() == "sunflower"
		}
		if step == 3 {
			if _, plant, ok := systems.PlantAt(l.EntityManager(), 2, 0); ok {
				level = plant.Level
			}
		}
	})
	if err != nil {
		t.Fatalf("RunScenario: %v", err)
	}

	if result.Steps != 400 || calls != 400 {
		t.Errorf("Expected 400 steps and callbacks, got %d and %d", result.Steps, calls)
	}
	want := []string{
		"step 2: place sunflower at (1,0)", // 冷却中
		"step 4: shovel (3,3)",             // 空格子
	}
	if !reflect.DeepEqual(result.Rejected, want) {
		t.Errorf("Expected rejected %v, got %v", want, result.Rejected)
	}
	if !lateFlower {
		t.Error("Expected sunflower planted after cooldown at step 300")
	}
	if level != 2 {
		t.Errorf("Expected peashooter upgraded to level 2, got %d", level)
	}
}

func TestRunScenarioDeterministic(t *testing.T) {
	sc, err := ParseScenario([]byte(testScenario))
	if err != nil {
		t.Fatalf("ParseScenario: %v", err)
	}
	sc.Steps = 2000

	first, err := RunScenario(Options{}, sc, nil)
	if err != nil {
		t.Fatalf("RunScenario: %v", err)
	}
	second, err := RunScenario(Options{}, sc, nil)
	if err != nil {
		t.Fatalf("RunScenario: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical results, got %+v and %+v", first, second)
	}
}

func TestRunScenarioUnknownDifficulty(t *testing.T) {
	sc := &Scenario{Difficulty: "nightmare", Steps: 1}
	if _, err := RunScenario(Options{}, sc, nil); err == nil {
		t.Error("Expected error for unknown difficulty")
	}
}
