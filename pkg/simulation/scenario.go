package simulation

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"time"

	"github.com/decker502/lawndefense/pkg/types"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScenario 脚本内容不合法
var ErrInvalidScenario = errors.New("invalid scenario")

// 脚本动作类型
const (
	ActionPlace   = "place"
	ActionUpgrade = "upgrade"
	ActionShovel  = "shovel"
	ActionSpawn   = "spawn"
)

// Scenario 无界面回放脚本
// 同一个脚本和种子总是得到相同的结果
type Scenario struct {
	Name       string           `yaml:"name"`
	Difficulty string           `yaml:"difficulty"`
	Seed       int64            `yaml:"seed"`
	Steps      int              `yaml:"steps"`     // 最多推进的步数
	Snapshots  []int            `yaml:"snapshots"` // 需要截图的步数
	Actions    []ScenarioAction `yaml:"actions"`
}

// ScenarioAction 在第 At 步开始前执行的动作（步数从 1 开始）
type ScenarioAction struct {
	At     int    `yaml:"at"`
	Action string `yaml:"action"`
	Plant  string `yaml:"plant,omitempty"`
	Zombie string `yaml:"zombie,omitempty"`
	Row    int    `yaml:"row"`
	Col    int    `yaml:"col"`
}

func (a ScenarioAction) String() string {
	switch a.Action {
	case ActionPlace:
		return fmt.Sprintf("step %d: place %s at (%d,%d)", a.At, a.Plant, a.Row, a.Col)
	case ActionSpawn:
		return fmt.Sprintf("step %d: spawn %s in row %d", a.At, a.Zombie, a.Row)
	default:
		return fmt.Sprintf("step %d: %s (%d,%d)", a.At, a.Action, a.Row, a.Col)
	}
}

// ParseScenario 解析 YAML 脚本并校验
// 动作按步数稳定排序
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	sort.SliceStable(sc.Actions, func(i, j int) bool { return sc.Actions[i].At < sc.Actions[j].At })
	return &sc, nil
}

// Validate 检查步数、动作类型和植物/僵尸名称
func (sc *Scenario) Validate() error {
	if sc.Steps <= 0 {
		return fmt.Errorf("%w: steps must be positive, got %d", ErrInvalidScenario, sc.Steps)
	}
	for _, s := range sc.Snapshots {
		if s < 1 || s > sc.Steps {
			return fmt.Errorf("%w: snapshot step %d out of range [1, %d]", ErrInvalidScenario, s, sc.Steps)
		}
	}
	for i, a := range sc.Actions {
		if a.At < 1 || a.At > sc.Steps {
			return fmt.Errorf("%w: action %d at step %d out of range [1, %d]", ErrInvalidScenario, i, a.At, sc.Steps)
		}
		switch a.Action {
		case ActionPlace:
			if types.PlantTypeFromString(a.Plant) == types.PlantUnknown {
				return fmt.Errorf("%w: action %d: unknown plant %q", ErrInvalidScenario, i, a.Plant)
			}
		case ActionSpawn:
			if types.ZombieTypeFromString(a.Zombie) == types.ZombieUnknown {
				return fmt.Errorf("%w: action %d: unknown zombie %q", ErrInvalidScenario, i, a.Zombie)
			}
		case ActionUpgrade, ActionShovel:
		default:
			return fmt.Errorf("%w: action %d: unknown action %q", ErrInvalidScenario, i, a.Action)
		}
	}
	return nil
}

// ScenarioClock 按步数推进的时钟，每步 1/60 秒
// 卡片冷却因此与墙钟无关，回放可以重现
type ScenarioClock struct {
	start time.Time
	steps int
}

// NewScenarioClock 创建从 start 开始的时钟
func NewScenarioClock(start time.Time) *ScenarioClock {
	return &ScenarioClock{start: start}
}

// Now 当前时间
func (c *ScenarioClock) Now() time.Time {
	return c.start.Add(time.Duration(c.steps) * time.Second / 60)
}

// Tick 前进一步
func (c *ScenarioClock) Tick() {
	c.steps++
}

// ScenarioResult 回放结果
type ScenarioResult struct {
	Steps         int
	Frames        int
	Level         int
	Score         int
	Sun           int
	ZombiesKilled int
	GameOver      bool
	Rejected      []string // 未能执行的动作
}

// RunScenario 按脚本推进一局游戏
//
// opts 中的 Difficulty、Rand 和 Clock 由脚本决定；其余字段原样使用。
// onStep 在每步之后调用，可以为 nil。
func RunScenario(opts Options, sc *Scenario, onStep func(step int, l *GameLoop)) (*ScenarioResult, error) {
	if sc.Difficulty != "" {
		opts.Difficulty = sc.Difficulty
	}
	clock := NewScenarioClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	opts.Clock = clock
	opts.Rand = rand.New(rand.NewSource(sc.Seed))

	l, err := New(opts)
	if err != nil {
		return nil, err
	}

	result := &ScenarioResult{}
	next := 0
	for step := 1; step <= sc.Steps; step++ {
		for ; next < len(sc.Actions) && sc.Actions[next].At == step; next++ {
			if !l.apply(sc.Actions[next]) {
				result.Rejected = append(result.Rejected, sc.Actions[next].String())
			}
		}

		running := l.Step()
		clock.Tick()
		result.Steps = step
		if onStep != nil {
			onStep(step, l)
		}
		if !running {
			break
		}
	}

	gs := l.gameState
	result.Frames = gs.Frames
	result.Level = gs.GameLevel
	result.Score = gs.Score
	result.Sun = gs.Sun
	result.ZombiesKilled = gs.ZombiesKilled
	result.GameOver = gs.IsGameOver()
	log.Printf("[Scenario] %s finished after %d steps: level=%d score=%d gameOver=%v rejected=%d",
		sc.Name, result.Steps, result.Level, result.Score, result.GameOver, len(result.Rejected))
	return result, nil
}

func (l *GameLoop) apply(a ScenarioAction) bool {
	switch a.Action {
	case ActionPlace:
		return l.Place(types.PlantTypeFromString(a.Plant), a.Row, a.Col)
	case ActionUpgrade:
		return l.Upgrade(a.Row, a.Col)
	case ActionShovel:
		return l.Shovel(a.Row, a.Col)
	case ActionSpawn:
		_, err := l.SpawnZombie(types.ZombieTypeFromString(a.Zombie), a.Row)
		return err == nil
	}
	return false
}
