package scenes

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// recordingControls 记录键盘触发的操作
type recordingControls struct {
	cards   []int
	actions []string
}

func (c *recordingControls) SelectCard(index int) bool {
	c.cards = append(c.cards, index)
	return true
}
func (c *recordingControls) ToggleShovel()     { c.actions = append(c.actions, "shovel") }
func (c *recordingControls) CancelSelection()  { c.actions = append(c.actions, "cancel") }
func (c *recordingControls) CycleSpeed() int   { c.actions = append(c.actions, "speed"); return 2 }
func (c *recordingControls) ToggleMusic() bool { c.actions = append(c.actions, "music"); return false }
func (c *recordingControls) ToggleMute() bool  { c.actions = append(c.actions, "mute"); return false }

func pressed(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, key := range keys {
			if key == k {
				return true
			}
		}
		return false
	}
}

// TestApplyKeys 测试键盘快捷键
func TestApplyKeys(t *testing.T) {
	tests := []struct {
		name    string
		keys    []ebiten.Key
		cards   []int
		actions []string
	}{
		{"数字键选择卡片", []ebiten.Key{ebiten.KeyDigit1}, []int{0}, nil},
		{"第9张卡片", []ebiten.Key{ebiten.KeyDigit9}, []int{8}, nil},
		{"铲子", []ebiten.Key{ebiten.KeyS}, nil, []string{"shovel"}},
		{"取消选择", []ebiten.Key{ebiten.KeyEscape}, nil, []string{"cancel"}},
		{"切换速度", []ebiten.Key{ebiten.KeySpace}, nil, []string{"speed"}},
		{"音乐和音效", []ebiten.Key{ebiten.KeyM, ebiten.KeyN}, nil, []string{"music", "mute"}},
		{"无按键", nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &recordingControls{}
			ApplyKeys(c, pressed(tt.keys...))

			if len(c.cards) != len(tt.cards) {
				t.Fatalf("Expected cards %v, got %v", tt.cards, c.cards)
			}
			for i := range tt.cards {
				if c.cards[i] != tt.cards[i] {
					t.Errorf("Expected cards %v, got %v", tt.cards, c.cards)
				}
			}
			if len(c.actions) != len(tt.actions) {
				t.Fatalf("Expected actions %v, got %v", tt.actions, c.actions)
			}
			for i := range tt.actions {
				if c.actions[i] != tt.actions[i] {
					t.Errorf("Expected actions %v, got %v", tt.actions, c.actions)
				}
			}
		})
	}
}
