package scenes

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// recordingScene 记录调用次数的场景
type recordingScene struct {
	updates   int
	draws     int
	deltaTime float64
	saveOK    bool
	saved     bool
}

func (s *recordingScene) Update(deltaTime float64) {
	s.updates++
	s.deltaTime = deltaTime
}

func (s *recordingScene) Draw(screen *ebiten.Image) { s.draws++ }

func (s *recordingScene) SaveOnExit() bool {
	s.saved = true
	return s.saveOK
}

func TestSceneManager(t *testing.T) {
	t.Run("初始没有场景", func(t *testing.T) {
		sm := NewSceneManager()
		if sm.GetCurrentScene() != nil {
			t.Error("Expected no scene initially")
		}
		// 没有场景时不会 panic
		sm.Update(1.0 / 60.0)
		sm.Draw(ebiten.NewImage(16, 16))
	})

	t.Run("只驱动当前场景", func(t *testing.T) {
		sm := NewSceneManager()
		first := &recordingScene{}
		second := &recordingScene{}

		sm.SwitchTo(first)
		sm.Update(0.5)
		sm.SwitchTo(second)
		sm.Update(1.0 / 60.0)
		sm.Draw(ebiten.NewImage(16, 16))

		if first.updates != 1 || first.draws != 0 {
			t.Errorf("Expected first scene updated once and never drawn, got %d/%d", first.updates, first.draws)
		}
		if second.updates != 1 || second.draws != 1 {
			t.Errorf("Expected second scene updated and drawn once, got %d/%d", second.updates, second.draws)
		}
		if first.deltaTime != 0.5 {
			t.Errorf("Expected deltaTime 0.5, got %v", first.deltaTime)
		}
		if sm.GetCurrentScene() != second {
			t.Error("Expected current scene to be the second scene")
		}
	})

	t.Run("退出时保存", func(t *testing.T) {
		sm := NewSceneManager()
		scene := &recordingScene{saveOK: true}
		sm.SwitchTo(scene)

		s, ok := sm.GetCurrentScene().(Saveable)
		if !ok {
			t.Fatal("Expected scene to implement Saveable")
		}
		if !s.SaveOnExit() || !scene.saved {
			t.Error("Expected SaveOnExit to be called and succeed")
		}
	})
}
