package simulation

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"
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

// recordingMusic 记录背景音乐开关
type recordingMusic struct {
	enabled []bool
}

func (m *recordingMusic) SetMusicEnabled(enabled bool) { m.enabled = append(m.enabled, enabled) }

// fixedClock 固定时间的时钟
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

// memoryScoreStore 内存中的最高分存储
type memoryScoreStore struct {
	mu    sync.Mutex
	score int
	saves int
}

func (s *memoryScoreStore) GetHighScore(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score, nil
}

func (s *memoryScoreStore) SetHighScore(ctx context.Context, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	if score > s.score {
		s.score = score
	}
	return nil
}

// testLoop 测试用的 GameLoop 及其替身
type testLoop struct {
	*GameLoop
	audio  *recordingAudio
	music  *recordingMusic
	scores *memoryScoreStore
	clock  *fixedClock
}

func newTestLoop(t *testing.T, seed int64) *testLoop {
	t.Helper()
	tl := &testLoop{
		audio:  &recordingAudio{},
		music:  &recordingMusic{},
		scores: &memoryScoreStore{},
		clock:  &fixedClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	loop, err := New(Options{
		Difficulty: "normal",
		Audio:      tl.audio,
		Music:      tl.music,
		Scores:     tl.scores,
		Clock:      tl.clock,
		Rand:       rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tl.GameLoop = loop
	return tl
}

func (tl *testLoop) run(n int) int {
	steps := 0
	for i := 0; i < n; i++ {
		if !tl.Step() {
			break
		}
		steps++
	}
	return steps
}
