package game

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"

	"github.com/quasilyte/gdata/v2"
)

// ScoreStore 最高分的持久化接口
// 初始化时读取一次，对局结束时写入
type ScoreStore interface {
	GetHighScore(ctx context.Context) (int, error)
	SetHighScore(ctx context.Context, score int) error
}

// 存储路径常量
const (
	scoreObject   = "scores"
	scoreProperty = "highscore"
)

// LocalScoreStore 使用 gdata 在本机保存最高分
// gdataManager 为 nil 时进入降级模式：只在内存中保存
type LocalScoreStore struct {
	gdataManager *gdata.Manager
	mu           sync.Mutex
	memory       int
}

// NewLocalScoreStore 创建本地最高分存储
func NewLocalScoreStore(gdataManager *gdata.Manager) *LocalScoreStore {
	return &LocalScoreStore{gdataManager: gdataManager}
}

// GetHighScore 读取最高分，没有记录时返回 0
func (s *LocalScoreStore) GetHighScore(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gdataManager == nil {
		return s.memory, nil
	}
	if !s.gdataManager.ObjectPropExists(scoreObject, scoreProperty) {
		return 0, nil
	}

	data, err := s.gdataManager.LoadObjectProp(scoreObject, scoreProperty)
	if err != nil {
		return 0, fmt.Errorf("failed to load high score: %w", err)
	}
	score, err := strconv.Atoi(string(data))
	if err != nil {
		return 0, fmt.Errorf("failed to parse high score %q: %w", data, err)
	}
	return score, nil
}

// SetHighScore 写入最高分
// 只在分数高于已有记录时覆盖
func (s *LocalScoreStore) SetHighScore(ctx context.Context, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gdataManager == nil {
		if score > s.memory {
			s.memory = score
		}
		return nil
	}

	if s.gdataManager.ObjectPropExists(scoreObject, scoreProperty) {
		if data, err := s.gdataManager.LoadObjectProp(scoreObject, scoreProperty); err == nil {
			if prev, err := strconv.Atoi(string(data)); err == nil && prev >= score {
				return nil
			}
		}
	}

	if err := s.gdataManager.SaveObjectProp(scoreObject, scoreProperty, []byte(strconv.Itoa(score))); err != nil {
		return fmt.Errorf("failed to save high score: %w", err)
	}
	log.Printf("[ScoreStore] High score saved: %d", score)
	return nil
}

// LoadHighScore 读取最高分，失败时记录日志并返回 0
func LoadHighScore(ctx context.Context, store ScoreStore) int {
	if store == nil {
		return 0
	}
	score, err := store.GetHighScore(ctx)
	if err != nil {
		log.Printf("[ScoreStore] Warning: failed to read high score: %v (using 0)", err)
		return 0
	}
	return score
}

// SaveHighScoreAsync 在后台写入最高分，不阻塞游戏帧
// 返回的 channel 在写入结束后关闭
func SaveHighScoreAsync(ctx context.Context, store ScoreStore, score int) <-chan struct{} {
	done := make(chan struct{})
	if store == nil {
		close(done)
		return done
	}
	go func() {
		defer close(done)
		if err := store.SetHighScore(ctx, score); err != nil {
			log.Printf("[ScoreStore] Warning: failed to save high score: %v", err)
		}
	}()
	return done
}
