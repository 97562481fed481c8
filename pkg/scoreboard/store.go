// Package scoreboard 提供远程最高分服务
//
// 服务端：chi 路由的 HTTP 接口、按 IP 限流、Prometheus 指标和
// 推送新纪录的 WebSocket。客户端 Client 实现 game.ScoreStore，
// 游戏结束时把分数提交到服务端。
package scoreboard

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidScore 提交了负数分数
var ErrInvalidScore = errors.New("invalid score")

// Record 持久化的最高分记录
type Record struct {
	HighScore  int       `yaml:"highScore" json:"highScore"`
	Difficulty string    `yaml:"difficulty,omitempty" json:"difficulty,omitempty"`
	UpdatedAt  time.Time `yaml:"updatedAt" json:"updatedAt"`
	Submitted  int       `yaml:"submitted" json:"submitted"` // 累计提交次数
}

// FileStore 把最高分保存在 YAML 文件中
// path 为空时只在内存中保存
type FileStore struct {
	mu     sync.Mutex
	path   string
	record Record
	now    func() time.Time
}

// NewFileStore 打开或创建记录文件
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, now: time.Now}
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("[Scoreboard] No record at %s, starting from 0", path)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read score file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s.record); err != nil {
		return nil, fmt.Errorf("failed to parse score file %s: %w", path, err)
	}
	log.Printf("[Scoreboard] Loaded high score %d from %s", s.record.HighScore, path)
	return s, nil
}

// Get 当前记录
func (s *FileStore) Get() Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record
}

// Submit 提交一次分数，高于记录时覆盖
// 返回提交后的记录以及是否刷新了纪录
func (s *FileStore) Submit(score int, difficulty string) (Record, bool, error) {
	if score < 0 {
		return Record{}, false, fmt.Errorf("%w: %d", ErrInvalidScore, score)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.record.Submitted++
	updated := score > s.record.HighScore
	if updated {
		s.record.HighScore = score
		s.record.Difficulty = difficulty
		s.record.UpdatedAt = s.now().UTC()
	}
	if err := s.persist(); err != nil {
		return s.record, updated, err
	}
	return s.record, updated, nil
}

// persist 先写临时文件再改名，避免写到一半的文件
func (s *FileStore) persist() error {
	if s.path == "" {
		return nil
	}
	data, err := yaml.Marshal(&s.record)
	if err != nil {
		return fmt.Errorf("failed to encode score record: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create score dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write score file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace score file: %w", err)
	}
	return nil
}
