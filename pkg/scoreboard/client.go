package scoreboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client 通过 HTTP 读写远程最高分，实现 game.ScoreStore
type Client struct {
	baseURL    string
	difficulty string
	http       *http.Client
}

// NewClient 创建客户端，baseURL 形如 http://localhost:8090
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// WithDifficulty 提交分数时附带的难度名称
func (c *Client) WithDifficulty(name string) *Client {
	c.difficulty = name
	return c
}

// GetHighScore 读取远程最高分
func (c *Client) GetHighScore(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/highscore", nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	var resp highScoreResponse
	if err := c.do(req, &resp); err != nil {
		return 0, err
	}
	return resp.HighScore, nil
}

// SetHighScore 提交分数，是否刷新纪录由服务端决定
func (c *Client) SetHighScore(ctx context.Context, score int) error {
	body, err := json.Marshal(submitRequest{Score: &score, Difficulty: c.difficulty})
	if err != nil {
		return fmt.Errorf("failed to encode score: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/highscore", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, nil)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("scoreboard request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e struct {
			Error string `json:"error"`
		}
		json.NewDecoder(resp.Body).Decode(&e)
		return fmt.Errorf("scoreboard returned %d: %s", resp.StatusCode, e.Error)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode scoreboard response: %w", err)
	}
	return nil
}
