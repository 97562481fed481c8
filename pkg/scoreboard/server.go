package scoreboard

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Config 服务依赖
type Config struct {
	// Store 最高分存储（必填）
	Store *FileStore

	// RateLimit 为 nil 时使用 DefaultRateLimitConfig
	RateLimit *RateLimitConfig

	// CORSOrigins 为 nil 时只允许本机页面
	CORSOrigins []string

	// DisableLogging 关闭请求日志（测试中使用）
	DisableLogging bool
}

// Server 最高分服务
type Server struct {
	store   *FileStore
	hub     *Hub
	limiter *IPRateLimiter
	metrics *Metrics
	router  *chi.Mux
}

// submitRequest POST /api/highscore 请求体
type submitRequest struct {
	Score      *int   `json:"score"`
	Difficulty string `json:"difficulty,omitempty"`
}

// highScoreResponse 两个接口共用的返回体
type highScoreResponse struct {
	HighScore  int    `json:"highScore"`
	Difficulty string `json:"difficulty,omitempty"`
	Updated    bool   `json:"updated"`
}

// NewServer 创建服务并装配路由
func NewServer(cfg Config) *Server {
	metrics := NewMetrics()
	rlCfg := DefaultRateLimitConfig
	if cfg.RateLimit != nil {
		rlCfg = *cfg.RateLimit
	}

	s := &Server{
		store:   cfg.Store,
		hub:     NewHub(metrics),
		limiter: NewIPRateLimiter(rlCfg, metrics),
		metrics: metrics,
	}
	metrics.highScore.Set(float64(cfg.Store.Get().HighScore))

	origins := cfg.CORSOrigins
	if origins == nil {
		origins = []string{"http://localhost:*", "http://127.0.0.1:*"}
	}

	r := chi.NewRouter()
	if !cfg.DisableLogging {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Use(s.limiter.Middleware)
		r.Get("/highscore", s.handleGet)
		r.Post("/highscore", s.handleSubmit)
	})
	r.Get("/ws", s.hub.ServeHTTP)
	r.Handle("/metrics", metrics.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"})
	})

	s.router = r
	return s
}

// Handler 服务的 HTTP 处理器
func (s *Server) Handler() http.Handler {
	return s.router
}

// Hub 直播订阅中心
func (s *Server) Hub() *Hub {
	return s.hub
}

// Close 停止后台协程并断开订阅者
func (s *Server) Close() {
	s.limiter.Stop()
	s.hub.Close()
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	rec := s.store.Get()
	writeJSON(w, highScoreResponse{HighScore: rec.HighScore, Difficulty: rec.Difficulty})
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<10)).Decode(&req); err != nil || req.Score == nil {
		s.metrics.submissions.WithLabelValues("invalid").Inc()
		writeError(w, "body must be {\"score\": <int>}", http.StatusBadRequest)
		return
	}

	rec, updated, err := s.store.Submit(*req.Score, req.Difficulty)
	if errors.Is(err, ErrInvalidScore) {
		s.metrics.submissions.WithLabelValues("invalid").Inc()
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		// 内存中的记录已更新，只是落盘失败
		log.Printf("[Scoreboard] Warning: %v", err)
	}

	if updated {
		s.metrics.submissions.WithLabelValues("record").Inc()
		s.metrics.highScore.Set(float64(rec.HighScore))
		s.hub.Broadcast("highscore:new", rec)
		log.Printf("[Scoreboard] New high score %d (%s)", rec.HighScore, rec.Difficulty)
	} else {
		s.metrics.submissions.WithLabelValues("accepted").Inc()
	}
	writeJSON(w, highScoreResponse{HighScore: rec.HighScore, Difficulty: rec.Difficulty, Updated: updated})
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[Scoreboard] Warning: failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
