// scoreserver 运行远程最高分服务
//
// 用法：
//
//	go run ./cmd/scoreserver -addr :8090 -data scores.yaml
//
// 也可以用环境变量 SCOREBOARD_ADDR、SCOREBOARD_DATA 配置。
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/decker502/lawndefense/pkg/scoreboard"
)

func main() {
	addr := flag.String("addr", envOr("SCOREBOARD_ADDR", ":8090"), "监听地址")
	dataPath := flag.String("data", envOr("SCOREBOARD_DATA", "scores.yaml"), "最高分记录文件，为空时只保存在内存")
	rps := flag.Float64("rps", scoreboard.DefaultRateLimitConfig.RequestsPerSecond, "每个 IP 每秒允许的请求数")
	flag.Parse()

	store, err := scoreboard.NewFileStore(*dataPath)
	if err != nil {
		log.Fatalf("[Scoreboard] %v", err)
	}

	rl := scoreboard.DefaultRateLimitConfig
	rl.RequestsPerSecond = *rps
	srv := scoreboard.NewServer(scoreboard.Config{Store: store, RateLimit: &rl})
	defer srv.Close()

	httpServer := &http.Server{
		Addr:              *addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("[Scoreboard] Listening on %s (high score %d)", *addr, store.Get().HighScore)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[Scoreboard] Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Printf("[Scoreboard] Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("[Scoreboard] Warning: shutdown: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
