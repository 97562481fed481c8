package scoreboard

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics 服务指标
// 每个服务实例一个 Registry，测试中可以创建多个实例
type Metrics struct {
	registry    *prometheus.Registry
	submissions *prometheus.CounterVec
	highScore   prometheus.Gauge
	rejected    *prometheus.CounterVec
	wsClients   prometheus.Gauge
	broadcasts  prometheus.Counter
}

// NewMetrics 创建并注册指标
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scoreboard_submissions_total",
			Help: "Score submissions by result",
		}, []string{"result"}), // "record", "accepted", "invalid"
		highScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "scoreboard_high_score",
			Help: "Current high score",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scoreboard_rejected_total",
			Help: "Requests rejected before reaching a handler",
		}, []string{"reason"}),
		wsClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "scoreboard_websocket_clients",
			Help: "Connected live feed clients",
		}),
		broadcasts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scoreboard_broadcasts_total",
			Help: "Messages pushed to live feed clients",
		}),
	}
	m.registry.MustRegister(m.submissions, m.highScore, m.rejected, m.wsClients, m.broadcasts)
	return m
}

// Handler /metrics 处理器
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
