package scoreboard

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// 连接限制
const (
	maxFeedClients = 200
	writeTimeout   = 5 * time.Second
	broadcastQueue = 64
)

// Event 推送给直播订阅者的消息
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub 管理 /ws 订阅者，新纪录产生时推送。
// 所有写操作都在 run 协程中完成，每个连接同一时刻只有一个写者。
type Hub struct {
	mu        sync.Mutex
	clients   map[*websocket.Conn]struct{}
	broadcast chan []byte
	done      chan struct{}
	closeOnce sync.Once
	metrics   *Metrics
	upgrader  websocket.Upgrader
}

// NewHub 创建订阅中心并启动推送协程
func NewHub(metrics *Metrics) *Hub {
	h := &Hub{
		clients:   make(map[*websocket.Conn]struct{}),
		broadcast: make(chan []byte, broadcastQueue),
		done:      make(chan struct{}),
		metrics:   metrics,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	go h.run()
	return h
}

// run 串行写出排队的消息，直到 Close
func (h *Hub) run() {
	for {
		select {
		case <-h.done:
			return
		case msg := <-h.broadcast:
			h.mu.Lock()
			conns := make([]*websocket.Conn, 0, len(h.clients))
			for conn := range h.clients {
				conns = append(conns, conn)
			}
			h.mu.Unlock()

			for _, conn := range conns {
				conn.SetWriteDeadline(time.Now().Add(writeTimeout))
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					h.remove(conn)
				}
			}
			h.metrics.broadcasts.Inc()
		}
	}
}

// checkOrigin 允许原生客户端（无 Origin）和本机页面
func (h *Hub) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || strings.HasPrefix(origin, "http://localhost") || strings.HasPrefix(origin, "http://127.0.0.1") {
		return true
	}
	log.Printf("[Scoreboard] WebSocket rejected from origin %s", origin)
	h.metrics.rejected.WithLabelValues("origin").Inc()
	return false
}

// ServeHTTP 升级连接并登记订阅者
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.ClientCount() >= maxFeedClients {
		h.metrics.rejected.WithLabelValues("ws_limit").Inc()
		writeError(w, "too many connections", http.StatusServiceUnavailable)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Scoreboard] WebSocket upgrade failed: %v", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()
	h.metrics.wsClients.Set(float64(count))
	log.Printf("[Scoreboard] Feed client connected from %s (%d total)", ClientIP(r), count)

	// 订阅者不发送消息，读循环只用于发现断开
	go func() {
		defer h.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Broadcast 把事件排入推送队列，队列满时丢弃
func (h *Hub) Broadcast(event string, data interface{}) {
	msg, err := json.Marshal(Event{Event: event, Data: data})
	if err != nil {
		log.Printf("[Scoreboard] Warning: failed to encode %s event: %v", event, err)
		return
	}

	select {
	case <-h.done:
	case h.broadcast <- msg:
	default:
		h.metrics.rejected.WithLabelValues("backpressure").Inc()
		log.Printf("[Scoreboard] Warning: feed queue full, dropped %s event", event)
	}
}

// ClientCount 当前订阅者数量
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close 停止推送协程并断开所有订阅者
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
	h.metrics.wsClients.Set(0)
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	_, ok := h.clients[conn]
	delete(h.clients, conn)
	count := len(h.clients)
	h.mu.Unlock()
	if !ok {
		return
	}
	conn.Close()
	h.metrics.wsClients.Set(float64(count))
	log.Printf("[Scoreboard] Feed client disconnected (%d remaining)", count)
}
