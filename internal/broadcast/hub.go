package broadcast

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/board-service/internal/model"
)

const defaultSendBuffer = 256

// Hub keeps the websocket sessions of this instance and delivers events to
// them. Delivery never waits on a session: a full send buffer drops it.
type Hub struct {
	sessions   map[*Session]struct{}
	register   chan *Session
	unregister chan *Session
	done       chan struct{}
	mutex      sync.RWMutex

	adminKey   string
	sendBuffer int
	upgrader   websocket.Upgrader
	logger     logger_lib.LoggerInterface

	sessionGauge prometheus.Gauge
	eventCounter *prometheus.CounterVec
}

type Option func(*Hub)

func WithSendBuffer(size int) Option {
	return func(h *Hub) {
		if size > 0 {
			h.sendBuffer = size
		}
	}
}

func WithSessionGauge(g prometheus.Gauge) Option {
	return func(h *Hub) {
		h.sessionGauge = g
	}
}

// WithEventCounter counts delivered frames by event type.
func WithEventCounter(c *prometheus.CounterVec) Option {
	return func(h *Hub) {
		h.eventCounter = c
	}
}

func NewHub(adminKey string, logger logger_lib.LoggerInterface, opts ...Option) *Hub {
	h := &Hub{
		sessions:   make(map[*Session]struct{}),
		register:   make(chan *Session),
		unregister: make(chan *Session),
		done:       make(chan struct{}),
		adminKey:   adminKey,
		sendBuffer: defaultSendBuffer,
		logger:     logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Run owns session registration until ctx is cancelled, then closes every
// remaining session.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.mutex.Lock()
			for s := range h.sessions {
				delete(h.sessions, s)
				close(s.send)
			}
			h.mutex.Unlock()
			h.observeSessions(0)
			return

		case s := <-h.register:
			h.mutex.Lock()
			h.sessions[s] = struct{}{}
			total := len(h.sessions)
			h.mutex.Unlock()
			h.observeSessions(total)

			go s.writePump()
			go s.readPump()

			h.logger.Info(fmt.Sprintf("session %s connected, total sessions: %d", s.id, total))

		case s := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.sessions[s]; ok {
				delete(h.sessions, s)
				close(s.send)
			}
			total := len(h.sessions)
			h.mutex.Unlock()
			h.observeSessions(total)

			h.logger.Info(fmt.Sprintf("session %s disconnected, total sessions: %d", s.id, total))
		}
	}
}

// ServeWS upgrades the request and hands the connection to Run.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error(fmt.Sprintf("websocket upgrade failed: %v", err))
		return
	}

	s := &Session{
		hub:    h,
		id:     uuid.NewString(),
		socket: conn,
		send:   make(chan []byte, h.sendBuffer),
		keys:   make(map[string]struct{}),
	}

	select {
	case h.register <- s:
	case <-h.done:
		_ = conn.Close()
	}
}

func (h *Hub) Publish(_ context.Context, event model.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error(fmt.Sprintf("failed to marshal %s event: %v", event.Type, err))
		return
	}

	h.Broadcast(data)
	h.countEvent(event.Type)
}

func (h *Hub) PublishTo(_ context.Context, sessionKey string, event model.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error(fmt.Sprintf("failed to marshal %s event: %v", event.Type, err))
		return
	}

	h.SendTo(sessionKey, data)
	h.countEvent(event.Type)
}

// Broadcast delivers an encoded frame to every session.
func (h *Hub) Broadcast(data []byte) {
	h.deliver(data, func(*Session) bool { return true })
}

// SendTo delivers an encoded frame to sessions registered under sessionKey.
func (h *Hub) SendTo(sessionKey string, data []byte) {
	h.deliver(data, func(s *Session) bool {
		_, ok := s.keys[sessionKey]
		return ok
	})
}

// SessionCount is the number of open sessions on this instance.
func (h *Hub) SessionCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.sessions)
}

func (h *Hub) deliver(data []byte, match func(*Session) bool) {
	var slow []*Session

	h.mutex.RLock()
	for s := range h.sessions {
		if !match(s) {
			continue
		}
		select {
		case s.send <- data:
		default:
			slow = append(slow, s)
		}
	}
	h.mutex.RUnlock()

	for _, s := range slow {
		h.logger.Warn(fmt.Sprintf("session %s send buffer full, dropping", s.id))
		go h.drop(s)
	}
}

func (h *Hub) drop(s *Session) {
	select {
	case h.unregister <- s:
	case <-h.done:
	}
}

// bind registers s under key. Keys are guarded by the hub mutex because
// deliver reads them.
func (h *Hub) bind(s *Session, key string, replacePrefix func(string) bool) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if replacePrefix != nil {
		for k := range s.keys {
			if replacePrefix(k) {
				delete(s.keys, k)
			}
		}
	}
	s.keys[key] = struct{}{}
}

func (h *Hub) checkAdminKey(key string) bool {
	if h.adminKey == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), []byte(h.adminKey)) == 1
}

func (h *Hub) observeSessions(total int) {
	if h.sessionGauge != nil {
		h.sessionGauge.Set(float64(total))
	}
}

func (h *Hub) countEvent(eventType string) {
	if h.eventCounter != nil {
		h.eventCounter.WithLabelValues(eventType).Inc()
	}
}
