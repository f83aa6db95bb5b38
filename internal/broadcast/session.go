package broadcast

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/s21platform/board-service/internal/model"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

const (
	frameRegister      = "register"
	frameRegisterAdmin = "registerAdmin"
	framePing          = "ping"
)

// Session is one websocket connection. Registration keys live only as long
// as the connection.
type Session struct {
	hub    *Hub
	id     string
	socket *websocket.Conn
	send   chan []byte
	keys   map[string]struct{}
}

type inboundFrame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type registerPayload struct {
	ClientID string `json:"clientId"`
}

type registerAdminPayload struct {
	Key string `json:"key"`
}

type registeredPayload struct {
	Role string `json:"role"`
}

type errorPayload struct {
	Error string `json:"error"`
}

func (s *Session) readPump() {
	defer func() {
		s.hub.drop(s)
		_ = s.socket.Close()
	}()

	s.socket.SetReadLimit(maxMessageSize)
	_ = s.socket.SetReadDeadline(time.Now().Add(pongWait))
	s.socket.SetPongHandler(func(string) error {
		return s.socket.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := s.socket.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.hub.logger.Warn(fmt.Sprintf("session %s read error: %v", s.id, err))
			}
			return
		}

		var frame inboundFrame
		if err := json.Unmarshal(message, &frame); err != nil {
			s.reply(model.EventError, errorPayload{Error: "malformed frame"})
			continue
		}

		s.handleFrame(frame)
	}
}

func (s *Session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = s.socket.Close()
	}()

	for {
		select {
		case message, ok := <-s.send:
			_ = s.socket.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = s.socket.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := s.socket.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = s.socket.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.socket.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (s *Session) handleFrame(frame inboundFrame) {
	switch frame.Type {
	case frameRegister:
		var p registerPayload
		if err := json.Unmarshal(frame.Payload, &p); err != nil || strings.TrimSpace(p.ClientID) == "" {
			s.reply(model.EventError, errorPayload{Error: "clientId is required"})
			return
		}

		s.hub.bind(s, model.ClientSessionKey(p.ClientID), func(k string) bool {
			return k != model.AdminSessionKey
		})
		s.reply(model.EventRegistered, registeredPayload{Role: "viewer"})

	case frameRegisterAdmin:
		var p registerAdminPayload
		if err := json.Unmarshal(frame.Payload, &p); err != nil || !s.hub.checkAdminKey(p.Key) {
			s.hub.logger.Warn(fmt.Sprintf("session %s presented an invalid admin key", s.id))
			s.reply(model.EventError, errorPayload{Error: "invalid admin key"})
			return
		}

		s.hub.bind(s, model.AdminSessionKey, nil)
		s.reply(model.EventRegistered, registeredPayload{Role: "admin"})

	case framePing:
		s.reply(model.EventPong, "pong")

	default:
		s.hub.logger.Warn(fmt.Sprintf("session %s sent unknown frame type %q", s.id, frame.Type))
	}
}

// reply sends a frame to this session only, through the hub so it cannot
// race with Run closing the send channel.
func (s *Session) reply(eventType string, payload any) {
	data, err := json.Marshal(model.Event{Type: eventType, Payload: payload})
	if err != nil {
		return
	}

	s.hub.deliver(data, func(other *Session) bool { return other == s })
}
