package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/savia-portfolio-chat/internal/jsonx"
	"github.com/savia-portfolio-chat/internal/navigator"
)

// WSMessage is the envelope for both directions of the socket.
type WSMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// WSChatPayload carries a free-text turn.
type WSChatPayload struct {
	Message string `json:"message"`
}

// WSButtonPayload carries a chip press.
type WSButtonPayload struct {
	Button navigator.Button `json:"button"`
}

// WSReplyPayload is sent back for every handled turn.
type WSReplyPayload struct {
	SessionID string          `json:"session_id,omitempty"`
	Reply     navigator.Reply `json:"reply"`
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	sess := s.store.Create()
	s.logger.Info("websocket connected", zap.String("session_id", sess.ID))

	go s.handleWSConnection(conn, sess)
}

func (s *Server) handleWSConnection(conn *websocket.Conn, sess *navigator.Session) {
	// Canceled on teardown so an in-flight classifier call is abandoned
	// when the socket drops.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer conn.Close()
	defer s.store.Remove(sess.ID)

	var wsMu sync.Mutex
	write := func(v any) {
		data, err := jsonx.Marshal(v)
		if err != nil {
			s.logger.Error("failed to encode frame", zap.Error(err))
			return
		}
		wsMu.Lock()
		defer wsMu.Unlock()
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			s.logger.Debug("websocket write error", zap.Error(err))
		}
	}

	// First frame carries the greeting so the client can render immediately.
	greeting := sess.Transcript()
	if len(greeting) > 0 && greeting[0].Reply != nil {
		write(wsEnvelope("session", WSReplyPayload{SessionID: sess.ID, Reply: *greeting[0].Reply}))
	}

	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			s.logger.Debug("websocket read error", zap.Error(err))
			return
		}
		var msg WSMessage
		if err := jsonx.Unmarshal(frame, &msg); err != nil {
			s.logger.Debug("unparseable frame", zap.Error(err))
			continue
		}

		// Turns run off the read loop so a dropped socket is noticed while
		// a classifier call is still in flight; the session's busy gate
		// serializes them.
		switch msg.Type {
		case "text", "chat":
			var payload WSChatPayload
			if err := jsonx.Unmarshal(msg.Payload, &payload); err != nil {
				continue
			}
			go func() {
				reply, err := sess.HandleText(ctx, payload.Message)
				if err != nil {
					write(wsError(err))
					return
				}
				write(wsEnvelope("response", WSReplyPayload{Reply: reply}))
			}()

		case "button":
			var payload WSButtonPayload
			if err := jsonx.Unmarshal(msg.Payload, &payload); err != nil {
				continue
			}
			go func() {
				reply, err := sess.HandleButton(ctx, payload.Button)
				if err != nil {
					write(wsError(err))
					return
				}
				write(wsEnvelope("response", WSReplyPayload{Reply: reply}))
			}()

		case "ping":
			write(map[string]string{"type": "pong"})
		}
	}
}

func wsEnvelope(kind string, payload WSReplyPayload) map[string]any {
	return map[string]any{"type": kind, "payload": payload}
}

func wsError(err error) map[string]any {
	code := "internal"
	switch {
	case errors.Is(err, navigator.ErrBusy):
		code = "busy"
	case errors.Is(err, navigator.ErrEmptyMessage):
		code = "empty"
	}
	return map[string]any{"type": "error", "payload": map[string]string{"code": code, "error": err.Error()}}
}
