// Package server exposes the chat service over HTTP and WebSocket.
package server

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/savia-portfolio-chat/internal/jsonx"
	"github.com/savia-portfolio-chat/internal/navigator"
	"github.com/savia-portfolio-chat/internal/session"
)

const maxBodyBytes = 1 << 20

// Server wires the session store and the classifier into handlers.
type Server struct {
	store      *session.Store
	classifier navigator.Classifier
	logger     *zap.Logger
	upgrader   websocket.Upgrader
}

// NewServer creates the HTTP server.
func NewServer(store *session.Store, classifier navigator.Classifier, logger *zap.Logger) *Server {
	return &Server{
		store:      store,
		classifier: classifier,
		logger:     logger.Named("server"),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// SetupRoutes configures the HTTP routes.
func (s *Server) SetupRoutes(r *mux.Router) {
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/chat", s.handleClassify).Methods("POST")
	api.HandleFunc("/chat", s.handleChatHealth).Methods("GET")

	api.HandleFunc("/sessions", s.handleCreateSession).Methods("POST")
	api.HandleFunc("/sessions/{id}", s.handleGetSession).Methods("GET")
	api.HandleFunc("/sessions/{id}", s.handleDeleteSession).Methods("DELETE")
	api.HandleFunc("/sessions/{id}/messages", s.handleSendMessage).Methods("POST")
	api.HandleFunc("/sessions/{id}/buttons", s.handleSendButton).Methods("POST")

	api.HandleFunc("/stats", s.handleStats).Methods("GET")

	r.HandleFunc("/health", s.handleHealth).Methods("GET")
	r.HandleFunc("/ws/chat", s.handleWebSocket)
}

// ChatRequest is the stateless classify request body.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse wraps a reply the way the site's widget expects it.
type ChatResponse struct {
	Message   navigator.Reply `json:"message"`
	Timestamp string          `json:"timestamp"`
}

func chatResponse(reply navigator.Reply) ChatResponse {
	return ChatResponse{Message: reply, Timestamp: time.Now().UTC().Format(time.RFC3339)}
}

// MessageRequest is one free-text turn in a session.
type MessageRequest struct {
	Message string `json:"message"`
}

// ButtonRequest is one chip press in a session.
type ButtonRequest struct {
	Button navigator.Button `json:"button"`
}

// SessionResponse describes a session and its transcript.
type SessionResponse struct {
	SessionID  string              `json:"session_id"`
	Busy       bool                `json:"busy"`
	Transcript []navigator.Message `json:"transcript"`
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	// A body that does not parse classifies as the empty message, which
	// resolves to the default welcome answer.
	var req ChatRequest
	if body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes)); err == nil {
		if err := jsonx.Unmarshal(body, &req); err != nil {
			s.logger.Debug("unparseable chat body", zap.Error(err))
		}
	}

	reply, err := s.classifier.Classify(r.Context(), req.Message)
	if err != nil {
		s.logger.Error("classify failed", zap.Error(err))
		http.Error(w, "Failed to generate response", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, chatResponse(reply))
}

func (s *Server) handleChatHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":    "Chat API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	sess := s.store.Create()
	s.logger.Info("session created", zap.String("session_id", sess.ID))
	s.writeJSON(w, http.StatusCreated, SessionResponse{
		SessionID:  sess.ID,
		Transcript: sess.Transcript(),
	})
}

func sessionResponse(sess *navigator.Session) SessionResponse {
	return SessionResponse{
		SessionID:  sess.ID,
		Busy:       sess.Busy(),
		Transcript: sess.Transcript(),
	}
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.resolve(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, sessionResponse(sess))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !s.store.Remove(id) {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.resolve(w, r)
	if !ok {
		return
	}
	var req MessageRequest
	if !s.decode(w, r, &req) {
		return
	}

	reply, err := sess.HandleText(r.Context(), req.Message)
	if err != nil {
		s.turnError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, chatResponse(reply))
}

func (s *Server) handleSendButton(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.resolve(w, r)
	if !ok {
		return
	}
	var req ButtonRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Button.Action == "" {
		http.Error(w, "Button action is required", http.StatusBadRequest)
		return
	}

	reply, err := sess.HandleButton(r.Context(), req.Button)
	if err != nil {
		s.turnError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, chatResponse(reply))
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	created, evicted := s.store.Stats()
	s.writeJSON(w, http.StatusOK, map[string]int64{
		"sessions_live":    int64(s.store.Len()),
		"sessions_created": created,
		"sessions_evicted": evicted,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) resolve(w http.ResponseWriter, r *http.Request) (*navigator.Session, bool) {
	id := mux.Vars(r)["id"]
	sess, err := s.store.Get(id)
	if err != nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return nil, false
	}
	return sess, true
}

func (s *Server) turnError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, navigator.ErrBusy):
		http.Error(w, "Session is busy", http.StatusConflict)
	case errors.Is(err, navigator.ErrEmptyMessage):
		http.Error(w, "Message is required", http.StatusBadRequest)
	default:
		s.logger.Error("turn failed", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	if err := jsonx.Unmarshal(body, v); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := jsonx.Marshal(v)
	if err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
