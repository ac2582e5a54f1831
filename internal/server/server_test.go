package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/savia-portfolio-chat/internal/classify"
	"github.com/savia-portfolio-chat/internal/content"
	"github.com/savia-portfolio-chat/internal/jsonx"
	"github.com/savia-portfolio-chat/internal/navigator"
	"github.com/savia-portfolio-chat/internal/session"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := zaptest.NewLogger(t)

	cat, err := content.Load()
	require.NoError(t, err)

	engine := classify.NewEngine(logger)
	classifier := navigator.NewLocalClassifier(classify.NewCachedEngine(engine, nil))

	store, err := session.NewStore(16, cat, classifier, logger)
	require.NoError(t, err)

	r := mux.NewRouter()
	NewServer(store, classifier, logger).SetupRoutes(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := jsonx.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, jsonx.NewDecoder(resp.Body).Decode(v))
}

func TestClassifyEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/chat", ChatRequest{Message: "we are hiring"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out ChatResponse
	decodeBody(t, resp, &out)
	require.True(t, out.Message.Contact)
	require.NotEmpty(t, out.Message.Message)
}

func TestChatHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/chat")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]string
	decodeBody(t, resp, &out)
	require.Equal(t, "Chat API is running", out["status"])
	require.NotEmpty(t, out["timestamp"])
}

func TestSessionLifecycle(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/sessions", struct{}{})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created SessionResponse
	decodeBody(t, resp, &created)
	require.NotEmpty(t, created.SessionID)
	require.Len(t, created.Transcript, 1)

	resp, err := http.Get(ts.URL + "/api/sessions/" + created.SessionID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/sessions/"+created.SessionID, nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(ts.URL + "/api/sessions/" + created.SessionID)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestSessionMessageFastPath(t *testing.T) {
	ts := newTestServer(t)

	var created SessionResponse
	decodeBody(t, postJSON(t, ts.URL+"/api/sessions", struct{}{}), &created)

	resp := postJSON(t, ts.URL+"/api/sessions/"+created.SessionID+"/messages", MessageRequest{Message: "show me your work"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out ChatResponse
	decodeBody(t, resp, &out)
	require.True(t, out.Message.Work)
	require.True(t, out.Message.Portfolio)
	require.Len(t, out.Message.Buttons, 2)
}

func TestSessionMessageValidation(t *testing.T) {
	ts := newTestServer(t)

	var created SessionResponse
	decodeBody(t, postJSON(t, ts.URL+"/api/sessions", struct{}{}), &created)

	resp := postJSON(t, ts.URL+"/api/sessions/"+created.SessionID+"/messages", MessageRequest{Message: "   "})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, ts.URL+"/api/sessions/unknown/messages", MessageRequest{Message: "hello"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestSessionButtonDispatch(t *testing.T) {
	ts := newTestServer(t)

	var created SessionResponse
	decodeBody(t, postJSON(t, ts.URL+"/api/sessions", struct{}{}), &created)

	resp := postJSON(t, ts.URL+"/api/sessions/"+created.SessionID+"/buttons", ButtonRequest{
		Button: navigator.Button{ID: "skills", Text: "Skills", Action: navigator.ActionSkills},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out ChatResponse
	decodeBody(t, resp, &out)
	require.Len(t, out.Message.Buttons, 4)

	resp = postJSON(t, ts.URL+"/api/sessions/"+created.SessionID+"/buttons", ButtonRequest{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestStatsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var created SessionResponse
	decodeBody(t, postJSON(t, ts.URL+"/api/sessions", struct{}{}), &created)

	resp, err := http.Get(ts.URL + "/api/stats")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]int64
	decodeBody(t, resp, &out)
	require.Equal(t, int64(1), out["sessions_live"])
	require.Equal(t, int64(1), out["sessions_created"])
}

func TestWebSocketChat(t *testing.T) {
	ts := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/chat"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// greeting frame arrives first
	var hello struct {
		Type    string         `json:"type"`
		Payload WSReplyPayload `json:"payload"`
	}
	require.NoError(t, conn.ReadJSON(&hello))
	require.Equal(t, "session", hello.Type)
	require.NotEmpty(t, hello.Payload.SessionID)
	require.Len(t, hello.Payload.Reply.Buttons, 6)

	require.NoError(t, conn.WriteJSON(map[string]any{
		"type":    "button",
		"payload": WSButtonPayload{Button: navigator.Button{ID: "my-work", Text: "My Work", Action: navigator.ActionWork}},
	}))

	var out struct {
		Type    string         `json:"type"`
		Payload WSReplyPayload `json:"payload"`
	}
	require.NoError(t, conn.ReadJSON(&out))
	require.Equal(t, "response", out.Type)
	require.True(t, out.Payload.Reply.Work)
}

// Frames are exchanged raw here so both directions go through the sonic
// codec rather than the dialer's convenience helpers.
func TestWebSocketTextTurnFrames(t *testing.T) {
	ts := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/chat"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	_, frame, err := conn.ReadMessage()
	require.NoError(t, err)
	var hello struct {
		Type    string         `json:"type"`
		Payload WSReplyPayload `json:"payload"`
	}
	require.NoError(t, jsonx.Unmarshal(frame, &hello))
	require.Equal(t, "session", hello.Type)

	out, err := jsonx.Marshal(map[string]any{
		"type":    "text",
		"payload": WSChatPayload{Message: "show me your resume"},
	})
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, out))

	_, frame, err = conn.ReadMessage()
	require.NoError(t, err)
	var resp struct {
		Type    string         `json:"type"`
		Payload WSReplyPayload `json:"payload"`
	}
	require.NoError(t, jsonx.Unmarshal(frame, &resp))
	require.Equal(t, "response", resp.Type)
	require.True(t, resp.Payload.Reply.Resume)
}

type blockingClassifier struct {
	started  chan struct{}
	canceled chan struct{}
}

func (b *blockingClassifier) Classify(ctx context.Context, _ string) (navigator.Reply, error) {
	close(b.started)
	<-ctx.Done()
	close(b.canceled)
	return navigator.Reply{}, ctx.Err()
}

func TestWebSocketCloseCancelsInFlightTurn(t *testing.T) {
	// The abandoned turn can outlive the test briefly, so the logger must too.
	logger := zap.NewNop()

	cat, err := content.Load()
	require.NoError(t, err)

	bc := &blockingClassifier{started: make(chan struct{}), canceled: make(chan struct{})}
	store, err := session.NewStore(16, cat, bc, logger)
	require.NoError(t, err)

	r := mux.NewRouter()
	NewServer(store, bc, logger).SetupRoutes(r)
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/chat"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	_, _, err = conn.ReadMessage() // greeting
	require.NoError(t, err)

	// An unmapped chip action forwards to the classifier, which blocks
	// until its context is canceled.
	out, err := jsonx.Marshal(map[string]any{
		"type":    "button",
		"payload": WSButtonPayload{Button: navigator.Button{ID: "x", Text: "X", Action: "UNMAPPED_TOKEN"}},
	})
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, out))

	select {
	case <-bc.started:
	case <-time.After(3 * time.Second):
		t.Fatal("classifier call never started")
	}

	require.NoError(t, conn.Close())

	select {
	case <-bc.canceled:
	case <-time.After(3 * time.Second):
		t.Fatal("in-flight turn kept running after the socket closed")
	}
}
