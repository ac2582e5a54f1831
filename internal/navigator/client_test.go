package navigator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/savia-portfolio-chat/internal/classify"
	"github.com/savia-portfolio-chat/internal/jsonx"
)

func TestLocalClassifierMapsAnswer(t *testing.T) {
	engine := classify.NewCachedEngine(classify.NewEngine(zaptest.NewLogger(t)), nil)
	lc := NewLocalClassifier(engine)

	reply, err := lc.Classify(context.Background(), "we are hiring")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if !reply.Contact {
		t.Error("recruiter answer must set contact")
	}
	if reply.Message == "" {
		t.Error("answer text missing")
	}
}

func TestRemoteClassifierRoundTrip(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := jsonx.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Message != "hello there" {
			t.Errorf("unexpected message %q", req.Message)
		}
		data, _ := jsonx.Marshal(chatResponse{Message: Reply{Message: "remote answer", Contact: true}})
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}))
	defer ts.Close()

	rc := NewRemoteClassifier(ts.URL, 0)
	reply, err := rc.Classify(context.Background(), "hello there")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if reply.Message != "remote answer" || !reply.Contact {
		t.Errorf("unexpected reply %+v", reply)
	}
}

func TestRemoteClassifierNon200(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	rc := NewRemoteClassifier(ts.URL, 0)
	if _, err := rc.Classify(context.Background(), "hello"); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}
