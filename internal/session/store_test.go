package session

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/savia-portfolio-chat/internal/content"
	"github.com/savia-portfolio-chat/internal/navigator"
)

type stubClassifier struct{}

func (stubClassifier) Classify(context.Context, string) (navigator.Reply, error) {
	return navigator.Reply{Message: "stub"}, nil
}

func newTestStore(t *testing.T, capacity int) *Store {
	t.Helper()
	cat, err := content.Load()
	if err != nil {
		t.Fatalf("content.Load: %v", err)
	}
	store, err := NewStore(capacity, cat, stubClassifier{}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func TestCreateAndGet(t *testing.T) {
	store := newTestStore(t, 8)

	sess := store.Create()
	if sess.ID == "" {
		t.Fatal("session must get an id")
	}
	if len(sess.Transcript()) != 1 {
		t.Error("new session must carry the greeting")
	}

	got, err := store.Get(sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != sess {
		t.Error("Get returned a different session")
	}
}

func TestGetUnknownID(t *testing.T) {
	store := newTestStore(t, 8)

	if _, err := store.Get("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	store := newTestStore(t, 8)

	sess := store.Create()
	if !store.Remove(sess.ID) {
		t.Fatal("Remove must report the id was present")
	}
	if store.Remove(sess.ID) {
		t.Error("second Remove must report absence")
	}
	if _, err := store.Get(sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Error("removed session must not resolve")
	}
}

func TestCapacityEvictsOldest(t *testing.T) {
	store := newTestStore(t, 2)

	first := store.Create()
	store.Create()
	store.Create()

	if store.Len() != 2 {
		t.Fatalf("expected 2 live sessions, got %d", store.Len())
	}
	if _, err := store.Get(first.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Error("oldest session must have been evicted")
	}

	created, evicted := store.Stats()
	if created != 3 || evicted != 1 {
		t.Errorf("expected 3 created / 1 evicted, got %d / %d", created, evicted)
	}
}
