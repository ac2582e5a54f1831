// Package session keeps live conversations in a bounded LRU store. Idle
// sessions fall off the end instead of accumulating for the life of the
// process.
package session

import (
	"errors"
	"sync/atomic"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/savia-portfolio-chat/internal/content"
	"github.com/savia-portfolio-chat/internal/navigator"
)

// ErrSessionNotFound is returned for unknown or evicted session ids.
var ErrSessionNotFound = errors.New("session not found")

const defaultCapacity = 1024

// Store creates and resolves sessions by id.
type Store struct {
	sessions   *lru.Cache[string, *navigator.Session]
	catalog    *content.Catalog
	classifier navigator.Classifier
	logger     *zap.Logger

	created atomic.Int64
	evicted atomic.Int64
}

// NewStore builds a store holding at most capacity sessions.
func NewStore(capacity int, catalog *content.Catalog, classifier navigator.Classifier, logger *zap.Logger) (*Store, error) {
	if capacity <= 0 {
		capacity = defaultCapacity
	}

	s := &Store{
		catalog:    catalog,
		classifier: classifier,
		logger:     logger.Named("sessions"),
	}

	cache, err := lru.NewWithEvict(capacity, func(id string, _ *navigator.Session) {
		s.evicted.Add(1)
		s.logger.Debug("session evicted", zap.String("session_id", id))
	})
	if err != nil {
		return nil, err
	}
	s.sessions = cache
	return s, nil
}

// Create starts a new session under a fresh id.
func (s *Store) Create() *navigator.Session {
	id := uuid.NewString()
	sess := navigator.NewSession(id, s.catalog, s.classifier, s.logger)
	s.sessions.Add(id, sess)
	s.created.Add(1)
	return sess
}

// Get resolves a session by id, refreshing its LRU position.
func (s *Store) Get(id string) (*navigator.Session, error) {
	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Remove drops a session. It reports whether the id was present.
func (s *Store) Remove(id string) bool {
	return s.sessions.Remove(id)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	return s.sessions.Len()
}

// Stats returns lifetime created and evicted counts.
func (s *Store) Stats() (created, evicted int64) {
	return s.created.Load(), s.evicted.Load()
}
