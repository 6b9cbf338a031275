package sessions

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/regulaai/regula/pkg/lifecycle"
)

const sweepInterval = 5 * time.Minute

// Store holds all live sessions in memory, keyed by session ID.
// All access goes through its methods so that concurrent requests from
// different sessions never share mutable state. Sessions idle past the
// configured TTL are purged by a background sweep.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
	logger   *slog.Logger
}

// NewStore creates an empty session store with the given idle TTL.
func NewStore(ttl time.Duration, logger *slog.Logger) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
		logger:   logger.With("system", "sessions"),
	}
}

// Start registers the idle-session sweep with the lifecycle coordinator.
// The sweep stops when the coordinator's context is cancelled.
func (s *Store) Start(lc *lifecycle.Coordinator) {
	ctx := lc.Context()
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()
}

// Issue creates a new authenticated session and returns its ID.
func (s *Store) Issue() uuid.UUID {
	id := uuid.New()
	now := time.Now()

	s.mu.Lock()
	s.sessions[id] = &Session{
		ID:        id,
		CreatedAt: now,
		LastSeen:  now,
	}
	s.mu.Unlock()

	s.logger.Info("session issued", "id", id)
	return id
}

// Valid reports whether the given ID belongs to a live session,
// refreshing its last-seen time when it does.
func (s *Store) Valid(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	sess.LastSeen = time.Now()
	return true
}

// Revoke removes the session. State held by the session (contract text,
// chat history, improved text) is discarded with it; a fresh login starts
// clean.
func (s *Store) Revoke(id uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()

	s.logger.Info("session revoked", "id", id)
}

// SetContract replaces the session's contract wholesale.
func (s *Store) SetContract(id uuid.UUID, c Contract) error {
	return s.update(id, func(sess *Session) {
		sess.Contract = c
	})
}

// Contract returns the session's current contract. An empty contract is a
// valid "nothing loaded" state, not an error.
func (s *Store) Contract(id uuid.UUID) (Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Contract{}, ErrNoSession
	}
	return sess.Contract, nil
}

// AppendExchange appends a chat exchange to the session's history.
func (s *Store) AppendExchange(id uuid.UUID, ex Exchange) error {
	return s.update(id, func(sess *Session) {
		sess.ChatHistory = append(sess.ChatHistory, ex)
	})
}

// History returns a copy of the session's chat history in append order.
func (s *Store) History(id uuid.UUID) ([]Exchange, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNoSession
	}

	history := make([]Exchange, len(sess.ChatHistory))
	copy(history, sess.ChatHistory)
	return history, nil
}

// SetImproved stores the most recent improved contract text.
func (s *Store) SetImproved(id uuid.UUID, text string) error {
	return s.update(id, func(sess *Session) {
		sess.LastImproved = text
	})
}

// Improved returns the most recent improved contract text, empty when the
// improve operation has not run in this session.
func (s *Store) Improved(id uuid.UUID) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return "", ErrNoSession
	}
	return sess.LastImproved, nil
}

// Count returns the number of live sessions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) update(id uuid.UUID, fn func(*Session)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrNoSession
	}
	fn(sess)
	sess.LastSeen = time.Now()
	return nil
}

func (s *Store) sweep() {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	var purged int
	for id, sess := range s.sessions {
		if sess.LastSeen.Before(cutoff) {
			delete(s.sessions, id)
			purged++
		}
	}
	s.mu.Unlock()

	if purged > 0 {
		s.logger.Info("idle sessions purged", "count", purged)
	}
}
