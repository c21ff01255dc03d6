package memory

import (
	"context"
	"sync"
	"time"

	"salon-booking/internal/domain/auth"
	"salon-booking/internal/pkg/clock"
)

type sessionEntry struct {
	session   *auth.Session
	expiresAt time.Time
}

// SessionStore is the in-process OTP session store. Entries past their TTL read as absent.
type SessionStore struct {
	mu      sync.Mutex
	entries map[string]sessionEntry
	clock   clock.Clock
}

func NewSessionStore(clk clock.Clock) *SessionStore {
	return &SessionStore{
		entries: make(map[string]sessionEntry),
		clock:   clk,
	}
}

func (s *SessionStore) Load(_ context.Context, identifier auth.Identifier) (*auth.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[identifier.Value()]
	if !ok {
		return nil, nil
	}
	if !s.clock.Now().Before(e.expiresAt) {
		delete(s.entries, identifier.Value())
		return nil, nil
	}
	return e.session.Clone(), nil
}

func (s *SessionStore) Save(_ context.Context, session *auth.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[session.Identifier().Value()] = sessionEntry{
		session:   session.Clone(),
		expiresAt: s.clock.Now().Add(ttl),
	}
	return nil
}

// Len counts stored entries, expired or not.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
