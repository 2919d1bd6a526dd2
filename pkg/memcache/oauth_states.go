// pkg/memcache/oauth_states.go
package mem

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// OAuthStateStore keeps the single-use state values handed out when a
// user starts the Google consent flow. States expire so an abandoned
// flow cannot be replayed later.
type OAuthStateStore interface {
	Issue(userID uuid.UUID, ttl time.Duration) string

	// Consume returns the user the state was issued for, if it has not
	// expired, and removes it (single-use). ok is false otherwise.
	Consume(state string) (userID uuid.UUID, ok bool)
}

type stateEntry struct {
	userID    uuid.UUID
	expiresAt time.Time
}

type OAuthStates struct {
	mu   sync.RWMutex
	data map[string]stateEntry
}

func NewOAuthStates() *OAuthStates {
	return &OAuthStates{
		data: make(map[string]stateEntry),
	}
}

func (s *OAuthStates) Issue(userID uuid.UUID, ttl time.Duration) string {
	state := uuid.New().String()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[state] = stateEntry{
		userID:    userID,
		expiresAt: time.Now().Add(ttl),
	}
	return state
}

func (s *OAuthStates) Consume(state string) (uuid.UUID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[state]
	if !ok {
		return uuid.Nil, false
	}
	delete(s.data, state) // single-use, expired ones included
	if time.Now().After(e.expiresAt) {
		return uuid.Nil, false
	}
	return e.userID, true
}
