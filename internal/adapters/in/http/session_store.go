package http

import (
	"sync"

	"github.com/google/uuid"

	"fooddelivery/internal/core/domain/model/account"
)

// SessionStore maps bearer tokens to authenticated users. Replaces a desktop
// client's single "current user" with per-request identity: each login mints
// an independent token, and concurrent sessions never displace each other.
//
// Tokens live until logout; an in-memory map suffices for a single-process
// deployment.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*account.User
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*account.User)}
}

// Add registers an authenticated user and returns the minted token.
func (s *SessionStore) Add(user *account.User) string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = user

	return token
}

// Get resolves a token to its user, or nil for an unknown token.
func (s *SessionStore) Get(token string) *account.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[token]
}

// Remove drops a token. Removing an unknown token is a no-op.
func (s *SessionStore) Remove(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}
