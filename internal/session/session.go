// Package session holds the authenticated state of one client session as an
// explicit object with init and teardown, instead of ambient global state.
package session

import (
	"sync"

	"github.com/jdoe/resume-builder/internal/types"
)

// Session carries the bearer token and last-known profile for one signed-in
// user. A zero-value Session is signed out.
type Session struct {
	mu    sync.RWMutex
	token string
	user  *types.User
}

// New returns a signed-out session.
func New() *Session {
	return &Session{}
}

// Begin installs the token and profile returned by login or register.
func (s *Session) Begin(token string, user *types.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
}

// Token returns the bearer token, empty when signed out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the last-known profile, nil when signed out.
func (s *Session) User() *types.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// SetUser refreshes the cached profile without touching the token.
func (s *Session) SetUser(user *types.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// Active reports whether a token is present.
func (s *Session) Active() bool {
	return s.Token() != ""
}

// Clear tears the session down. Called on logout and whenever the backend
// answers 401.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
}
