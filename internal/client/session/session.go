// Package session tracks whether the client currently holds a valid session.
// The flag mirrors the cookie state on the server side; commands consult it
// to decide which operations are available.
package session

import "sync"

type Session struct {
	mu            sync.RWMutex
	authenticated bool
	email         string
}

func New() *Session {
	return &Session{}
}

// SetAuthenticated marks the session as signed in for the given email.
func (s *Session) SetAuthenticated(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = true
	s.email = email
}

// Clear resets the session to the signed-out state.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
	s.email = ""
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *Session) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}
