// Package portal is the Go API client for the onboarding portal. It owns the
// client-side state the dashboard needs: a bearer-token session, an ordered
// task collection with an optimistic toggle protocol, and progress
// computation.
package portal

import "sync"

// Session holds the bearer tokens for one logged-in user. Sessions are
// explicit values passed to the client, never package-level state, so two
// clients in one process cannot clobber each other's credentials.
type Session struct {
	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	userID       int64
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) Set(accessToken, refreshToken string, userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = accessToken
	s.refreshToken = refreshToken
	s.userID = userID
}

func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

func (s *Session) UserID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// Authenticated reports whether the session carries an access token.
func (s *Session) Authenticated() bool {
	return s.AccessToken() != ""
}

// Clear drops the tokens, e.g. after logout.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = ""
	s.refreshToken = ""
	s.userID = 0
}
