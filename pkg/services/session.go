package services

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"sync"
	"time"
)

// ErrInvalidPassword is returned by Issue when the supplied password
// does not match the configured dashboard secret.
var ErrInvalidPassword = errors.New("invalid password")

// SessionStore issues and checks opaque dashboard session tokens.
type SessionStore interface {
	Issue(password string) (string, error)
	Validate(token string) bool
	Revoke(token string)
}

// MemorySessionStore keeps tokens in a process-wide map. Tokens expire
// after the configured TTL and are never renewed; an expired session
// fails closed on the next protected call.
type MemorySessionStore struct {
	password string
	ttl      time.Duration
	mu       sync.RWMutex
	sessions map[string]time.Time
}

// NewMemorySessionStore creates a session store gated by the given
// password.
func NewMemorySessionStore(password string, ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		password: password,
		ttl:      ttl,
		sessions: make(map[string]time.Time),
	}
}

// Issue checks the password and, on match, mints a random token valid
// for the store's TTL.
func (s *MemorySessionStore) Issue(password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return "", ErrInvalidPassword
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)

	s.mu.Lock()
	s.sessions[token] = time.Now().Add(s.ttl)
	s.mu.Unlock()

	// Cleanup goroutine
	go func() {
		time.Sleep(s.ttl)
		s.Revoke(token)
	}()

	return token, nil
}

// Validate reports whether the token is known and unexpired.
func (s *MemorySessionStore) Validate(token string) bool {
	s.mu.RLock()
	expiresAt, exists := s.sessions[token]
	s.mu.RUnlock()

	if !exists {
		return false
	}
	if time.Now().After(expiresAt) {
		s.Revoke(token)
		return false
	}
	return true
}

// Revoke removes the token. Revoking an unknown token is a no-op.
func (s *MemorySessionStore) Revoke(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
