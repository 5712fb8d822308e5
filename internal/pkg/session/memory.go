package session

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"
)

const tokenBytes = 32

// MemoryStore is an in-process Store implementation. Any keyed backend can
// replace it behind the Store interface.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration

	now func() time.Time
}

// NewMemoryStore creates MemoryStore with the provided session TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &MemoryStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create registers a new session and returns its opaque token.
func (s *MemoryStore) Create(userID int64, username string, isAdmin bool) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := base64.RawURLEncoding.EncodeToString(buf)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = &Session{
		UserID:    userID,
		Username:  username,
		IsAdmin:   isAdmin,
		ExpiresAt: s.now().Add(s.ttl),
	}
	return token, nil
}

// Resolve returns the session behind the token and refreshes its TTL.
// Expired entries are removed on the spot.
func (s *MemoryStore) Resolve(token string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, ErrUnauthenticated
	}
	if s.now().After(sess.ExpiresAt) {
		delete(s.sessions, token)
		return nil, ErrUnauthenticated
	}

	sess.ExpiresAt = s.now().Add(s.ttl)
	copied := *sess
	return &copied, nil
}

// Invalidate drops the session; reports whether it existed.
func (s *MemoryStore) Invalidate(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[token]; !ok {
		return false
	}
	delete(s.sessions, token)
	return true
}

// Sweep removes all expired sessions and returns how many were dropped.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var removed int
	for token, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed
}

// Len reports the number of live entries, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
