package test

import (
	"errors"
	"fmt"
	"sync"

	pkgAuth "github.com/mkaryagin/heartbeat/internal/pkg/auth"
	"github.com/mkaryagin/heartbeat/internal/pkg/session"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// SessionStoreStub keeps sessions in a plain map with predictable tokens.
type SessionStoreStub struct {
	CreateFn  func(int64, string, bool) (string, error)
	ResolveFn func(string) (*session.Session, error)

	mu       sync.Mutex
	Sessions map[string]*session.Session
	next     int
	Swept    int
}

// Create registers a session under a deterministic token.
func (s *SessionStoreStub) Create(userID int64, username string, isAdmin bool) (string, error) {
	if s.CreateFn != nil {
		return s.CreateFn(userID, username, isAdmin)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Sessions == nil {
		s.Sessions = make(map[string]*session.Session)
	}
	s.next++
	token := fmt.Sprintf("token-%d", s.next)
	s.Sessions[token] = &session.Session{UserID: userID, Username: username, IsAdmin: isAdmin}
	return token, nil
}

// Resolve returns the stored session or ErrUnauthenticated.
func (s *SessionStoreStub) Resolve(token string) (*session.Session, error) {
	if s.ResolveFn != nil {
		return s.ResolveFn(token)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.Sessions[token]; ok {
		return sess, nil
	}
	return nil, session.ErrUnauthenticated
}

// Invalidate drops the stored session.
func (s *SessionStoreStub) Invalidate(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Sessions[token]; !ok {
		return false
	}
	delete(s.Sessions, token)
	return true
}

// Sweep counts invocations; the stub never expires entries on its own.
func (s *SessionStoreStub) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Swept++
	return 0
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ session.Store = (*SessionStoreStub)(nil)
