package session

import (
	"time"

	domainErrors "github.com/mkaryagin/heartbeat/internal/domain/errors"
)

// Session is the resolved identity of an authenticated caller.
type Session struct {
	UserID    int64
	Username  string
	IsAdmin   bool
	ExpiresAt time.Time
}

// Store keeps token to session mappings. Resolve refreshes the session TTL;
// expired entries are dropped lazily on resolve and in bulk by Sweep.
type Store interface {
	Create(userID int64, username string, isAdmin bool) (string, error)
	Resolve(token string) (*Session, error)
	Invalidate(token string) bool
	Sweep() int
}

// ErrUnauthenticated is returned by Resolve for unknown or expired tokens.
var ErrUnauthenticated = domainErrors.ErrUnauthenticated
