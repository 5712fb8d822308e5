package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainErrors "github.com/mkaryagin/heartbeat/internal/domain/errors"
	"github.com/mkaryagin/heartbeat/internal/domain/model"
	"github.com/mkaryagin/heartbeat/internal/domain/repository"
	pkgAuth "github.com/mkaryagin/heartbeat/internal/pkg/auth"
	"github.com/mkaryagin/heartbeat/internal/pkg/session"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

// AuthUseCase handles account lifecycle and session management. It is the
// identity gate of the system: the core trusts the session it resolves.
type AuthUseCase struct {
	users    repository.UserRepository
	couples  repository.CoupleRepository
	hasher   pkgAuth.PasswordHasher
	sessions session.Store
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, couples repository.CoupleRepository, hasher pkgAuth.PasswordHasher, sessions session.Store) *AuthUseCase {
	return &AuthUseCase{users: users, couples: couples, hasher: hasher, sessions: sessions}
}

// Register creates a new account together with its couple and opens a session.
func (u *AuthUseCase) Register(ctx context.Context, username, password, name1, name2 string) (*model.Couple, string, error) {
	username = strings.TrimSpace(username)
	if len(username) < minUsernameLen {
		return nil, "", fmt.Errorf("%w: username must have at least %d characters", domainErrors.ErrValidation, minUsernameLen)
	}
	if len(password) < minPasswordLen {
		return nil, "", fmt.Errorf("%w: password must have at least %d characters", domainErrors.ErrValidation, minPasswordLen)
	}
	if err := ValidateNames(name1, name2); err != nil {
		return nil, "", err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, username, hash, false)
	if err != nil {
		return nil, "", err
	}

	couple, err := u.couples.Create(ctx, usr.ID, name1, name2)
	if err != nil {
		return nil, "", err
	}

	token, err := u.sessions.Create(usr.ID, usr.Username, usr.IsAdmin)
	if err != nil {
		return nil, "", err
	}

	return couple, token, nil
}

// Authenticate validates credentials and opens a session.
func (u *AuthUseCase) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.sessions.Create(usr.ID, usr.Username, usr.IsAdmin)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Resolve maps a token to the session behind it.
func (u *AuthUseCase) Resolve(token string) (*session.Session, error) {
	if token == "" {
		return nil, domainErrors.ErrUnauthenticated
	}
	return u.sessions.Resolve(token)
}

// Logout invalidates the session token.
func (u *AuthUseCase) Logout(token string) {
	u.sessions.Invalidate(token)
}

// EnsureAdmin seeds the admin account when it does not exist yet. An empty
// password disables seeding.
func (u *AuthUseCase) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	_, err := u.users.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domainErrors.ErrNotFound) {
		return err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return err
	}

	if _, err := u.users.Create(ctx, username, hash, true); err != nil && !errors.Is(err, domainErrors.ErrAlreadyExists) {
		return err
	}
	return nil
}
