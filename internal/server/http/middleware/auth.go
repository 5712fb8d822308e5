package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/mkaryagin/heartbeat/internal/domain/errors"
	"github.com/mkaryagin/heartbeat/internal/pkg/session"
)

const (
	// SessionContextKey is a gin context key for the resolved session.
	SessionContextKey = "session"
	// TokenContextKey holds the raw token so logout can invalidate it.
	TokenContextKey = "sessionToken"
	authCookieName  = "heartbeat_token"
)

// TokenResolver maps a bearer token to the session behind it.
type TokenResolver interface {
	ResolveToken(token string) (*session.Session, error)
}

// AuthRequired ensures the caller holds a live session before accessing the
// handler.
func AuthRequired(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		sess, err := resolver.ResolveToken(token)
		if err != nil {
			if errors.Is(err, domainErrors.ErrUnauthenticated) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(SessionContextKey, sess)
		c.Set(TokenContextKey, token)
		c.Next()
	}
}

// AdminRequired rejects callers whose session lacks the admin flag. It must
// run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if sess == nil || !sess.IsAdmin {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// CurrentSession extracts the resolved session from gin context.
func CurrentSession(c *gin.Context) *session.Session {
	val, ok := c.Get(SessionContextKey)
	if !ok {
		return nil
	}
	sess, _ := val.(*session.Session)
	return sess
}

// CurrentToken extracts the raw session token from gin context.
func CurrentToken(c *gin.Context) string {
	val, ok := c.Get(TokenContextKey)
	if !ok {
		return ""
	}
	token, _ := val.(string)
	return token
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
