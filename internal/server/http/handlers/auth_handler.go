package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/mkaryagin/heartbeat/internal/domain/errors"
	"github.com/mkaryagin/heartbeat/internal/server/http/dto"
	"github.com/mkaryagin/heartbeat/internal/server/http/middleware"
)

// AuthHandler processes registration, login and logout.
type AuthHandler struct {
	facade HeartbeatFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade HeartbeatFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	couple, token, err := h.facade.Register(c.Request.Context(), req.Username, req.Password, req.Name1, req.Name2)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	resp := coupleResponse(couple)
	c.JSON(http.StatusCreated, dto.SessionResponse{Username: req.Username, Couple: &resp})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, token, err := h.facade.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.Status(http.StatusUnauthorized)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	resp := dto.SessionResponse{Username: user.Username, IsAdmin: user.IsAdmin}
	if !user.IsAdmin {
		if couple, err := h.facade.CoupleByUser(c.Request.Context(), user.ID); err == nil {
			cr := coupleResponse(couple)
			resp.Couple = &cr
		}
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := middleware.CurrentToken(c); token != "" {
		h.facade.Logout(token)
	}
	c.Status(http.StatusOK)
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	resp := dto.SessionResponse{Username: sess.Username, IsAdmin: sess.IsAdmin}
	if !sess.IsAdmin {
		if couple, err := h.facade.CoupleByUser(c.Request.Context(), sess.UserID); err == nil {
			cr := coupleResponse(couple)
			resp.Couple = &cr
		}
	}
	c.JSON(http.StatusOK, resp)
}
