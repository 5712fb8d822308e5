package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/mkaryagin/heartbeat/internal/domain/errors"
	"github.com/mkaryagin/heartbeat/internal/server/http/middleware"
)

// CoupleHandler exposes couple lookups.
type CoupleHandler struct {
	facade HeartbeatFacade
}

// NewCoupleHandler creates CoupleHandler instance.
func NewCoupleHandler(facade HeartbeatFacade) *CoupleHandler {
	return &CoupleHandler{facade: facade}
}

// Own handles GET /api/couple.
func (h *CoupleHandler) Own(c *gin.Context) {
	couple, ok := requireCouple(c, h.facade)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, coupleResponse(couple))
}

// ByID handles GET /api/couples/:id. Only the owning couple or an
// administrator may read it.
func (h *CoupleHandler) ByID(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	couple, err := h.facade.Couple(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
		} else {
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	if !sess.IsAdmin && couple.UserID != sess.UserID {
		c.Status(http.StatusForbidden)
		return
	}

	c.JSON(http.StatusOK, coupleResponse(couple))
}
