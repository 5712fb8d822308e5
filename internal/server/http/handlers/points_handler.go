package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/mkaryagin/heartbeat/internal/domain/errors"
	"github.com/mkaryagin/heartbeat/internal/server/http/dto"
)

// PointsHandler processes balance adjustments and ledger history.
type PointsHandler struct {
	facade HeartbeatFacade
}

// NewPointsHandler creates PointsHandler instance.
func NewPointsHandler(facade HeartbeatFacade) *PointsHandler {
	return &PointsHandler{facade: facade}
}

// Adjust handles POST /api/points/adjust.
func (h *PointsHandler) Adjust(c *gin.Context) {
	couple, ok := requireCouple(c, h.facade)
	if !ok {
		return
	}

	var req dto.AdjustPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	balance, err := h.facade.AdjustPoints(c.Request.Context(), couple.ID, req.Delta, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrInsufficientPoints):
			c.Status(http.StatusPaymentRequired)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{Points: balance})
}

// Balance handles GET /api/points/balance.
func (h *PointsHandler) Balance(c *gin.Context) {
	couple, ok := requireCouple(c, h.facade)
	if !ok {
		return
	}

	balance, err := h.facade.Balance(c.Request.Context(), couple.ID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{Points: balance})
}

// History handles GET /api/points/history.
func (h *PointsHandler) History(c *gin.Context) {
	couple, ok := requireCouple(c, h.facade)
	if !ok {
		return
	}

	entries, err := h.facade.History(c.Request.Context(), couple.ID, queryLimit(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.LedgerEntryResponse, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, dto.LedgerEntryResponse{
			Delta:     entry.Delta,
			Reason:    entry.Reason,
			Balance:   entry.Balance,
			CreatedAt: entry.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}
