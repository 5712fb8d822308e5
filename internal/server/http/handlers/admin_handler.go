package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkaryagin/heartbeat/internal/server/http/dto"
)

// AdminHandler exposes the aggregate views restricted to administrators.
type AdminHandler struct {
	facade HeartbeatFacade
}

// NewAdminHandler creates AdminHandler instance.
func NewAdminHandler(facade HeartbeatFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Couples handles GET /api/admin/couples.
func (h *AdminHandler) Couples(c *gin.Context) {
	couples, err := h.facade.Couples(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.CoupleResponse, 0, len(couples))
	for i := range couples {
		resp = append(resp, coupleResponse(&couples[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Redemptions handles GET /api/admin/redemptions.
func (h *AdminHandler) Redemptions(c *gin.Context) {
	redemptions, err := h.facade.AllRedemptions(c.Request.Context(), queryLimit(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, redemptionResponses(redemptions, true))
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.facade.Stats(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.StatsResponse{
		CoupleCount:     stats.CoupleCount,
		TotalPoints:     stats.TotalPoints,
		RewardCount:     stats.RewardCount,
		RedemptionCount: stats.RedemptionCount,
	})
}
