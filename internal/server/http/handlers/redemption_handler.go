package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/mkaryagin/heartbeat/internal/domain/errors"
	"github.com/mkaryagin/heartbeat/internal/domain/model"
	"github.com/mkaryagin/heartbeat/internal/server/http/dto"
)

// RedemptionHandler processes reward redemption and its history.
type RedemptionHandler struct {
	facade HeartbeatFacade
}

// NewRedemptionHandler creates RedemptionHandler instance.
func NewRedemptionHandler(facade HeartbeatFacade) *RedemptionHandler {
	return &RedemptionHandler{facade: facade}
}

// Redeem handles POST /api/redemptions.
func (h *RedemptionHandler) Redeem(c *gin.Context) {
	couple, ok := requireCouple(c, h.facade)
	if !ok {
		return
	}

	var req dto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	redemption, balance, err := h.facade.Redeem(c.Request.Context(), couple.ID, req.RewardID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrOutOfStock):
			c.Status(http.StatusConflict)
		case errors.Is(err, domainErrors.ErrInsufficientPoints):
			c.Status(http.StatusPaymentRequired)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.RedeemResponse{RedemptionID: redemption.ID, NewBalance: balance})
}

// History handles GET /api/redemptions.
func (h *RedemptionHandler) History(c *gin.Context) {
	couple, ok := requireCouple(c, h.facade)
	if !ok {
		return
	}

	redemptions, err := h.facade.Redemptions(c.Request.Context(), couple.ID, queryLimit(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, redemptionResponses(redemptions, false))
}

func redemptionResponses(redemptions []model.Redemption, withCouple bool) []dto.RedemptionResponse {
	resp := make([]dto.RedemptionResponse, 0, len(redemptions))
	for _, r := range redemptions {
		item := dto.RedemptionResponse{
			ID:          r.ID,
			RewardID:    r.RewardID,
			RewardName:  r.RewardName,
			PointsSpent: r.PointsSpent,
			CreatedAt:   r.CreatedAt,
		}
		if withCouple {
			item.CoupleID = r.CoupleID
		}
		resp = append(resp, item)
	}
	return resp
}
