package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/mkaryagin/heartbeat/internal/domain/errors"
	"github.com/mkaryagin/heartbeat/internal/domain/model"
	"github.com/mkaryagin/heartbeat/internal/server/http/dto"
)

// RewardHandler processes the per-couple reward catalog.
type RewardHandler struct {
	facade HeartbeatFacade
}

// NewRewardHandler creates RewardHandler instance.
func NewRewardHandler(facade HeartbeatFacade) *RewardHandler {
	return &RewardHandler{facade: facade}
}

// Create handles POST /api/rewards.
func (h *RewardHandler) Create(c *gin.Context) {
	couple, ok := requireCouple(c, h.facade)
	if !ok {
		return
	}

	var req dto.CreateRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	reward, err := h.facade.CreateReward(c.Request.Context(), couple.ID, req.Name, req.Price, *req.Stock, req.Description)
	if err != nil {
		if errors.Is(err, domainErrors.ErrValidation) {
			c.Status(http.StatusUnprocessableEntity)
		} else {
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, rewardResponse(reward))
}

// Update handles PATCH /api/rewards/:id.
func (h *RewardHandler) Update(c *gin.Context) {
	couple, ok := requireCouple(c, h.facade)
	if !ok {
		return
	}

	var req dto.UpdateRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	patch := model.RewardPatch{
		Name:        req.Name,
		Price:       req.Price,
		Stock:       req.Stock,
		Description: req.Description,
	}

	reward, err := h.facade.UpdateReward(c.Request.Context(), couple.ID, c.Param("id"), patch)
	if err != nil {
		h.writeCatalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, rewardResponse(reward))
}

// Delete handles DELETE /api/rewards/:id.
func (h *RewardHandler) Delete(c *gin.Context) {
	couple, ok := requireCouple(c, h.facade)
	if !ok {
		return
	}

	if err := h.facade.DeleteReward(c.Request.Context(), couple.ID, c.Param("id")); err != nil {
		h.writeCatalogError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// List handles GET /api/rewards.
func (h *RewardHandler) List(c *gin.Context) {
	couple, ok := requireCouple(c, h.facade)
	if !ok {
		return
	}

	rewards, err := h.facade.Rewards(c.Request.Context(), couple.ID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.RewardResponse, 0, len(rewards))
	for i := range rewards {
		resp = append(resp, rewardResponse(&rewards[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Base handles GET /api/rewards/base. The reference catalog is global, so any
// authenticated session may read it.
func (h *RewardHandler) Base(c *gin.Context) {
	rewards, err := h.facade.BaseRewards(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.BaseRewardResponse, 0, len(rewards))
	for _, reward := range rewards {
		resp = append(resp, dto.BaseRewardResponse{
			ID:          reward.ID,
			Name:        reward.Name,
			Price:       reward.Price,
			Description: reward.Description,
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RewardHandler) writeCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrForbidden):
		c.Status(http.StatusForbidden)
	case errors.Is(err, domainErrors.ErrValidation):
		c.Status(http.StatusUnprocessableEntity)
	default:
		c.Status(http.StatusInternalServerError)
	}
}
