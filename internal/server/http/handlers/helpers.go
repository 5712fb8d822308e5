package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/mkaryagin/heartbeat/internal/domain/errors"
	"github.com/mkaryagin/heartbeat/internal/domain/model"
	"github.com/mkaryagin/heartbeat/internal/server/http/dto"
	"github.com/mkaryagin/heartbeat/internal/server/http/middleware"
)

// requireCouple resolves the couple owned by the authenticated caller and
// writes the error status when there is none. Admin accounts own no couple.
func requireCouple(c *gin.Context, facade CoupleFacade) (*model.Couple, bool) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		c.Status(http.StatusUnauthorized)
		return nil, false
	}
	if sess.IsAdmin {
		c.Status(http.StatusBadRequest)
		return nil, false
	}

	couple, err := facade.CoupleByUser(c.Request.Context(), sess.UserID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
		} else {
			c.Status(http.StatusInternalServerError)
		}
		return nil, false
	}
	return couple, true
}

// queryLimit parses the optional ?limit query parameter; zero means default.
func queryLimit(c *gin.Context) int {
	raw := c.Query("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

func coupleResponse(couple *model.Couple) dto.CoupleResponse {
	return dto.CoupleResponse{
		ID:        couple.ID,
		Names:     [2]string{couple.Name1, couple.Name2},
		Points:    couple.Points,
		CreatedAt: couple.CreatedAt,
	}
}

func rewardResponse(reward *model.Reward) dto.RewardResponse {
	return dto.RewardResponse{
		ID:          reward.ID,
		Name:        reward.Name,
		Price:       reward.Price,
		Stock:       reward.Stock,
		Description: reward.Description,
		CreatedAt:   reward.CreatedAt,
	}
}
