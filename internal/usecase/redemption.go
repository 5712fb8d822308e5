package usecase

import (
	"context"

	"github.com/mkaryagin/heartbeat/internal/domain/model"
	"github.com/mkaryagin/heartbeat/internal/domain/repository"
)

// RedemptionUseCase performs reward redemption and exposes its history.
type RedemptionUseCase struct {
	redemptions  repository.RedemptionRepository
	defaultLimit int
}

// NewRedemptionUseCase constructs RedemptionUseCase.
func NewRedemptionUseCase(redemptions repository.RedemptionRepository, defaultLimit int) *RedemptionUseCase {
	if defaultLimit <= 0 {
		defaultLimit = 50
	}
	return &RedemptionUseCase{redemptions: redemptions, defaultLimit: defaultLimit}
}

// Redeem exchanges points for one stock unit of the reward. Balance and stock
// are re-read under row locks inside a single transaction; failure leaves no
// partial effects. Redemption is not idempotent: resubmitting a request that
// already succeeded creates a second redemption record.
func (u *RedemptionUseCase) Redeem(ctx context.Context, coupleID, rewardID string) (*model.Redemption, int64, error) {
	return u.redemptions.Redeem(ctx, coupleID, rewardID)
}

// History returns the couple redemptions most-recent-first.
func (u *RedemptionUseCase) History(ctx context.Context, coupleID string, limit int) ([]model.Redemption, error) {
	return u.redemptions.ListByCouple(ctx, coupleID, u.clampLimit(limit))
}

// HistoryAll returns redemptions across all couples; admin gating happens at
// the boundary.
func (u *RedemptionUseCase) HistoryAll(ctx context.Context, limit int) ([]model.Redemption, error) {
	return u.redemptions.ListAll(ctx, u.clampLimit(limit))
}

func (u *RedemptionUseCase) clampLimit(limit int) int {
	if limit <= 0 {
		return u.defaultLimit
	}
	if limit > maxHistoryLimit {
		return maxHistoryLimit
	}
	return limit
}
