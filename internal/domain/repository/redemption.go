package repository

import (
	"context"

	"github.com/mkaryagin/heartbeat/internal/domain/model"
)

// RedemptionRepository performs reward redemption and exposes its history.
// Redeem is the single transactional unit of the system: it locks the couple
// and reward rows, re-checks balance and stock, decrements both, appends the
// ledger entry and inserts the redemption record, committing all writes
// together or none.
type RedemptionRepository interface {
	Redeem(ctx context.Context, coupleID, rewardID string) (*model.Redemption, int64, error)
	ListByCouple(ctx context.Context, coupleID string, limit int) ([]model.Redemption, error)
	ListAll(ctx context.Context, limit int) ([]model.Redemption, error)
}
