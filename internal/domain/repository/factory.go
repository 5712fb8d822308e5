package repository

import (
	"context"

	"github.com/mkaryagin/heartbeat/internal/domain/model"
)

// StatsRepository aggregates system-wide counters.
type StatsRepository interface {
	Collect(ctx context.Context) (*model.Stats, error)
}

// Factory describes access to the different domain repositories.
type Factory interface {
	Users() UserRepository
	Couples() CoupleRepository
	Ledger() LedgerRepository
	Rewards() RewardRepository
	BaseRewards() BaseRewardRepository
	Redemptions() RedemptionRepository
	Stats() StatsRepository
}
