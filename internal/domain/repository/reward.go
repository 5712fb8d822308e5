package repository

import (
	"context"

	"github.com/mkaryagin/heartbeat/internal/domain/model"
)

// RewardRepository describes persistence operations for reward catalog items.
type RewardRepository interface {
	Create(ctx context.Context, coupleID, name string, price, stock int64, description string) (*model.Reward, error)
	GetByID(ctx context.Context, rewardID string) (*model.Reward, error)
	Update(ctx context.Context, rewardID string, patch model.RewardPatch) (*model.Reward, error)
	Delete(ctx context.Context, rewardID string) error
	ListByCouple(ctx context.Context, coupleID string) ([]model.Reward, error)
}

// BaseRewardRepository serves the seeded reference catalog.
type BaseRewardRepository interface {
	List(ctx context.Context) ([]model.BaseReward, error)
}
