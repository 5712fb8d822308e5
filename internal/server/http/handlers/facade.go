package handlers

import (
	"context"

	"github.com/mkaryagin/heartbeat/internal/domain/model"
	"github.com/mkaryagin/heartbeat/internal/pkg/session"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, username, password, name1, name2 string) (*model.Couple, string, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, string, error)
	ResolveToken(token string) (*session.Session, error)
	Logout(token string)
}

// CoupleFacade resolves couples for the authenticated caller.
type CoupleFacade interface {
	Couple(ctx context.Context, coupleID string) (*model.Couple, error)
	CoupleByUser(ctx context.Context, userID int64) (*model.Couple, error)
}

// PointsFacade provides balance mutation and history.
type PointsFacade interface {
	AdjustPoints(ctx context.Context, coupleID string, delta int64, reason string) (int64, error)
	Balance(ctx context.Context, coupleID string) (int64, error)
	History(ctx context.Context, coupleID string, limit int) ([]model.LedgerEntry, error)
}

// RewardFacade provides reward catalog management.
type RewardFacade interface {
	CreateReward(ctx context.Context, coupleID, name string, price, stock int64, description string) (*model.Reward, error)
	UpdateReward(ctx context.Context, coupleID, rewardID string, patch model.RewardPatch) (*model.Reward, error)
	DeleteReward(ctx context.Context, coupleID, rewardID string) error
	Rewards(ctx context.Context, coupleID string) ([]model.Reward, error)
	BaseRewards(ctx context.Context) ([]model.BaseReward, error)
}

// RedemptionFacade provides redemption and its per-couple history.
type RedemptionFacade interface {
	Redeem(ctx context.Context, coupleID, rewardID string) (*model.Redemption, int64, error)
	Redemptions(ctx context.Context, coupleID string, limit int) ([]model.Redemption, error)
}

// AdminFacade provides the aggregate views restricted to administrators.
type AdminFacade interface {
	Couples(ctx context.Context) ([]model.Couple, error)
	AllRedemptions(ctx context.Context, limit int) ([]model.Redemption, error)
	Stats(ctx context.Context) (*model.Stats, error)
}

// HeartbeatFacade aggregates the full set of operations used across handlers.
type HeartbeatFacade interface {
	AuthFacade
	CoupleFacade
	PointsFacade
	RewardFacade
	RedemptionFacade
	AdminFacade
}
