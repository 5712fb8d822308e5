package test

import (
	"context"
	"time"

	"github.com/mkaryagin/heartbeat/internal/domain/model"
	"github.com/mkaryagin/heartbeat/internal/pkg/session"
)

// FacadeStub provides controllable behaviour for every HTTP endpoint. Unset
// functions fall back to small fixed fixtures.
type FacadeStub struct {
	RegisterFn       func(context.Context, string, string, string, string) (*model.Couple, string, error)
	AuthenticateFn   func(context.Context, string, string) (*model.User, string, error)
	ResolveFn        func(string) (*session.Session, error)
	LogoutFn         func(string)
	CoupleFn         func(context.Context, string) (*model.Couple, error)
	CoupleByUserFn   func(context.Context, int64) (*model.Couple, error)
	CouplesFn        func(context.Context) ([]model.Couple, error)
	AdjustFn         func(context.Context, string, int64, string) (int64, error)
	BalanceFn        func(context.Context, string) (int64, error)
	HistoryFn        func(context.Context, string, int) ([]model.LedgerEntry, error)
	CreateRewardFn   func(context.Context, string, string, int64, int64, string) (*model.Reward, error)
	UpdateRewardFn   func(context.Context, string, string, model.RewardPatch) (*model.Reward, error)
	DeleteRewardFn   func(context.Context, string, string) error
	RewardsFn        func(context.Context, string) ([]model.Reward, error)
	BaseRewardsFn    func(context.Context) ([]model.BaseReward, error)
	RedeemFn         func(context.Context, string, string) (*model.Redemption, int64, error)
	RedemptionsFn    func(context.Context, string, int) ([]model.Redemption, error)
	AllRedemptionsFn func(context.Context, int) ([]model.Redemption, error)
	StatsFn          func(context.Context) (*model.Stats, error)
}

// FixtureCouple returns the default couple used by unset stub functions.
func FixtureCouple() *model.Couple {
	return &model.Couple{
		ID:        "cpl-1",
		UserID:    1,
		Name1:     "Ann",
		Name2:     "Bob",
		Points:    120,
		CreatedAt: time.Unix(0, 0).UTC(),
	}
}

// PingerStub reports configurable store health.
type PingerStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s PingerStub) HealthCheck(context.Context) error {
	return s.Err
}

// Register delegates to provided function or returns the fixture couple.
func (s FacadeStub) Register(ctx context.Context, username, password, name1, name2 string) (*model.Couple, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, username, password, name1, name2)
	}
	return FixtureCouple(), "session-token", nil
}

// Authenticate delegates or returns a default non-admin user.
func (s FacadeStub) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, username, password)
	}
	return &model.User{ID: 1, Username: username}, "session-token", nil
}

// ResolveToken delegates or accepts any token as user 1.
func (s FacadeStub) ResolveToken(token string) (*session.Session, error) {
	if s.ResolveFn != nil {
		return s.ResolveFn(token)
	}
	return &session.Session{UserID: 1, Username: "pair"}, nil
}

// Logout delegates when configured.
func (s FacadeStub) Logout(token string) {
	if s.LogoutFn != nil {
		s.LogoutFn(token)
	}
}

// Couple returns the configured or fixture couple.
func (s FacadeStub) Couple(ctx context.Context, coupleID string) (*model.Couple, error) {
	if s.CoupleFn != nil {
		return s.CoupleFn(ctx, coupleID)
	}
	return FixtureCouple(), nil
}

// CoupleByUser returns the configured or fixture couple.
func (s FacadeStub) CoupleByUser(ctx context.Context, userID int64) (*model.Couple, error) {
	if s.CoupleByUserFn != nil {
		return s.CoupleByUserFn(ctx, userID)
	}
	return FixtureCouple(), nil
}

// Couples returns the configured list or a single fixture couple.
func (s FacadeStub) Couples(ctx context.Context) ([]model.Couple, error) {
	if s.CouplesFn != nil {
		return s.CouplesFn(ctx)
	}
	return []model.Couple{*FixtureCouple()}, nil
}

// AdjustPoints delegates or reports the fixture balance plus delta.
func (s FacadeStub) AdjustPoints(ctx context.Context, coupleID string, delta int64, reason string) (int64, error) {
	if s.AdjustFn != nil {
		return s.AdjustFn(ctx, coupleID, delta, reason)
	}
	return FixtureCouple().Points + delta, nil
}

// Balance delegates or returns the fixture balance.
func (s FacadeStub) Balance(ctx context.Context, coupleID string) (int64, error) {
	if s.BalanceFn != nil {
		return s.BalanceFn(ctx, coupleID)
	}
	return FixtureCouple().Points, nil
}

// History delegates or returns one fixture entry.
func (s FacadeStub) History(ctx context.Context, coupleID string, limit int) ([]model.LedgerEntry, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, coupleID, limit)
	}
	return []model.LedgerEntry{{ID: 1, CoupleID: coupleID, Delta: 10, Reason: "did the dishes", Balance: 10}}, nil
}

// CreateReward delegates or echoes the arguments as a stored reward.
func (s FacadeStub) CreateReward(ctx context.Context, coupleID, name string, price, stock int64, description string) (*model.Reward, error) {
	if s.CreateRewardFn != nil {
		return s.CreateRewardFn(ctx, coupleID, name, price, stock, description)
	}
	return &model.Reward{ID: "rwd-1", CoupleID: coupleID, Name: name, Price: price, Stock: stock, Description: description}, nil
}

// UpdateReward delegates or returns a fixed reward.
func (s FacadeStub) UpdateReward(ctx context.Context, coupleID, rewardID string, patch model.RewardPatch) (*model.Reward, error) {
	if s.UpdateRewardFn != nil {
		return s.UpdateRewardFn(ctx, coupleID, rewardID, patch)
	}
	return &model.Reward{ID: rewardID, CoupleID: coupleID, Name: "movie night", Price: 50, Stock: 3}, nil
}

// DeleteReward delegates when configured.
func (s FacadeStub) DeleteReward(ctx context.Context, coupleID, rewardID string) error {
	if s.DeleteRewardFn != nil {
		return s.DeleteRewardFn(ctx, coupleID, rewardID)
	}
	return nil
}

// Rewards delegates or returns one fixture reward.
func (s FacadeStub) Rewards(ctx context.Context, coupleID string) ([]model.Reward, error) {
	if s.RewardsFn != nil {
		return s.RewardsFn(ctx, coupleID)
	}
	return []model.Reward{{ID: "rwd-1", CoupleID: coupleID, Name: "movie night", Price: 50, Stock: 3}}, nil
}

// BaseRewards delegates or returns a fixture reference catalog.
func (s FacadeStub) BaseRewards(ctx context.Context) ([]model.BaseReward, error) {
	if s.BaseRewardsFn != nil {
		return s.BaseRewardsFn(ctx)
	}
	return []model.BaseReward{{ID: 1, Name: "bouquet of flowers", Price: 30, Description: "surprise flowers"}}, nil
}

// Redeem delegates or returns a fixture redemption.
func (s FacadeStub) Redeem(ctx context.Context, coupleID, rewardID string) (*model.Redemption, int64, error) {
	if s.RedeemFn != nil {
		return s.RedeemFn(ctx, coupleID, rewardID)
	}
	return &model.Redemption{ID: "rdm-1", CoupleID: coupleID, RewardID: rewardID, RewardName: "movie night", PointsSpent: 50}, 70, nil
}

// Redemptions delegates or returns one fixture row.
func (s FacadeStub) Redemptions(ctx context.Context, coupleID string, limit int) ([]model.Redemption, error) {
	if s.RedemptionsFn != nil {
		return s.RedemptionsFn(ctx, coupleID, limit)
	}
	return []model.Redemption{{ID: "rdm-1", CoupleID: coupleID, RewardID: "rwd-1", RewardName: "movie night", PointsSpent: 50}}, nil
}

// AllRedemptions delegates or returns one fixture row.
func (s FacadeStub) AllRedemptions(ctx context.Context, limit int) ([]model.Redemption, error) {
	if s.AllRedemptionsFn != nil {
		return s.AllRedemptionsFn(ctx, limit)
	}
	return []model.Redemption{{ID: "rdm-1", CoupleID: "cpl-1", RewardID: "rwd-1", RewardName: "movie night", PointsSpent: 50}}, nil
}

// Stats delegates or returns fixed counters.
func (s FacadeStub) Stats(ctx context.Context) (*model.Stats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx)
	}
	return &model.Stats{CoupleCount: 1, TotalPoints: 120, RewardCount: 1, RedemptionCount: 1}, nil
}
