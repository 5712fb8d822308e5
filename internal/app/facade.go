package app

import (
	"context"

	"github.com/mkaryagin/heartbeat/internal/domain/model"
	"github.com/mkaryagin/heartbeat/internal/pkg/session"
	"github.com/mkaryagin/heartbeat/internal/usecase"
)

// HeartbeatFacade aggregates the use cases behind one surface consumed by the
// HTTP layer and the background sweeper.
type HeartbeatFacade struct {
	auth        *usecase.AuthUseCase
	couples     *usecase.CoupleUseCase
	ledger      *usecase.LedgerUseCase
	rewards     *usecase.RewardUseCase
	redemptions *usecase.RedemptionUseCase
	stats       *usecase.StatsUseCase
}

// NewHeartbeatFacade constructs the facade over all use cases.
func NewHeartbeatFacade(
	auth *usecase.AuthUseCase,
	couples *usecase.CoupleUseCase,
	ledger *usecase.LedgerUseCase,
	rewards *usecase.RewardUseCase,
	redemptions *usecase.RedemptionUseCase,
	stats *usecase.StatsUseCase,
) *HeartbeatFacade {
	return &HeartbeatFacade{
		auth:        auth,
		couples:     couples,
		ledger:      ledger,
		rewards:     rewards,
		redemptions: redemptions,
		stats:       stats,
	}
}

func (f *HeartbeatFacade) Register(ctx context.Context, username, password, name1, name2 string) (*model.Couple, string, error) {
	return f.auth.Register(ctx, username, password, name1, name2)
}

func (f *HeartbeatFacade) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, username, password)
}

func (f *HeartbeatFacade) ResolveToken(token string) (*session.Session, error) {
	return f.auth.Resolve(token)
}

func (f *HeartbeatFacade) Logout(token string) {
	f.auth.Logout(token)
}

func (f *HeartbeatFacade) EnsureAdmin(ctx context.Context, username, password string) error {
	return f.auth.EnsureAdmin(ctx, username, password)
}

func (f *HeartbeatFacade) Couple(ctx context.Context, coupleID string) (*model.Couple, error) {
	return f.couples.Get(ctx, coupleID)
}

func (f *HeartbeatFacade) CoupleByUser(ctx context.Context, userID int64) (*model.Couple, error) {
	return f.couples.ByUser(ctx, userID)
}

func (f *HeartbeatFacade) Couples(ctx context.Context) ([]model.Couple, error) {
	return f.couples.List(ctx)
}

func (f *HeartbeatFacade) AdjustPoints(ctx context.Context, coupleID string, delta int64, reason string) (int64, error) {
	return f.ledger.Adjust(ctx, coupleID, delta, reason)
}

func (f *HeartbeatFacade) Balance(ctx context.Context, coupleID string) (int64, error) {
	return f.ledger.Balance(ctx, coupleID)
}

func (f *HeartbeatFacade) History(ctx context.Context, coupleID string, limit int) ([]model.LedgerEntry, error) {
	return f.ledger.History(ctx, coupleID, limit)
}

func (f *HeartbeatFacade) CreateReward(ctx context.Context, coupleID, name string, price, stock int64, description string) (*model.Reward, error) {
	return f.rewards.Create(ctx, coupleID, name, price, stock, description)
}

func (f *HeartbeatFacade) UpdateReward(ctx context.Context, coupleID, rewardID string, patch model.RewardPatch) (*model.Reward, error) {
	return f.rewards.Update(ctx, coupleID, rewardID, patch)
}

func (f *HeartbeatFacade) DeleteReward(ctx context.Context, coupleID, rewardID string) error {
	return f.rewards.Delete(ctx, coupleID, rewardID)
}

func (f *HeartbeatFacade) Rewards(ctx context.Context, coupleID string) ([]model.Reward, error) {
	return f.rewards.List(ctx, coupleID)
}

func (f *HeartbeatFacade) BaseRewards(ctx context.Context) ([]model.BaseReward, error) {
	return f.rewards.Base(ctx)
}

func (f *HeartbeatFacade) Redeem(ctx context.Context, coupleID, rewardID string) (*model.Redemption, int64, error) {
	return f.redemptions.Redeem(ctx, coupleID, rewardID)
}

func (f *HeartbeatFacade) Redemptions(ctx context.Context, coupleID string, limit int) ([]model.Redemption, error) {
	return f.redemptions.History(ctx, coupleID, limit)
}

func (f *HeartbeatFacade) AllRedemptions(ctx context.Context, limit int) ([]model.Redemption, error) {
	return f.redemptions.HistoryAll(ctx, limit)
}

func (f *HeartbeatFacade) Stats(ctx context.Context) (*model.Stats, error) {
	return f.stats.Collect(ctx)
}
