package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/mkaryagin/heartbeat/internal/domain/errors"
	"github.com/mkaryagin/heartbeat/internal/domain/model"
	testhelpers "github.com/mkaryagin/heartbeat/internal/test"
)

func TestRedemptionUseCaseRedeem(t *testing.T) {
	repo := &testhelpers.RedemptionRepositoryStub{RedeemFn: func(ctx context.Context, coupleID, rewardID string) (*model.Redemption, int64, error) {
		return &model.Redemption{ID: "rdm-1", CoupleID: coupleID, RewardID: rewardID, RewardName: "movie night", PointsSpent: 50}, 70, nil
	}}
	uc := NewRedemptionUseCase(repo, 50)

	redemption, balance, err := uc.Redeem(context.Background(), "cpl-1", "rwd-1")
	if err != nil {
		t.Fatalf("redeem returned error: %v", err)
	}
	if redemption.PointsSpent != 50 || balance != 70 {
		t.Fatalf("unexpected redeem result: %+v %d", redemption, balance)
	}
}

func TestRedemptionUseCaseRedeemErrors(t *testing.T) {
	for _, want := range []error{domainErrors.ErrNotFound, domainErrors.ErrOutOfStock, domainErrors.ErrInsufficientPoints} {
		repo := &testhelpers.RedemptionRepositoryStub{RedeemFn: func(context.Context, string, string) (*model.Redemption, int64, error) {
			return nil, 0, want
		}}
		uc := NewRedemptionUseCase(repo, 50)
		if _, _, err := uc.Redeem(context.Background(), "cpl-1", "rwd-1"); !errors.Is(err, want) {
			t.Fatalf("expected %v, got %v", want, err)
		}
	}
}

func TestRedemptionUseCaseHistoryLimit(t *testing.T) {
	var gotLimit int
	repo := &testhelpers.RedemptionRepositoryStub{
		ListFn: func(ctx context.Context, coupleID string, limit int) ([]model.Redemption, error) {
			gotLimit = limit
			return nil, nil
		},
		ListAllFn: func(ctx context.Context, limit int) ([]model.Redemption, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	uc := NewRedemptionUseCase(repo, 20)
	ctx := context.Background()

	if _, err := uc.History(ctx, "cpl-1", 0); err != nil {
		t.Fatalf("history returned error: %v", err)
	}
	if gotLimit != 20 {
		t.Fatalf("expected default limit 20, got %d", gotLimit)
	}

	if _, err := uc.HistoryAll(ctx, 1000); err != nil {
		t.Fatalf("history all returned error: %v", err)
	}
	if gotLimit != maxHistoryLimit {
		t.Fatalf("expected limit clamped to %d, got %d", maxHistoryLimit, gotLimit)
	}
}

func TestStatsUseCaseCollect(t *testing.T) {
	repo := &testhelpers.StatsRepositoryStub{Stats: &model.Stats{CoupleCount: 2, TotalPoints: 340, RewardCount: 5, RedemptionCount: 3}}
	uc := NewStatsUseCase(repo)

	stats, err := uc.Collect(context.Background())
	if err != nil {
		t.Fatalf("collect returned error: %v", err)
	}
	if stats.CoupleCount != 2 || stats.TotalPoints != 340 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
