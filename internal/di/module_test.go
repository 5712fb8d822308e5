package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/mkaryagin/heartbeat/internal/app"
	"github.com/mkaryagin/heartbeat/internal/config"
	"github.com/mkaryagin/heartbeat/internal/domain/repository"
	"github.com/mkaryagin/heartbeat/internal/pkg/session"
	"github.com/mkaryagin/heartbeat/internal/storage/postgres"
	"github.com/mkaryagin/heartbeat/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:           ":0",
		DatabaseURI:          "postgres://stub",
		AdminUsername:        "admin",
		SessionTTL:           time.Minute,
		SessionSweepInterval: time.Millisecond,
		HistoryLimit:         10,
		ShutdownTimeout:      time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	coupleRepo := &test.CoupleRepositoryStub{}
	ledgerRepo := &test.LedgerRepositoryStub{}
	rewardRepo := &test.RewardRepositoryStub{}
	baseRewardRepo := &test.BaseRewardRepositoryStub{}
	redemptionRepo := &test.RedemptionRepositoryStub{}
	statsRepo := &test.StatsRepositoryStub{}
	sessions := &test.SessionStoreStub{}

	var facade *app.HeartbeatFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.CoupleRepository(coupleRepo)),
			fx.Replace(repository.LedgerRepository(ledgerRepo)),
			fx.Replace(repository.RewardRepository(rewardRepo)),
			fx.Replace(repository.BaseRewardRepository(baseRewardRepo)),
			fx.Replace(repository.RedemptionRepository(redemptionRepo)),
			fx.Replace(repository.StatsRepository(statsRepo)),
			fx.Replace(session.Store(sessions)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected heartbeat facade instance")
	}
}
