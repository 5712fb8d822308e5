package usecase

import (
	"go.uber.org/fx"

	"github.com/mkaryagin/heartbeat/internal/config"
	"github.com/mkaryagin/heartbeat/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewCoupleUseCase,
	newLedgerUseCase,
	NewRewardUseCase,
	newRedemptionUseCase,
	NewStatsUseCase,
)

type limitParams struct {
	fx.In

	Config *config.Config
}

func newLedgerUseCase(ledger repository.LedgerRepository, p limitParams) *LedgerUseCase {
	return NewLedgerUseCase(ledger, p.Config.HistoryLimit)
}

func newRedemptionUseCase(redemptions repository.RedemptionRepository, p limitParams) *RedemptionUseCase {
	return NewRedemptionUseCase(redemptions, p.Config.HistoryLimit)
}
