package usecase

import (
	"context"

	"github.com/mkaryagin/heartbeat/internal/domain/model"
	"github.com/mkaryagin/heartbeat/internal/domain/repository"
)

// StatsUseCase aggregates system-wide counters for the admin view.
type StatsUseCase struct {
	stats repository.StatsRepository
}

// NewStatsUseCase constructs StatsUseCase.
func NewStatsUseCase(stats repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{stats: stats}
}

// Collect returns current aggregate counters.
func (u *StatsUseCase) Collect(ctx context.Context) (*model.Stats, error) {
	return u.stats.Collect(ctx)
}
