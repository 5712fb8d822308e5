package usecase

import (
	"context"

	"github.com/mkaryagin/heartbeat/internal/domain/model"
	"github.com/mkaryagin/heartbeat/internal/domain/repository"
)

const maxHistoryLimit = 200

// LedgerUseCase manages point balance mutation and history.
type LedgerUseCase struct {
	ledger       repository.LedgerRepository
	defaultLimit int
}

// NewLedgerUseCase constructs LedgerUseCase. defaultLimit bounds history
// queries when the caller does not provide a limit.
func NewLedgerUseCase(ledger repository.LedgerRepository, defaultLimit int) *LedgerUseCase {
	if defaultLimit <= 0 {
		defaultLimit = 50
	}
	return &LedgerUseCase{ledger: ledger, defaultLimit: defaultLimit}
}

// Adjust applies a signed point delta with a reason and returns the new
// balance. Deltas that would drive the balance below zero are rejected by the
// ledger with ErrInsufficientPoints.
func (u *LedgerUseCase) Adjust(ctx context.Context, coupleID string, delta int64, reason string) (int64, error) {
	if err := ValidateAdjustment(delta, reason); err != nil {
		return 0, err
	}
	return u.ledger.ApplyDelta(ctx, coupleID, delta, reason)
}

// History returns ledger entries most-recent-first, bounded by limit.
func (u *LedgerUseCase) History(ctx context.Context, coupleID string, limit int) ([]model.LedgerEntry, error) {
	return u.ledger.ListByCouple(ctx, coupleID, u.clampLimit(limit))
}

// Balance returns the current point balance of the couple.
func (u *LedgerUseCase) Balance(ctx context.Context, coupleID string) (int64, error) {
	return u.ledger.Balance(ctx, coupleID)
}

func (u *LedgerUseCase) clampLimit(limit int) int {
	if limit <= 0 {
		return u.defaultLimit
	}
	if limit > maxHistoryLimit {
		return maxHistoryLimit
	}
	return limit
}
