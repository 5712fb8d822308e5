package repository

import (
	"context"

	"github.com/mkaryagin/heartbeat/internal/domain/model"
)

// LedgerRepository manages the append-only point history of a couple.
// ApplyDelta mutates the couple balance and appends the history row inside a
// single transaction; it returns the resulting balance.
type LedgerRepository interface {
	ApplyDelta(ctx context.Context, coupleID string, delta int64, reason string) (int64, error)
	ListByCouple(ctx context.Context, coupleID string, limit int) ([]model.LedgerEntry, error)
	Balance(ctx context.Context, coupleID string) (int64, error)
}
