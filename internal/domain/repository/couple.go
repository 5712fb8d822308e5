package repository

import (
	"context"

	"github.com/mkaryagin/heartbeat/internal/domain/model"
)

// CoupleRepository describes persistence operations for couples.
type CoupleRepository interface {
	Create(ctx context.Context, userID int64, name1, name2 string) (*model.Couple, error)
	GetByID(ctx context.Context, coupleID string) (*model.Couple, error)
	GetByUser(ctx context.Context, userID int64) (*model.Couple, error)
	List(ctx context.Context) ([]model.Couple, error)
}
