package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/mkaryagin/heartbeat/internal/domain/errors"
	"github.com/mkaryagin/heartbeat/internal/domain/model"
	"github.com/mkaryagin/heartbeat/internal/domain/repository"
)

// CoupleUseCase manages couple lifecycle and lookups.
type CoupleUseCase struct {
	couples repository.CoupleRepository
}

// NewCoupleUseCase constructs CoupleUseCase.
func NewCoupleUseCase(couples repository.CoupleRepository) *CoupleUseCase {
	return &CoupleUseCase{couples: couples}
}

// Create registers the couple owned by userID. Each identity owns at most one
// couple; a second attempt fails with ErrAlreadyExists.
func (u *CoupleUseCase) Create(ctx context.Context, userID int64, name1, name2 string) (*model.Couple, error) {
	if err := ValidateNames(name1, name2); err != nil {
		return nil, err
	}

	if _, err := u.couples.GetByUser(ctx, userID); err == nil {
		return nil, domainErrors.ErrAlreadyExists
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}

	return u.couples.Create(ctx, userID, name1, name2)
}

// Get fetches a couple by its identifier.
func (u *CoupleUseCase) Get(ctx context.Context, coupleID string) (*model.Couple, error) {
	return u.couples.GetByID(ctx, coupleID)
}

// ByUser fetches the couple owned by userID.
func (u *CoupleUseCase) ByUser(ctx context.Context, userID int64) (*model.Couple, error) {
	return u.couples.GetByUser(ctx, userID)
}

// List returns all couples; admin gating happens at the boundary.
func (u *CoupleUseCase) List(ctx context.Context) ([]model.Couple, error) {
	return u.couples.List(ctx)
}
