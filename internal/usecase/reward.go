package usecase

import (
	"context"

	domainErrors "github.com/mkaryagin/heartbeat/internal/domain/errors"
	"github.com/mkaryagin/heartbeat/internal/domain/model"
	"github.com/mkaryagin/heartbeat/internal/domain/repository"
)

// RewardUseCase manages the per-couple reward catalog. Ownership is enforced
// here: update and delete verify the reward belongs to the requesting couple.
type RewardUseCase struct {
	rewards     repository.RewardRepository
	baseRewards repository.BaseRewardRepository
}

// NewRewardUseCase constructs RewardUseCase.
func NewRewardUseCase(rewards repository.RewardRepository, baseRewards repository.BaseRewardRepository) *RewardUseCase {
	return &RewardUseCase{rewards: rewards, baseRewards: baseRewards}
}

// Create validates and stores a new reward for the couple.
func (u *RewardUseCase) Create(ctx context.Context, coupleID, name string, price, stock int64, description string) (*model.Reward, error) {
	if err := ValidateReward(name, price, stock, description); err != nil {
		return nil, err
	}
	return u.rewards.Create(ctx, coupleID, name, price, stock, description)
}

// Update applies the patch to a reward owned by coupleID. Fields absent from
// the patch retain their prior values.
func (u *RewardUseCase) Update(ctx context.Context, coupleID, rewardID string, patch model.RewardPatch) (*model.Reward, error) {
	if err := ValidateRewardPatch(patch); err != nil {
		return nil, err
	}
	if err := u.checkOwnership(ctx, coupleID, rewardID); err != nil {
		return nil, err
	}
	return u.rewards.Update(ctx, rewardID, patch)
}

// Delete permanently removes a reward owned by coupleID. Redemption records
// that reference it keep their captured price.
func (u *RewardUseCase) Delete(ctx context.Context, coupleID, rewardID string) error {
	if err := u.checkOwnership(ctx, coupleID, rewardID); err != nil {
		return err
	}
	return u.rewards.Delete(ctx, rewardID)
}

// List returns the couple catalog ordered by ascending price.
func (u *RewardUseCase) List(ctx context.Context, coupleID string) ([]model.Reward, error) {
	return u.rewards.ListByCouple(ctx, coupleID)
}

// Base returns the seeded reference catalog shared by all couples.
func (u *RewardUseCase) Base(ctx context.Context) ([]model.BaseReward, error) {
	return u.baseRewards.List(ctx)
}

func (u *RewardUseCase) checkOwnership(ctx context.Context, coupleID, rewardID string) error {
	reward, err := u.rewards.GetByID(ctx, rewardID)
	if err != nil {
		return err
	}
	if reward.CoupleID != coupleID {
		return domainErrors.ErrForbidden
	}
	return nil
}
