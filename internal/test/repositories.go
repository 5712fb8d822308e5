package test

import (
	"context"
	"fmt"

	domainErrors "github.com/mkaryagin/heartbeat/internal/domain/errors"
	"github.com/mkaryagin/heartbeat/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless the username is already taken.
func (s *UserRepositoryStub) Create(ctx context.Context, username, passwordHash string, isAdmin bool) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Username: username, PasswordHash: passwordHash, IsAdmin: isAdmin}
	s.Next++
	s.Users[username] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByUsername fetches user by username or returns not found.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[username]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// CoupleRepositoryStub stores couples in-memory with optional overrides.
type CoupleRepositoryStub struct {
	CreateFn    func(context.Context, int64, string, string) (*model.Couple, error)
	GetByIDFn   func(context.Context, string) (*model.Couple, error)
	GetByUserFn func(context.Context, int64) (*model.Couple, error)
	ListFn      func(context.Context) ([]model.Couple, error)

	Couples map[string]*model.Couple
	Next    int
}

// Create stores a couple with a deterministic identifier.
func (s *CoupleRepositoryStub) Create(ctx context.Context, userID int64, name1, name2 string) (*model.Couple, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, name1, name2)
	}
	if s.Couples == nil {
		s.Couples = make(map[string]*model.Couple)
	}
	for _, c := range s.Couples {
		if c.UserID == userID {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	s.Next++
	couple := &model.Couple{
		ID:     fmt.Sprintf("couple_%04d", s.Next),
		UserID: userID,
		Name1:  name1,
		Name2:  name2,
	}
	s.Couples[couple.ID] = couple
	return couple, nil
}

// GetByID fetches a stored couple or returns not found.
func (s *CoupleRepositoryStub) GetByID(ctx context.Context, coupleID string) (*model.Couple, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, coupleID)
	}
	if couple, ok := s.Couples[coupleID]; ok {
		return couple, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByUser fetches the couple owned by userID or returns not found.
func (s *CoupleRepositoryStub) GetByUser(ctx context.Context, userID int64) (*model.Couple, error) {
	if s.GetByUserFn != nil {
		return s.GetByUserFn(ctx, userID)
	}
	for _, c := range s.Couples {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored couples.
func (s *CoupleRepositoryStub) List(ctx context.Context) ([]model.Couple, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	result := make([]model.Couple, 0, len(s.Couples))
	for _, c := range s.Couples {
		result = append(result, *c)
	}
	return result, nil
}

// LedgerRepositoryStub lets tests control ledger behaviour.
type LedgerRepositoryStub struct {
	ApplyDeltaFn func(context.Context, string, int64, string) (int64, error)
	ListFn       func(context.Context, string, int) ([]model.LedgerEntry, error)
	BalanceFn    func(context.Context, string) (int64, error)

	Entries  []model.LedgerEntry
	Balances map[string]int64
}

// ApplyDelta records the delta against the in-memory balance.
func (s *LedgerRepositoryStub) ApplyDelta(ctx context.Context, coupleID string, delta int64, reason string) (int64, error) {
	if s.ApplyDeltaFn != nil {
		return s.ApplyDeltaFn(ctx, coupleID, delta, reason)
	}
	if s.Balances == nil {
		s.Balances = make(map[string]int64)
	}
	balance := s.Balances[coupleID] + delta
	if balance < 0 {
		return 0, domainErrors.ErrInsufficientPoints
	}
	s.Balances[coupleID] = balance
	s.Entries = append([]model.LedgerEntry{{
		CoupleID: coupleID,
		Delta:    delta,
		Reason:   reason,
		Balance:  balance,
	}}, s.Entries...)
	return balance, nil
}

// ListByCouple returns recorded entries, most recent first.
func (s *LedgerRepositoryStub) ListByCouple(ctx context.Context, coupleID string, limit int) ([]model.LedgerEntry, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, coupleID, limit)
	}
	var result []model.LedgerEntry
	for _, e := range s.Entries {
		if e.CoupleID == coupleID {
			result = append(result, e)
		}
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

// Balance returns the tracked balance.
func (s *LedgerRepositoryStub) Balance(ctx context.Context, coupleID string) (int64, error) {
	if s.BalanceFn != nil {
		return s.BalanceFn(ctx, coupleID)
	}
	if s.Balances == nil {
		return 0, domainErrors.ErrNotFound
	}
	balance, ok := s.Balances[coupleID]
	if !ok {
		return 0, domainErrors.ErrNotFound
	}
	return balance, nil
}

// RewardRepositoryStub stores rewards in-memory with optional overrides.
type RewardRepositoryStub struct {
	CreateFn func(context.Context, string, string, int64, int64, string) (*model.Reward, error)
	GetFn    func(context.Context, string) (*model.Reward, error)
	UpdateFn func(context.Context, string, model.RewardPatch) (*model.Reward, error)
	DeleteFn func(context.Context, string) error
	ListFn   func(context.Context, string) ([]model.Reward, error)

	Rewards map[string]*model.Reward
	Next    int
}

// Create stores a reward with a deterministic identifier.
func (s *RewardRepositoryStub) Create(ctx context.Context, coupleID, name string, price, stock int64, description string) (*model.Reward, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, coupleID, name, price, stock, description)
	}
	if s.Rewards == nil {
		s.Rewards = make(map[string]*model.Reward)
	}
	s.Next++
	reward := &model.Reward{
		ID:          fmt.Sprintf("reward_%04d", s.Next),
		CoupleID:    coupleID,
		Name:        name,
		Price:       price,
		Stock:       stock,
		Description: description,
	}
	s.Rewards[reward.ID] = reward
	return reward, nil
}

// GetByID fetches a stored reward or returns not found.
func (s *RewardRepositoryStub) GetByID(ctx context.Context, rewardID string) (*model.Reward, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, rewardID)
	}
	if reward, ok := s.Rewards[rewardID]; ok {
		return reward, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Update applies the patch in-memory.
func (s *RewardRepositoryStub) Update(ctx context.Context, rewardID string, patch model.RewardPatch) (*model.Reward, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, rewardID, patch)
	}
	reward, ok := s.Rewards[rewardID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if patch.Name != nil {
		reward.Name = *patch.Name
	}
	if patch.Price != nil {
		reward.Price = *patch.Price
	}
	if patch.Stock != nil {
		reward.Stock = *patch.Stock
	}
	if patch.Description != nil {
		reward.Description = *patch.Description
	}
	return reward, nil
}

// Delete removes the reward.
func (s *RewardRepositoryStub) Delete(ctx context.Context, rewardID string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, rewardID)
	}
	if _, ok := s.Rewards[rewardID]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Rewards, rewardID)
	return nil
}

// ListByCouple returns rewards belonging to the couple.
func (s *RewardRepositoryStub) ListByCouple(ctx context.Context, coupleID string) ([]model.Reward, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, coupleID)
	}
	var result []model.Reward
	for _, r := range s.Rewards {
		if r.CoupleID == coupleID {
			result = append(result, *r)
		}
	}
	return result, nil
}

// BaseRewardRepositoryStub serves a configurable reference catalog.
type BaseRewardRepositoryStub struct {
	ListFn func(context.Context) ([]model.BaseReward, error)
	Items  []model.BaseReward
}

// List returns the configured reference rewards.
func (s *BaseRewardRepositoryStub) List(ctx context.Context) ([]model.BaseReward, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Items, nil
}

// RedemptionRepositoryStub lets tests control redemption behaviour.
type RedemptionRepositoryStub struct {
	RedeemFn  func(context.Context, string, string) (*model.Redemption, int64, error)
	ListFn    func(context.Context, string, int) ([]model.Redemption, error)
	ListAllFn func(context.Context, int) ([]model.Redemption, error)

	Items []model.Redemption
}

// Redeem delegates to the override or fails as not found.
func (s *RedemptionRepositoryStub) Redeem(ctx context.Context, coupleID, rewardID string) (*model.Redemption, int64, error) {
	if s.RedeemFn != nil {
		return s.RedeemFn(ctx, coupleID, rewardID)
	}
	return nil, 0, domainErrors.ErrNotFound
}

// ListByCouple returns configured redemptions.
func (s *RedemptionRepositoryStub) ListByCouple(ctx context.Context, coupleID string, limit int) ([]model.Redemption, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, coupleID, limit)
	}
	return s.Items, nil
}

// ListAll returns configured redemptions across couples.
func (s *RedemptionRepositoryStub) ListAll(ctx context.Context, limit int) ([]model.Redemption, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx, limit)
	}
	return s.Items, nil
}

// StatsRepositoryStub returns configured aggregate counters.
type StatsRepositoryStub struct {
	CollectFn func(context.Context) (*model.Stats, error)
	Stats     *model.Stats
}

// Collect returns the configured stats.
func (s *StatsRepositoryStub) Collect(ctx context.Context) (*model.Stats, error) {
	if s.CollectFn != nil {
		return s.CollectFn(ctx)
	}
	if s.Stats == nil {
		return &model.Stats{}, nil
	}
	return s.Stats, nil
}
