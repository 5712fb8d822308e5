package model

import "time"

// Reward is a couple-owned catalog item redeemable for points.
type Reward struct {
	ID          string
	CoupleID    string
	Name        string
	Price       int64
	Stock       int64
	Description string
	CreatedAt   time.Time
}

// BaseReward is a read-only reference reward seeded at schema init. Couples
// use it as inspiration for their own catalog; it is never redeemed directly.
type BaseReward struct {
	ID          int64
	Name        string
	Price       int64
	Description string
}

// RewardPatch carries optional reward updates; nil fields keep prior values.
type RewardPatch struct {
	Name        *string
	Price       *int64
	Stock       *int64
	Description *string
}

// Empty reports whether the patch changes nothing.
func (p RewardPatch) Empty() bool {
	return p.Name == nil && p.Price == nil && p.Stock == nil && p.Description == nil
}
