package dto

import "time"

// RedeemRequest names the reward to redeem.
type RedeemRequest struct {
	RewardID string `json:"reward_id" binding:"required"`
}

// RedeemResponse reports the created redemption and resulting balance.
type RedeemResponse struct {
	RedemptionID string `json:"redemption_id"`
	NewBalance   int64  `json:"new_balance"`
}

// RedemptionResponse describes one redemption history row.
type RedemptionResponse struct {
	ID          string    `json:"id"`
	CoupleID    string    `json:"couple_id,omitempty"`
	RewardID    string    `json:"reward_id"`
	RewardName  string    `json:"reward_name"`
	PointsSpent int64     `json:"points_spent"`
	CreatedAt   time.Time `json:"created_at"`
}
