package dto

import "time"

// CoupleResponse describes a couple with its current balance.
type CoupleResponse struct {
	ID        string    `json:"id"`
	Names     [2]string `json:"names"`
	Points    int64     `json:"points"`
	CreatedAt time.Time `json:"created_at"`
}

// StatsResponse aggregates system counters for the admin view.
type StatsResponse struct {
	CoupleCount     int64 `json:"couple_count"`
	TotalPoints     int64 `json:"total_points"`
	RewardCount     int64 `json:"reward_count"`
	RedemptionCount int64 `json:"redemption_count"`
}
