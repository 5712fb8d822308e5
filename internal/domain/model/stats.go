package model

// Stats aggregates system-wide counters for the admin view.
type Stats struct {
	CoupleCount     int64
	TotalPoints     int64
	RewardCount     int64
	RedemptionCount int64
}
