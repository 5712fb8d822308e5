package model

import "time"

// Redemption records one exchange of points for a single stock unit of a
// reward. PointsSpent captures the reward price at redemption time and is
// never re-read, so deleting the reward keeps the history intact.
type Redemption struct {
	ID          string
	CoupleID    string
	RewardID    string
	RewardName  string
	PointsSpent int64
	CreatedAt   time.Time
}
