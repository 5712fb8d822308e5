package dto

import "time"

// AdjustPointsRequest describes a manual balance adjustment.
type AdjustPointsRequest struct {
	Delta  int64  `json:"delta" binding:"required"`
	Reason string `json:"reason" binding:"required,max=100"`
}

// BalanceResponse reports the current point balance.
type BalanceResponse struct {
	Points int64 `json:"points"`
}

// LedgerEntryResponse describes one point history row.
type LedgerEntryResponse struct {
	Delta     int64     `json:"delta"`
	Reason    string    `json:"reason"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}
