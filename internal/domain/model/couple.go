package model

import "time"

// Couple is the paired-user unit that owns a point balance and a reward catalog.
// Points are mutated only through the ledger and never drop below zero.
type Couple struct {
	ID        string
	UserID    int64
	Name1     string
	Name2     string
	Points    int64
	CreatedAt time.Time
}
