package model

import "time"

// LedgerEntry is one immutable point balance change for a couple.
// Balance holds the couple balance right after the delta was applied, so the
// history replays to the current balance.
type LedgerEntry struct {
	ID        int64
	CoupleID  string
	Delta     int64
	Reason    string
	Balance   int64
	CreatedAt time.Time
}
