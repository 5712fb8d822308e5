package model

import "time"

// User represents an account that owns at most one couple.
// Admin accounts own no couple and may inspect aggregate data.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}
