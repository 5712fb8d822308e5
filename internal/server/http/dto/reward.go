package dto

import "time"

// CreateRewardRequest describes a new catalog item.
type CreateRewardRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Price       int64  `json:"price" binding:"required"`
	Stock       *int64 `json:"stock" binding:"required"`
	Description string `json:"description" binding:"max=200"`
}

// UpdateRewardRequest carries optional reward changes; absent fields keep
// their prior values.
type UpdateRewardRequest struct {
	Name        *string `json:"name"`
	Price       *int64  `json:"price"`
	Stock       *int64  `json:"stock"`
	Description *string `json:"description"`
}

// BaseRewardResponse describes one reference catalog item.
type BaseRewardResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
}

// RewardResponse describes one catalog item.
type RewardResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       int64     `json:"price"`
	Stock       int64     `json:"stock"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
