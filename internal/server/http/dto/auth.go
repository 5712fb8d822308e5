package dto

// RegisterRequest describes the registration payload: credentials plus the
// two display names of the couple.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	Name1    string `json:"name1" binding:"required"`
	Name2    string `json:"name2" binding:"required"`
}

// LoginRequest describes the login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse reports the authenticated identity.
type SessionResponse struct {
	Username string          `json:"username"`
	IsAdmin  bool            `json:"is_admin"`
	Couple   *CoupleResponse `json:"couple,omitempty"`
}
