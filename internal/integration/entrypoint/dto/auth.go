package dto

import "time"

// LoginRequest represents the request body for the PIN login.
type LoginRequest struct {
	User string `json:"user" binding:"required"`
	PIN  string `json:"pin" binding:"required"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	User      string    `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// UsersResponse lists the ledger members available for login.
type UsersResponse struct {
	Users []string `json:"users"`
}
