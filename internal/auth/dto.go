package auth

import "github.com/motorhaus-io/motorhaus-backend/internal/users"

// LoginRequest carries the credentials submitted to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the minted token plus the authenticated account.
type LoginResponse struct {
	AccessToken string         `json:"access_token"`
	User        users.UserView `json:"user"`
}
