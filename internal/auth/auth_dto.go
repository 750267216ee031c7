package auth

import (
	"time"

	"go-hrfine/internal/user"
)

const TokenTypeBearer = "Bearer"

type LoginRequest struct {
	EmpID    string `json:"emp_id" binding:"required,max=10"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type RegisterRequest struct {
	Email string `json:"email" binding:"required,email,max=100"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=72"`
}

type ChangeTempPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

type ResetPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type TokenResponse struct {
	AccessToken  string             `json:"access_token"`
	RefreshToken string             `json:"refresh_token,omitempty"`
	TokenType    string             `json:"token_type"`
	ExpiresIn    int64              `json:"expires_in"`
	User         *user.UserResponse `json:"user,omitempty"`
}

// RegisterResponse returns the temporary password once, in clear.
type RegisterResponse struct {
	Email    string `json:"email"`
	EmpID    string `json:"emp_id"`
	Password string `json:"password"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Session identifies the access token presented on an authenticated call.
type Session struct {
	UserID    uint
	SessionID string
	TokenID   string
	ExpiresAt time.Time
}
