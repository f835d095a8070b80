package dto

import (
	"github.com/google/uuid"
)

type RegisterDTO struct {
	Username  string `json:"username" binding:"required,max=150"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Password2 string `json:"password2" binding:"required"`
}

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenPairDTO is the login response: a short-lived access token and a
// long-lived refresh token, plus basic identity echo.
type TokenPairDTO struct {
	Refresh  string `json:"refresh"`
	Access   string `json:"access"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type UserDTO struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

type UserProfileDTO struct {
	ID         uuid.UUID `json:"id"`
	User       UserDTO   `json:"user"`
	TotalScore int       `json:"total_score"`
	Level      string    `json:"level"`
}
