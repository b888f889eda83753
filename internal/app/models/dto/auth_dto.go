package dto

import "github.com/edupath/admissions/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,portalmail"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents a student self-registration
type RegisterRequest struct {
	Name      string   `json:"name" binding:"required,min=2,max=100"`
	Email     string   `json:"email" binding:"required,portalmail"`
	Password  string   `json:"password" binding:"required,min=6,max=72"`
	SSCGPA    *float64 `json:"ssc_gpa" binding:"omitempty,gpa"`
	HSCGPA    *float64 `json:"hsc_gpa" binding:"omitempty,gpa"`
	GroupName *string  `json:"group_name" binding:"omitempty,max=50"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"Bearer"`
	ExpiresIn   int64  `json:"expires_in"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  *models.User  `json:"user"`
}
