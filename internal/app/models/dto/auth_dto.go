package dto

import "time"

// RegisterRequest is the payload for organization registration
type RegisterRequest struct {
	Name        string `json:"name" binding:"required" example:"Tech Society"`
	Username    string `json:"username" binding:"required" example:"techsociety"`
	Password    string `json:"password" binding:"required,min=8" example:"secret-password"`
	Description string `json:"description" example:"We are a society focused on technology and innovation."`
	Email       string `json:"email" example:"contact@techsociety.org"`
	Avatar      string `json:"avatar" example:"https://example.com/avatar.png"`
}

// LoginRequest is the payload for organization login
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"techsociety"`
	Password string `json:"password" binding:"required" example:"secret-password"`
}

// RefreshTokenRequest is the payload for exchanging a refresh token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	TokenType        string `json:"tokenType" example:"Bearer"`
	ExpiresIn        int    `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int    `json:"refreshExpiresIn" example:"2592000"`
}

// OrganizationProfile is the public view of an organization account
type OrganizationProfile struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Username    string    `json:"username"`
	Description string    `json:"description"`
	Email       string    `json:"email"`
	Avatar      string    `json:"avatar"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AuthResponse is returned from register and login
type AuthResponse struct {
	Organization OrganizationProfile `json:"organization"`
	Tokens       TokenResponse       `json:"tokens"`
}
