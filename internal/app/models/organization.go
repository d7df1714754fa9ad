package models

import "time"

// Organization represents a student organization account. Organizations act
// both as resource owners and as requesters.
type Organization struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Description  string    `json:"description" db:"description"`
	Email        string    `json:"email" db:"email"`
	Avatar       string    `json:"avatar" db:"avatar"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// RefreshToken is an opaque server-side refresh token issued to an organization
type RefreshToken struct {
	ID             int64     `json:"id" db:"id"`
	OrganizationID int64     `json:"organizationId" db:"organization_id"`
	Token          string    `json:"token" db:"token"`
	ExpiresAt      time.Time `json:"expiresAt" db:"expires_at"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
