package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RegisterRequest holds the desired credentials for a new account.
// Usernames are alphanumeric only and at most 8 characters.
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,alphanum,max=8"`
	Password  string `json:"password" validate:"required"`
	IP        string `json:"-"`
	UserAgent string `json:"-"`
}

// LoginRequest holds credentials for authenticating a user.
type LoginRequest struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
	IP        string `json:"-"`
	UserAgent string `json:"-"`
}

// LoginResponse returns the issued tokens, user info and the landing page
// the client should navigate to.
type LoginResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresIn    int64     `json:"expires_in"`
	RedirectTo   string    `json:"redirect_to"`
	User         UserInfo  `json:"user"`
	IssuedAt     time.Time `json:"issued_at"`
}

// RefreshTokenRequest exchanges a refresh token for a new access token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
	IP           string `json:"-"`
	UserAgent    string `json:"-"`
}

// RefreshTokenResponse returns the refreshed tokens.
type RefreshTokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresIn    int64     `json:"expires_in"`
	IssuedAt     time.Time `json:"issued_at"`
}

// UserInfo describes the authenticated user in responses.
type UserInfo struct {
	ID          string       `json:"id"`
	Username    string       `json:"username"`
	IsStaff     bool         `json:"is_staff"`
	IsSuperuser bool         `json:"is_superuser"`
	Permissions []Permission `json:"permissions"`
}

// JWTClaims represents the JWT payload for access tokens. Permission grants
// are embedded so handlers can authorize without a database round trip.
type JWTClaims struct {
	UserID      string       `json:"user_id"`
	Username    string       `json:"username"`
	IsStaff     bool         `json:"is_staff"`
	IsSuperuser bool         `json:"is_superuser"`
	Permissions []Permission `json:"permissions"`
	jwt.RegisteredClaims
}

// HasPermission reports whether the token bearer may perform the action.
func (c *JWTClaims) HasPermission(p Permission) bool {
	if c.IsSuperuser {
		return true
	}
	for _, granted := range c.Permissions {
		if granted == p {
			return true
		}
	}
	return false
}
