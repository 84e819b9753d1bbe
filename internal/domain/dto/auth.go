package dto

import "time"

// TokenResponse is returned when an API key is exchanged for an access token.
//
// @Description Short-lived bearer token
type TokenResponse struct {
	// AccessToken is the signed JWT.
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	// TokenType is always "Bearer".
	TokenType string `json:"token_type" example:"Bearer"`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in" example:"900"`
	// ExpiresAt is the absolute expiry time.
	ExpiresAt time.Time `json:"expires_at" example:"2025-01-28T10:15:00Z"`
} // @name TokenResponse

// Claims is the validated content of an access token.
type Claims struct {
	Subject   string    `json:"sub"`
	TokenID   string    `json:"jti"`
	ExpiresAt time.Time `json:"exp"`
}
