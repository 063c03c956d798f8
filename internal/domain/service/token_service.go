package service

import "time"

// AdminClaims carries the decoded contents of an admin session token.
type AdminClaims struct {
	Admin     bool
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService defines the interface for issuing and validating the admin
// session JWT handed to HTTP clients after a successful login. The token is
// a transport detail; the admin flag itself lives in the state store and the
// local mirror.
type TokenService interface {
	// GenerateAdminToken creates a signed admin session token.
	GenerateAdminToken() (string, error)

	// ValidateAdminToken checks a token string and returns its claims.
	ValidateAdminToken(tokenString string) (*AdminClaims, error)
}
