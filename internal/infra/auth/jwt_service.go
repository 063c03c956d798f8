// Package auth provides the admin session token implementation.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"renteasy/config"
	"renteasy/internal/domain/service"
)

// jwtService implements the TokenService interface using the JWT standard.
// The token only proves to the HTTP layer that a login happened; the admin
// flag itself lives in the state store and the local mirror.
type jwtService struct {
	secret string        // Secret key for signing admin session tokens.
	ttl    time.Duration // Time-to-live for admin session tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Admin.TokenSecret == "" {
		return nil, errors.New("admin token secret must be provided")
	}

	return &jwtService{
		secret: cfg.Admin.TokenSecret,
		ttl:    cfg.Admin.TokenTTL,
	}, nil
}

// GenerateAdminToken creates a signed admin session token.
func (s *jwtService) GenerateAdminToken() (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   "admin",
		"admin": true,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "sign admin token")
	}

	return signed, nil
}

// ValidateAdminToken checks a token string and returns its claims.
func (s *jwtService) ValidateAdminToken(tokenString string) (*service.AdminClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse admin token")
	}
	if !token.Valid {
		return nil, errors.New("invalid admin token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected admin token claims")
	}

	isAdmin, _ := claims["admin"].(bool)
	if !isAdmin {
		return nil, errors.New("token does not carry an admin session")
	}

	result := &service.AdminClaims{Admin: true}
	if issued, err := claims.GetIssuedAt(); err == nil && issued != nil {
		result.IssuedAt = issued.Time
	}
	if expires, err := claims.GetExpirationTime(); err == nil && expires != nil {
		result.ExpiresAt = expires.Time
	}

	return result, nil
}
