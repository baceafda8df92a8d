package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by staff access tokens.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Roles  []string  `json:"roles,omitempty"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// HasAnyRole reports whether the claims grant at least one of roles.
func (c *Claims) HasAnyRole(roles ...string) bool {
	for _, have := range c.Roles {
		for _, want := range roles {
			if have == want {
				return true
			}
		}
	}

	return false
}

// TokenService validates the access tokens presented to the admin API.
// Tokens are issued by the identity service; this service never mints them.
type TokenService interface {
	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
