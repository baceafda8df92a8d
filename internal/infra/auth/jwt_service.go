// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"membership/config"
	"membership/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const accessTokenType = "access"

// jwtService validates HMAC-signed staff access tokens.
type jwtService struct {
	accessSecret []byte
	parser       *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// ValidateToken parses the token and checks its signature, expiry and type.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := s.parser.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return s.accessSecret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse access token")
	}
	if !token.Valid {
		return nil, errors.New("access token is invalid")
	}
	if claims.Type != accessTokenType {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}

	return claims, nil
}
