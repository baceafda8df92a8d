package auth

import (
	"testing"
	"time"

	"membership/config"
	"membership/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func signToken(t *testing.T, method jwt.SigningMethod, secret any, claims *service.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(secret)
	require.NoError(t, err)

	return token
}

func validClaims(userID uuid.UUID, roles []string) *service.Claims {
	return &service.Claims{
		UserID: userID,
		Roles:  roles,
		Type:   "access",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
		},
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig(""))
	require.Error(t, err)
}

func TestJWTService_ValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	userID := uuid.New()
	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(userID, []string{"staff"}))

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"staff"}, claims.Roles)
	assert.True(t, claims.HasAnyRole("admin", "staff"))
	assert.False(t, claims.HasAnyRole("admin"))
}

func TestJWTService_ValidateToken_Rejects(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	expired := validClaims(uuid.New(), []string{"staff"})
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	refresh := validClaims(uuid.New(), nil)
	refresh.Type = "refresh"

	noExpiry := validClaims(uuid.New(), []string{"staff"})
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "malformed token",
			token: "not-a-jwt",
		},
		{
			name:  "wrong secret",
			token: signToken(t, jwt.SigningMethodHS256, []byte("another_secret"), validClaims(uuid.New(), []string{"staff"})),
		},
		{
			name:  "unexpected signing method",
			token: signToken(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims(uuid.New(), []string{"staff"})),
		},
		{
			name:  "expired token",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired),
		},
		{
			name:  "refresh token",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), refresh),
		},
		{
			name:  "missing expiry",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noExpiry),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := jwtService.ValidateToken(tt.token)
			require.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
