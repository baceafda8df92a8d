package middleware

import (
	"log/slog"
	"strings"

	"membership/internal/delivery/api/response"
	deliverycontext "membership/internal/delivery/context"
	"membership/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	contextKeyRoles  = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer access token and stores the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyRoles, claims.Roles)

		actor := deliverycontext.StaffActor(claims.UserID)
		ctx := deliverycontext.WithActor(c.Request().Context(), actor)
		ctx = deliverycontext.WithLogger(ctx, deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("actor", actor)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireAnyRole rejects callers holding none of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAnyRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			have, ok := GetRoles(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			claims := service.Claims{Roles: have}
			if !claims.HasAnyRole(roles...) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require one of "+strings.Join(roles, ", "))
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated caller's ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetRoles returns the authenticated caller's roles.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(contextKeyRoles).([]string)

	return roles, ok
}
