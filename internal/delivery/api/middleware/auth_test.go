package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "membership/internal/delivery/context"
	"membership/internal/domain/service"
	mockService "membership/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tiers", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setupMock  func(tokenSvc *mockService.MockTokenService)
		wantStatus int
	}{
		{
			name:       "missing header",
			header:     "",
			setupMock:  func(_ *mockService.MockTokenService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic abc",
			setupMock:  func(_ *mockService.MockTokenService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setupMock: func(tokenSvc *mockService.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("bad").Return(nil, errors.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setupMock: func(tokenSvc *mockService.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID, Roles: []string{"staff"}}, nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			tt.setupMock(tokenSvc)
			m := NewAuthMiddleware(tokenSvc, newDiscardLogger())

			c, rec := newAuthContext(tt.header)
			require.NoError(t, m.Authenticate(okHandler)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusNoContent {
				gotID, ok := GetUserID(c)
				assert.True(t, ok)
				assert.Equal(t, userID, gotID)
				assert.Equal(t, deliverycontext.StaffActor(userID), deliverycontext.GetActorFromContext(c.Request().Context()))
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))
			}
		})
	}
}

func TestAuthMiddleware_RequireAnyRole(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t), newDiscardLogger())

	tests := []struct {
		name       string
		roles      []string
		setRoles   bool
		wantStatus int
	}{
		{"staff allowed", []string{"staff"}, true, http.StatusNoContent},
		{"admin allowed", []string{"customer", "admin"}, true, http.StatusNoContent},
		{"customer rejected", []string{"customer"}, true, http.StatusForbidden},
		{"roles missing", nil, false, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newAuthContext("")
			if tt.setRoles {
				c.Set(contextKeyRoles, tt.roles)
			}

			require.NoError(t, m.RequireAnyRole("staff", "admin")(okHandler)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
