package middleware

import (
	"log/slog"
	"net/http"

	"membership/internal/delivery/api/response"
	deliverycontext "membership/internal/delivery/context"
	domainerrors "membership/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware turns handler errors into the API's JSON error envelope
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler. Server-side
// failures are logged with the request-scoped logger and never echo their
// cause to the client.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).With(
		slog.String("method", c.Request().Method),
		slog.String("route", c.Path()),
	)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		code := appErr.HTTPCode()
		if code >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.String("error_code", appErr.ErrorCode()), slog.Any("error", err))
		}
		if code == http.StatusServiceUnavailable {
			_ = response.ServiceUnavailable(c, appErr.ErrorCode(), appErr.Message(), 0)

			return
		}
		_ = response.Error(c, code, appErr.ErrorCode(), appErr.Message(), nil)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	logger.Error("Unhandled error", slog.Any("error", err))
	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}
