package response

import (
	"net/http"
	"strconv"
	"time"

	deliverycontext "membership/internal/delivery/context"
	domainerrors "membership/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DefaultRetryAfter is advertised on 503 responses when the caller gives none.
const DefaultRetryAfter = 5 * time.Second

// SuccessResponse wraps every JSON payload the API returns
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse wraps every JSON error the API returns
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo describes a failed request.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"` // 4xx only, never auth failures
}

// MetaInfo carries the request ID so callers can quote it in support tickets.
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// Error returns an error response. Details are dropped for 5xx and auth failures.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// ServiceUnavailable returns a 503 with a Retry-After hint in whole seconds.
func ServiceUnavailable(c echo.Context, errorCode string, message string, retryAfter time.Duration) error {
	if retryAfter <= 0 {
		retryAfter = DefaultRetryAfter
	}
	seconds := int((retryAfter + time.Second - 1) / time.Second)
	c.Response().Header().Set("Retry-After", strconv.Itoa(seconds))

	return Error(c, http.StatusServiceUnavailable, errorCode, message, nil)
}

// PNG writes an image that must not be cached, such as a card QR code.
func PNG(c echo.Context, data []byte) error {
	c.Response().Header().Set("Cache-Control", "no-store")

	return c.Blob(http.StatusOK, "image/png", data)
}

// HandleAppError renders an AppError found anywhere in err's chain. Anything
// else is returned with a stack so the central error handler logs it.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	if appErr.HTTPCode() == http.StatusServiceUnavailable {
		return ServiceUnavailable(c, appErr.ErrorCode(), appErr.Message(), 0)
	}

	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}
