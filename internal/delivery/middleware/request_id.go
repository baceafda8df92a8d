package middleware

import (
	"log/slog"
	"unicode"

	deliverycontext "membership/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxRequestIDLength = 128

// RequestIDMiddleware assigns every request an ID and a logger tagged with it
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses the caller's X-Request-Id or X-Correlation-Id when it is
// usable, generating one otherwise, and echoes it on the response.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header
		requestID := sanitizeRequestID(header.Get(deliverycontext.HeaderXRequestID))
		if requestID == "" {
			requestID = sanitizeRequestID(header.Get(deliverycontext.HeaderXCorrelationID))
		}
		if requestID == "" {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String("request_id", requestID)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// sanitizeRequestID returns "" for IDs that would pollute logs or headers.
func sanitizeRequestID(id string) string {
	if id == "" || len(id) > maxRequestIDLength {
		return ""
	}
	for _, r := range id {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return ""
		}
	}

	return id
}
