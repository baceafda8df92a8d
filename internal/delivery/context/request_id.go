package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyActor identifies who triggered a credit or evaluation, such as
	// "staff:<user id>" or "worker:kafka".
	KeyActor ContextKey = "actor"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"

	// HeaderXCorrelationID is accepted as the request ID when X-Request-Id is absent.
	HeaderXCorrelationID = "X-Correlation-Id"
)

// GetRequestID returns the request ID stored on the echo context, then the one
// carried by the request context. A fresh ID is generated and stored when
// neither exists so every later call for the same request agrees.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		SetRequestID(c, id)

		return id
	}

	id := uuid.New().String()
	SetRequestID(c, id)

	return id
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request ID, or "" when absent.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// WithActor returns a new context recording who triggered the work.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, KeyActor, actor)
}

// GetActorFromContext returns the actor, or "" when absent.
func GetActorFromContext(ctx context.Context) string {
	if actor, ok := ctx.Value(KeyActor).(string); ok {
		return actor
	}

	return ""
}

// StaffActor formats the actor of a staff-initiated request.
func StaffActor(userID uuid.UUID) string {
	return "staff:" + userID.String()
}

// WorkerActor formats the actor of an event delivered through source.
func WorkerActor(source string) string {
	return "worker:" + source
}

// GetLogger returns the request-scoped logger, or nil when absent.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
