package middleware

import (
	"log/slog"
	"time"

	"membership/config"
	deliverycontext "membership/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

var loggedParams = []struct{ param, attr string }{
	{"customerId", "customer_id"},
	{"orderId", "order_id"},
	{"cardId", "card_id"},
}

// LoggerMiddleware writes one access log line per request. Failures are
// always logged; successful requests only in debug mode.
type LoggerMiddleware struct {
	logger    *slog.Logger
	debug     bool
	skipPaths map[string]struct{}
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	skip := map[string]struct{}{"/health": {}}
	if cfg.Metrics != nil && cfg.Metrics.Path != "" {
		skip[cfg.Metrics.Path] = struct{}{}
	}

	return &LoggerMiddleware{
		logger:    logger,
		debug:     cfg.Env.Debug,
		skipPaths: skip,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, skip := m.skipPaths[c.Request().URL.Path]; skip {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		if err != nil {
			// Let the error handler write the response so the status is final.
			c.Error(err)
		}
		m.logRequest(c, start, err)

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	status := c.Response().Status

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	case !m.debug:
		return
	}

	req := c.Request()
	ctx := req.Context()
	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}
	for _, p := range loggedParams {
		if v := c.Param(p.param); v != "" {
			attrs = append(attrs, slog.String(p.attr, v))
		}
	}
	if actor := deliverycontext.GetActorFromContext(ctx); actor != "" {
		attrs = append(attrs, slog.String("actor", actor))
	}
	if m.debug {
		attrs = append(attrs, slog.String("user_agent", req.UserAgent()))
		if req.URL.RawQuery != "" {
			attrs = append(attrs, slog.String("query", req.URL.RawQuery))
		}
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)
	logger.LogAttrs(ctx, level, "HTTP Request", attrs...)
}
