package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"membership/config"
	deliverycontext "membership/internal/delivery/context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM output through the request-scoped logger so
// SQL lines carry the request ID of the credit that issued them.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}
	if baseLogger != nil {
		baseLogger = baseLogger.With(slog.String("component", "gorm"))
	}

	return &gormSlogLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: defaultGormSlowThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) log(ctx context.Context) *slog.Logger {
	if scoped := deliverycontext.GetLogger(ctx); scoped != nil {
		return scoped.With(slog.String("component", "gorm"))
	}

	return l.logger
}

func (l *gormSlogLogger) print(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold || l.logger == nil {
		return
	}
	l.log(ctx).LogAttrs(ctx, level, "GORM "+level.String(), slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.print(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.print(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.print(ctx, logger.Error, slog.LevelError, msg, args...)
}

// Trace logs failed queries, slow queries and, at Info, every query.
// Missing rows are expected on lookups and conflicts on reservations, so
// neither is reported as a failure.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	attrs := func(extra ...slog.Attr) []slog.Attr {
		sql, rows := sqlAndRowsFn()

		return append([]slog.Attr{
			slog.Duration("elapsed", elapsed),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		}, extra...)
	}

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		level := slog.LevelError
		if errors.Is(err, context.Canceled) || isUniqueConstraintViolation(err) {
			level = slog.LevelWarn
		}
		l.log(ctx).LogAttrs(ctx, level, "GORM query failed", attrs(slog.String("error", err.Error()))...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		l.log(ctx).LogAttrs(ctx, slog.LevelWarn, "GORM slow query", attrs(slog.Duration("slow_threshold", l.slowThreshold))...)
	case l.level >= logger.Info:
		l.log(ctx).LogAttrs(ctx, slog.LevelInfo, "GORM query", attrs()...)
	}
}
