package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"membership/config"
	"membership/internal/domain/lifecycle"
	"membership/internal/infra/metrics"
	"membership/internal/infra/persistence/model"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Recorder `optional:"true"`
}

// New opens the membership database. The schema is migrated on start when
// storage.autoMigrate is set, and pool statistics are exported when a
// metrics recorder is available.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes go through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	if params.Metrics != nil {
		if err := params.Metrics.RegisterDBStats(sqlDB); err != nil {
			return nil, errors.Wrap(err, "failed to register pool metrics")
		}
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if params.Config.Storage.AutoMigrate {
				if err := Migrate(db.WithContext(ctx)); err != nil {
					return err
				}
				params.Logger.Info("Membership schema migrated")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("wait_count_delta", waitDelta),
					slog.Duration("wait_duration_delta", waitDurationDelta),
					slog.Duration("avg_wait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("max_open_conns", cur.MaxOpenConnections),
					slog.Int("open_conns", cur.OpenConnections),
					slog.Int("in_use_conns", cur.InUse),
					slog.Int("idle_conns", cur.Idle),
					slog.Int64("wait_count_total", cur.WaitCount),
					slog.Duration("wait_duration_total", cur.WaitDuration),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Postgres pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}

// Migrate creates or updates the tables owned by the membership service.
// order_items belongs to the order service and is never migrated here.
// The database must provide uuid_generate_v7().
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.TierModel{},
		&model.LoyaltyRecordModel{},
		&model.MembershipCardModel{},
		&model.OrderSpendSnapshotModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate membership schema")
	}

	return nil
}
