// Package persistence selects the storage backend for the membership workflow.
package persistence

import (
	"log/slog"

	"membership/config"
	"membership/internal/domain/repository"
	"membership/internal/infra/metrics"
	"membership/internal/infra/persistence/memory"
	"membership/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the storage backend, injected by Fx.
type Params struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Recorder `optional:"true"`
}

// Repositories exposes every repository of the selected backend to Fx.
type Repositories struct {
	fx.Out

	TxManager    repository.TransactionManager
	TierRepo     repository.TierRepository
	LoyaltyRepo  repository.LoyaltyRepository
	CardRepo     repository.MembershipCardRepository
	SnapshotRepo repository.SpendSnapshotRepository
	OrderRepo    repository.OrderRepository
}

// New builds the repositories for storage.driver.
func New(params Params) (Repositories, error) {
	switch params.Config.Storage.Driver {
	case config.StorageDriverMemory:
		params.Logger.Warn("Using in-memory storage, data is lost on restart",
			slog.Int("seed_tiers", len(params.Config.Storage.SeedTiers)),
		)

		return NewMemory(memory.NewFromConfig(params.Config)), nil
	case config.StorageDriverPostgres, "":
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
			Metrics:   params.Metrics,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			TxManager:    postgres.NewTransactionManager(db),
			TierRepo:     postgres.NewTierRepository(db),
			LoyaltyRepo:  postgres.NewLoyaltyRepository(db),
			CardRepo:     postgres.NewMembershipCardRepository(db),
			SnapshotRepo: postgres.NewSpendSnapshotRepository(db),
			OrderRepo:    postgres.NewOrderRepository(db),
		}, nil
	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", params.Config.Storage.Driver)
	}
}

// NewMemory wires every repository to store.
func NewMemory(store *memory.Store) Repositories {
	return Repositories{
		TxManager:    memory.NewTransactionManager(store),
		TierRepo:     memory.NewTierRepository(store),
		LoyaltyRepo:  memory.NewLoyaltyRepository(store),
		CardRepo:     memory.NewMembershipCardRepository(store),
		SnapshotRepo: memory.NewSpendSnapshotRepository(store),
		OrderRepo:    memory.NewOrderRepository(store),
	}
}
