// Package postgres implements the membership repositories on PostgreSQL through GORM.
package postgres

import (
	"context"
	"database/sql"

	"membership/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormTransactionManager runs credits in READ COMMITTED transactions. Row
// locks and conditional inserts inside the repositories provide the
// per-customer serialization, so a stricter isolation level is not needed.
type gormTransactionManager struct {
	db   *gorm.DB
	opts *sql.TxOptions
}

// gormRepositoryFactory hands out repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) TierRepo() repository.TierRepository {
	return NewTierRepository(f.tx)
}

func (f *gormRepositoryFactory) LoyaltyRepo() repository.LoyaltyRepository {
	return NewLoyaltyRepository(f.tx)
}

func (f *gormRepositoryFactory) MembershipCardRepo() repository.MembershipCardRepository {
	return NewMembershipCardRepository(f.tx)
}

func (f *gormRepositoryFactory) SpendSnapshotRepo() repository.SpendSnapshotRepository {
	return NewSpendSnapshotRepository(f.tx)
}

func (f *gormRepositoryFactory) OrderRepo() repository.OrderRepository {
	return NewOrderRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{
		db:   db,
		opts: &sql.TxOptions{Isolation: sql.LevelReadCommitted},
	}
}

// Execute runs fn in one transaction, committing only when fn succeeds.
// Errors from fn are returned unchanged; begin and commit failures are
// reported as store errors. A panic in fn rolls back and re-panics.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&gormRepositoryFactory{tx: tx})

		return fnErr
	}, tm.opts)

	switch {
	case err == nil:
		return nil
	case fnErr != nil && errors.Is(err, fnErr):
		return fnErr
	default:
		return storeError(err, "membership transaction failed")
	}
}
