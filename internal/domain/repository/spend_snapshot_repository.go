package repository

import (
	"context"

	"membership/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSpendSnapshotNotFound is returned when an order has no spend snapshot.
var ErrSpendSnapshotNotFound = errors.New("order spend snapshot not found")

// SpendSnapshotRepository defines the interface for order spend snapshots.
type SpendSnapshotRepository interface {
	// FindByOrderID retrieves the snapshot of an order.
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.OrderSpendSnapshot, error)

	// InsertIfAbsent stores the snapshot unless one already exists for its
	// order, reporting whether a row was inserted. The uniqueness check and
	// the write are a single atomic operation.
	InsertIfAbsent(ctx context.Context, snapshot *entity.OrderSpendSnapshot) (bool, error)
}
