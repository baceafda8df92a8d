package impl

import (
	"context"
	"time"

	"membership/internal/domain/entity"
	"membership/internal/domain/repository"
	"membership/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type spendSnapshots struct {
	snapshotRepo repository.SpendSnapshotRepository
	now          func() time.Time
}

// NewSpendSnapshots creates the order spend snapshot service
func NewSpendSnapshots(snapshotRepo repository.SpendSnapshotRepository) usecase.SpendSnapshotUsecase {
	return newSpendSnapshots(snapshotRepo, time.Now)
}

func newSpendSnapshots(snapshotRepo repository.SpendSnapshotRepository, now func() time.Time) *spendSnapshots {
	return &spendSnapshots{
		snapshotRepo: snapshotRepo,
		now:          now,
	}
}

// FindByOrderID returns the order's snapshot, or nil when absent
func (s *spendSnapshots) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.OrderSpendSnapshot, error) {
	snapshot, err := s.snapshotRepo.FindByOrderID(ctx, orderID)
	if errors.Is(err, repository.ErrSpendSnapshotNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find spend snapshot by order")
	}

	return snapshot, nil
}

// RecordIfAbsent stores a snapshot for the order unless one exists
func (s *spendSnapshots) RecordIfAbsent(
	ctx context.Context,
	orderID, customerID uuid.UUID,
	tierSnapshot *entity.TierSnapshot,
	amount decimal.Decimal,
) (*entity.OrderSpendSnapshot, bool, error) {
	snapshot := &entity.OrderSpendSnapshot{
		ID:             uuid.New(),
		OrderID:        orderID,
		CustomerID:     customerID,
		TierSnapshot:   tierSnapshot,
		CreditedAmount: amount,
		CreatedAt:      s.now(),
	}

	inserted, err := s.snapshotRepo.InsertIfAbsent(ctx, snapshot)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to record spend snapshot")
	}
	if inserted {
		return snapshot, true, nil
	}

	existing, err := s.snapshotRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to load existing spend snapshot")
	}

	return existing, false, nil
}
