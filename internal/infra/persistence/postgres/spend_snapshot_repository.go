package postgres

import (
	"context"

	"membership/internal/domain/entity"
	"membership/internal/domain/repository"
	"membership/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// spendSnapshotRepository implements the repository.SpendSnapshotRepository interface.
type spendSnapshotRepository struct {
	db *gorm.DB
}

// NewSpendSnapshotRepository is the constructor for spendSnapshotRepository.
func NewSpendSnapshotRepository(db *gorm.DB) repository.SpendSnapshotRepository {
	return &spendSnapshotRepository{
		db: db,
	}
}

// FindByOrderID retrieves the snapshot of an order.
func (repo *spendSnapshotRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.OrderSpendSnapshot, error) {
	var snapshotM model.OrderSpendSnapshotModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&snapshotM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSpendSnapshotNotFound
		}

		return nil, storeError(err, "failed to find spend snapshot by order")
	}

	return toSpendSnapshotDomain(&snapshotM), nil
}

// InsertIfAbsent runs INSERT ... ON CONFLICT (order_id) DO NOTHING and
// reports whether the row was written.
func (repo *spendSnapshotRepository) InsertIfAbsent(ctx context.Context, snapshot *entity.OrderSpendSnapshot) (bool, error) {
	snapshotM := fromSpendSnapshotDomain(snapshot)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			DoNothing: true,
		}).
		Create(snapshotM)
	if result.Error != nil {
		return false, storeError(result.Error, "failed to insert spend snapshot")
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	snapshot.ID = snapshotM.ID
	snapshot.CreatedAt = snapshotM.CreatedAt

	return true, nil
}
