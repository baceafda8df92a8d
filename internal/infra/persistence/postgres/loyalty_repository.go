package postgres

import (
	"context"
	"time"

	"membership/internal/domain/entity"
	"membership/internal/domain/repository"
	"membership/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// loyaltyRepository implements the repository.LoyaltyRepository interface.
type loyaltyRepository struct {
	db *gorm.DB
}

// NewLoyaltyRepository is the constructor for loyaltyRepository.
func NewLoyaltyRepository(db *gorm.DB) repository.LoyaltyRepository {
	return &loyaltyRepository{
		db: db,
	}
}

// FindByCustomerAndYear retrieves the record for a customer's calendar year.
func (repo *loyaltyRepository) FindByCustomerAndYear(ctx context.Context, customerID uuid.UUID, year int) (*entity.LoyaltyRecord, error) {
	var recordM model.LoyaltyRecordModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ? AND year = ?", customerID, year).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLoyaltyRecordNotFound
		}

		return nil, storeError(err, "failed to find loyalty record by customer and year")
	}

	return toLoyaltyRecordDomain(&recordM), nil
}

// FindLatestByCustomer retrieves the customer's record with the highest year.
func (repo *loyaltyRepository) FindLatestByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.LoyaltyRecord, error) {
	var recordM model.LoyaltyRecordModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("year DESC").
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLoyaltyRecordNotFound
		}

		return nil, storeError(err, "failed to find latest loyalty record")
	}

	return toLoyaltyRecordDomain(&recordM), nil
}

// Create persists a new record. A concurrent insert for the same
// (customer, year) is reported as ErrDuplicateLoyaltyRecord without
// aborting the surrounding transaction.
func (repo *loyaltyRepository) Create(ctx context.Context, record *entity.LoyaltyRecord) error {
	recordM := fromLoyaltyRecordDomain(record)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "customer_id"}, {Name: "year"}},
			DoNothing: true,
		}).
		Create(recordM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateLoyaltyRecord
		}

		return storeError(result.Error, "failed to create loyalty record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDuplicateLoyaltyRecord
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt
	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

// Update overwrites the spend totals of an existing record.
func (repo *loyaltyRepository) Update(ctx context.Context, record *entity.LoyaltyRecord) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LoyaltyRecordModel{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"spend_this_year": record.SpendThisYear,
			"lifetime_spend":  record.LifetimeSpend,
			"updated_at":      record.UpdatedAt,
		})
	if result.Error != nil {
		return storeError(result.Error, "failed to update loyalty record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLoyaltyRecordNotFound
	}

	return nil
}

// IncrementSpend adds amount to both totals in a single UPDATE so concurrent
// credits for the same customer cannot lose an increment.
func (repo *loyaltyRepository) IncrementSpend(ctx context.Context, id uuid.UUID, amount decimal.Decimal, updatedAt time.Time) (*entity.LoyaltyRecord, error) {
	var recordM model.LoyaltyRecordModel

	result := repo.db.WithContext(ctx).
		Model(&recordM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"spend_this_year": gorm.Expr("spend_this_year + ?", amount),
			"lifetime_spend":  gorm.Expr("lifetime_spend + ?", amount),
			"updated_at":      updatedAt,
		})
	if result.Error != nil {
		return nil, storeError(result.Error, "failed to increment loyalty record")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrLoyaltyRecordNotFound
	}

	return toLoyaltyRecordDomain(&recordM), nil
}
