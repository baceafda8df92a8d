package postgres

import (
	"context"

	"membership/internal/domain/entity"
	"membership/internal/domain/repository"
	"membership/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tierRepository implements the repository.TierRepository interface.
type tierRepository struct {
	db *gorm.DB
}

// NewTierRepository is the constructor for tierRepository.
func NewTierRepository(db *gorm.DB) repository.TierRepository {
	return &tierRepository{
		db: db,
	}
}

// ListAll returns every tier in the catalog in insertion order.
func (repo *tierRepository) ListAll(ctx context.Context) ([]*entity.Tier, error) {
	var tierModels []*model.TierModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&tierModels).Error; err != nil {
		return nil, storeError(err, "failed to list tiers")
	}

	tiers := make([]*entity.Tier, 0, len(tierModels))
	for _, tierM := range tierModels {
		tiers = append(tiers, toTierDomain(tierM))
	}

	return tiers, nil
}

// FindByID retrieves a tier by its unique ID.
func (repo *tierRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tier, error) {
	var tierM model.TierModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tierM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTierNotFound
		}

		return nil, storeError(err, "failed to find tier by ID")
	}

	return toTierDomain(&tierM), nil
}
