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

// membershipCardRepository implements the repository.MembershipCardRepository interface.
type membershipCardRepository struct {
	db *gorm.DB
}

// NewMembershipCardRepository is the constructor for membershipCardRepository.
func NewMembershipCardRepository(db *gorm.DB) repository.MembershipCardRepository {
	return &membershipCardRepository{
		db: db,
	}
}

// FindLatestActiveByCustomer retrieves the most recently issued active card.
// The row is locked until the surrounding transaction ends.
func (repo *membershipCardRepository) FindLatestActiveByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.MembershipCard, error) {
	var cardM model.MembershipCardModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("customer_id = ? AND active = ?", customerID, true).
		Order("issued_at DESC").
		First(&cardM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMembershipCardNotFound
		}

		return nil, storeError(err, "failed to find active membership card")
	}

	return toMembershipCardDomain(&cardM), nil
}

// FindByID retrieves a card by its unique ID.
func (repo *membershipCardRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MembershipCard, error) {
	var cardM model.MembershipCardModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&cardM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMembershipCardNotFound
		}

		return nil, storeError(err, "failed to find membership card by ID")
	}

	return toMembershipCardDomain(&cardM), nil
}

// FindByCustomer retrieves every card of a customer, newest first.
func (repo *membershipCardRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.MembershipCard, error) {
	var cardModels []*model.MembershipCardModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("issued_at DESC").
		Find(&cardModels).Error; err != nil {
		return nil, storeError(err, "failed to find membership cards by customer")
	}

	cards := make([]*entity.MembershipCard, 0, len(cardModels))
	for _, cardM := range cardModels {
		cards = append(cards, toMembershipCardDomain(cardM))
	}

	return cards, nil
}

// Create persists a new card. Inserting a second active card for the
// customer is reported as ErrDuplicateActiveCard.
func (repo *membershipCardRepository) Create(ctx context.Context, card *entity.MembershipCard) error {
	cardM := fromMembershipCardDomain(card)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:     []clause.Column{{Name: "customer_id"}},
			TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: "active"}}},
			DoNothing:   true,
		}).
		Create(cardM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateActiveCard
		}

		return storeError(result.Error, "failed to create membership card")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDuplicateActiveCard
	}

	card.ID = cardM.ID
	card.CreatedAt = cardM.CreatedAt
	card.UpdatedAt = cardM.UpdatedAt

	return nil
}

// DeactivateAll marks every card of the customer inactive.
func (repo *membershipCardRepository) DeactivateAll(ctx context.Context, customerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.MembershipCardModel{}).
		Where("customer_id = ? AND active = ?", customerID, true).
		Update("active", false).Error; err != nil {
		return storeError(err, "failed to deactivate membership cards")
	}

	return nil
}
