package repository

import (
	"context"

	"membership/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for membership card persistence.
var (
	// ErrMembershipCardNotFound is returned when a card is not found.
	ErrMembershipCardNotFound = errors.New("membership card not found")
	// ErrDuplicateActiveCard is returned when a customer already holds an active card.
	ErrDuplicateActiveCard = errors.New("customer already has an active membership card")
)

// MembershipCardRepository defines the interface for membership card operations.
type MembershipCardRepository interface {
	// FindLatestActiveByCustomer retrieves the most recently issued active card.
	FindLatestActiveByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.MembershipCard, error)

	// FindByID retrieves a card by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MembershipCard, error)

	// FindByCustomer retrieves every card of a customer, newest first.
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.MembershipCard, error)

	// Create persists a new card.
	Create(ctx context.Context, card *entity.MembershipCard) error

	// DeactivateAll marks every card of the customer inactive.
	DeactivateAll(ctx context.Context, customerID uuid.UUID) error
}
