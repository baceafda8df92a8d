package repository

import (
	"context"
	"time"

	"membership/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Domain-specific errors for loyalty ledger persistence.
var (
	// ErrLoyaltyRecordNotFound is returned when no record matches the query.
	ErrLoyaltyRecordNotFound = errors.New("loyalty record not found")
	// ErrDuplicateLoyaltyRecord is returned when a record already exists for (customer, year).
	ErrDuplicateLoyaltyRecord = errors.New("loyalty record already exists for customer and year")
)

// LoyaltyRepository defines the interface for loyalty ledger operations.
type LoyaltyRepository interface {
	// FindByCustomerAndYear retrieves the record for a customer's calendar year.
	FindByCustomerAndYear(ctx context.Context, customerID uuid.UUID, year int) (*entity.LoyaltyRecord, error)

	// FindLatestByCustomer retrieves the customer's record with the highest year.
	FindLatestByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.LoyaltyRecord, error)

	// Create persists a new record.
	Create(ctx context.Context, record *entity.LoyaltyRecord) error

	// Update overwrites the spend totals of an existing record.
	Update(ctx context.Context, record *entity.LoyaltyRecord) error

	// IncrementSpend atomically adds amount to both spend totals of a record
	// and returns the updated row.
	IncrementSpend(ctx context.Context, id uuid.UUID, amount decimal.Decimal, updatedAt time.Time) (*entity.LoyaltyRecord, error)
}
