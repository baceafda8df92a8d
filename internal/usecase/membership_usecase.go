package usecase

import (
	"context"
	"time"

	"membership/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TierCatalogUsecase provides read access to the tier catalog
type TierCatalogUsecase interface {
	// ListTiersSortedAscending returns all tiers ordered by yearly spend threshold
	ListTiersSortedAscending(ctx context.Context) ([]*entity.Tier, error)
}

// LoyaltyLedgerUsecase defines the per-customer, per-year spend ledger
type LoyaltyLedgerUsecase interface {
	// FindByCustomerAndYear returns the record for the year, or nil when absent
	FindByCustomerAndYear(ctx context.Context, customerID uuid.UUID, year int) (*entity.LoyaltyRecord, error)

	// FindLatestByCustomer returns the record with the highest year, or nil when absent
	FindLatestByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.LoyaltyRecord, error)

	// Create persists a new record
	Create(ctx context.Context, record *entity.LoyaltyRecord) (*entity.LoyaltyRecord, error)

	// Increment credits amount to the record of the calendar year containing effectiveDate,
	// creating it (seeded with the latest lifetime spend) when it does not exist yet
	Increment(ctx context.Context, customerID uuid.UUID, amount decimal.Decimal, effectiveDate time.Time) (*entity.LoyaltyRecord, error)
}

// SpendSnapshotUsecase guards orders against being credited more than once
type SpendSnapshotUsecase interface {
	// FindByOrderID returns the order's snapshot, or nil when absent
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.OrderSpendSnapshot, error)

	// RecordIfAbsent stores a snapshot for the order unless one exists. It returns the
	// stored snapshot and whether this call created it.
	RecordIfAbsent(ctx context.Context, orderID, customerID uuid.UUID, tierSnapshot *entity.TierSnapshot, amount decimal.Decimal) (*entity.OrderSpendSnapshot, bool, error)
}

// MembershipCardUsecase defines the membership card lifecycle
type MembershipCardUsecase interface {
	// EnsureDefaultCard returns the active card, issuing one at the lowest tier if needed.
	// It returns nil when the catalog is empty.
	EnsureDefaultCard(ctx context.Context, customerID uuid.UUID) (*entity.MembershipCard, error)

	// GetActiveCardWithTier returns the active card and its live tier
	GetActiveCardWithTier(ctx context.Context, customerID uuid.UUID) (*entity.CardWithTier, error)

	// EvaluateUpgrade moves the customer to the highest tier the record qualifies for.
	// It returns the new card on upgrade, otherwise activeCard unchanged.
	EvaluateUpgrade(ctx context.Context, customerID uuid.UUID, record *entity.LoyaltyRecord, activeCard *entity.MembershipCard) (*entity.MembershipCard, error)

	// GetCardByID returns a card, failing with a not found error when it does not exist
	GetCardByID(ctx context.Context, cardID uuid.UUID) (*entity.MembershipCard, error)

	// ListCustomerCards returns all cards of a customer, newest first
	ListCustomerCards(ctx context.Context, customerID uuid.UUID) ([]*entity.MembershipCard, error)
}

// MembershipUsecase orchestrates loyalty accrual and tier upgrades
type MembershipUsecase interface {
	// RecordOrderSpending credits a completed order to the customer's ledger and
	// re-evaluates the customer's tier. It returns nil when nothing was credited.
	RecordOrderSpending(ctx context.Context, order *entity.Order) (*entity.LoyaltyRecord, error)

	// EvaluateMembership re-runs the upgrade evaluation against the latest ledger record
	EvaluateMembership(ctx context.Context, customerID uuid.UUID) (*entity.MembershipCard, error)

	// GetLoyaltyRecord returns the customer's record for year, or the current year when year is nil
	GetLoyaltyRecord(ctx context.Context, customerID uuid.UUID, year *int) (*entity.LoyaltyRecord, error)

	// GetOrderSpending returns the spend snapshot of a credited order
	GetOrderSpending(ctx context.Context, orderID uuid.UUID) (*entity.OrderSpendSnapshot, error)
}
