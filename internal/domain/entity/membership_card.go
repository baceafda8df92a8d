package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MembershipCard is the customer-facing membership. A customer has at most one
// active card; superseded cards are kept with Active=false.
type MembershipCard struct {
	ID                   uuid.UUID       `json:"id"`
	CustomerID           uuid.UUID       `json:"customer_id"`
	TierID               uuid.UUID       `json:"tier_id"`
	IssuedAt             time.Time       `json:"issued_at"`
	ExpiresAt            time.Time       `json:"expires_at"`
	Active               bool            `json:"active"`
	TierSnapshot         *TierSnapshot   `json:"tier_snapshot"`           // Terms of the tier at issue time.
	LifetimeSpendAtIssue decimal.Decimal `json:"lifetime_spend_at_issue"` // Baseline for lifetime-threshold upgrades.
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// CardWithTier pairs an active card with the live catalog entry of its tier.
// Tier is nil when the tier has since been removed from the catalog.
type CardWithTier struct {
	Card *MembershipCard `json:"card"`
	Tier *Tier           `json:"tier"`
}
