package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoyaltyRecord accumulates a customer's spend for one calendar year.
// There is at most one record per (CustomerID, Year).
type LoyaltyRecord struct {
	ID            uuid.UUID       `json:"id"`
	CustomerID    uuid.UUID       `json:"customer_id"`
	Year          int             `json:"year"`
	SpendThisYear decimal.Decimal `json:"spend_this_year"` // Only ever incremented within the year.
	LifetimeSpend decimal.Decimal `json:"lifetime_spend"`  // Carried over from the previous year's record, never reset.
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
