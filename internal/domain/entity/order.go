package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order describes a completed order whose spend should be credited.
type Order struct {
	OrderID     uuid.UUID       `json:"order_id"`
	CustomerID  uuid.UUID       `json:"customer_id"`
	Total       decimal.Decimal `json:"total"`        // Precomputed total; zero or negative means "derive from line items".
	FulfilledAt *time.Time      `json:"fulfilled_at"` // Fulfillment/ship date; nil means "now".
	LineItems   []OrderLineItem `json:"line_items"`
}

// OrderLineItem is one line of an order.
type OrderLineItem struct {
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Subtotal returns quantity × unit price.
func (li OrderLineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// SumLineItems adds up the subtotals of all line items.
func SumLineItems(items []OrderLineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Subtotal())
	}

	return sum
}

// OrderSpendSnapshot records that an order's spend was credited. Exactly zero
// or one snapshot exists per order.
type OrderSpendSnapshot struct {
	ID             uuid.UUID       `json:"id"`
	OrderID        uuid.UUID       `json:"order_id"`
	CustomerID     uuid.UUID       `json:"customer_id"`
	TierSnapshot   *TierSnapshot   `json:"tier_snapshot"` // Nil when no card could be issued.
	CreditedAmount decimal.Decimal `json:"credited_amount"`
	CreatedAt      time.Time       `json:"created_at"`
}
