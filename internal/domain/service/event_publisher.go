package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SpendCreditedEvent is emitted after an order's spend was committed to the ledger
type SpendCreditedEvent struct {
	RequestID     string          `json:"request_id,omitempty"` // For distributed tracing
	Actor         string          `json:"actor,omitempty"`      // Who triggered the credit
	OrderID       uuid.UUID       `json:"order_id"`
	CustomerID    uuid.UUID       `json:"customer_id"`
	Amount        decimal.Decimal `json:"amount"`
	Year          int             `json:"year"`
	SpendThisYear decimal.Decimal `json:"spend_this_year"`
	LifetimeSpend decimal.Decimal `json:"lifetime_spend"`
}

// CardUpgradedEvent is emitted after a customer was moved to a higher tier
type CardUpgradedEvent struct {
	RequestID            string          `json:"request_id,omitempty"`
	Actor                string          `json:"actor,omitempty"`
	CustomerID           uuid.UUID       `json:"customer_id"`
	PreviousCardID       uuid.UUID       `json:"previous_card_id"`
	CardID               uuid.UUID       `json:"card_id"`
	FromTier             string          `json:"from_tier"`
	ToTier               string          `json:"to_tier"`
	LifetimeSpendAtIssue decimal.Decimal `json:"lifetime_spend_at_issue"`
}

// EventPublisher defines the interface for publishing membership events to a message queue
type EventPublisher interface {
	// PublishSpendCredited publishes a spend credited event
	PublishSpendCredited(ctx context.Context, event *SpendCreditedEvent) error

	// PublishCardUpgraded publishes a card upgraded event
	PublishCardUpgraded(ctx context.Context, event *CardUpgradedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
