package repository

import (
	"context"

	"membership/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderRepository exposes the order line items needed to price an order.
type OrderRepository interface {
	// ListLineItems returns the line items of an order, empty when it has none.
	ListLineItems(ctx context.Context, orderID uuid.UUID) ([]entity.OrderLineItem, error)
}
