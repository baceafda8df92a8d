package postgres

import (
	"context"

	"membership/internal/domain/entity"
	"membership/internal/domain/repository"
	"membership/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderRepository reads order line items owned by the order service.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// ListLineItems returns the line items of an order.
func (repo *orderRepository) ListLineItems(ctx context.Context, orderID uuid.UUID) ([]entity.OrderLineItem, error) {
	var itemModels []*model.OrderItemModel

	if err := repo.db.WithContext(ctx).
		Select("quantity", "unit_price").
		Where("order_id = ?", orderID).
		Find(&itemModels).Error; err != nil {
		return nil, storeError(err, "failed to list order line items")
	}

	items := make([]entity.OrderLineItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, entity.OrderLineItem{
			Quantity:  itemM.Quantity,
			UnitPrice: itemM.UnitPrice,
		})
	}

	return items, nil
}
