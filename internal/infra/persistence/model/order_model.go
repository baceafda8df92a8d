package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderSpendSnapshotModel is the GORM-specific struct for the 'order_spend_snapshots' table.
// The unique order_id index is the idempotency guard for crediting.
type OrderSpendSnapshotModel struct {
	ID             uuid.UUID                             `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID        uuid.UUID                             `gorm:"type:uuid;not null;uniqueIndex"`
	CustomerID     uuid.UUID                             `gorm:"type:uuid;not null;index"`
	TierSnapshot   datatypes.JSONType[*TierSnapshotData] `gorm:"type:jsonb"`
	CreditedAmount decimal.Decimal                       `gorm:"type:numeric(18,2);not null"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderSpendSnapshotModel) TableName() string {
	return "order_spend_snapshots"
}

// OrderItemModel maps the 'order_items' table owned by the order service.
// It is read-only here.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(18,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
