package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoyaltyRecordModel is the GORM-specific struct for the 'loyalty_records' table.
// One row per customer and calendar year.
type LoyaltyRecordModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_loyalty_customer_year,priority:1"`
	Year          int             `gorm:"not null;uniqueIndex:idx_loyalty_customer_year,priority:2"`
	SpendThisYear decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	LifetimeSpend decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (LoyaltyRecordModel) TableName() string {
	return "loyalty_records"
}
