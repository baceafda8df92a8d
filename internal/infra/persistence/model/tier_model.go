package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TierModel is the GORM-specific struct for the 'membership_tiers' table.
type TierModel struct {
	ID                     uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name                   string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	YearlySpendThreshold   decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0;index"`
	LifetimeSpendThreshold decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	DiscountPercent        decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	BirthdayVoucherValue   decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	Perks                  string          `gorm:"type:text"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (TierModel) TableName() string {
	return "membership_tiers"
}

// TierSnapshotData is the JSON document stored for a frozen tier.
type TierSnapshotData struct {
	TierID                 uuid.UUID       `json:"tier_id"`
	Name                   string          `json:"name"`
	YearlySpendThreshold   decimal.Decimal `json:"yearly_spend_threshold"`
	LifetimeSpendThreshold decimal.Decimal `json:"lifetime_spend_threshold"`
	DiscountPercent        decimal.Decimal `json:"discount_percent"`
	BirthdayVoucherValue   decimal.Decimal `json:"birthday_voucher_value"`
	Perks                  string          `json:"perks"`
}
