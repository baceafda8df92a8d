package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// MembershipCardModel is the GORM-specific struct for the 'membership_cards' table.
// The partial unique index keeps at most one active card per customer.
type MembershipCardModel struct {
	ID                   uuid.UUID                             `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID           uuid.UUID                             `gorm:"type:uuid;not null;index;uniqueIndex:idx_membership_cards_one_active,where:active"`
	TierID               uuid.UUID                             `gorm:"type:uuid;not null;index"`
	IssuedAt             time.Time                             `gorm:"not null"`
	ExpiresAt            time.Time                             `gorm:"not null"`
	Active               bool                                  `gorm:"not null;default:true"`
	TierSnapshot         datatypes.JSONType[*TierSnapshotData] `gorm:"type:jsonb"`
	LifetimeSpendAtIssue decimal.Decimal                       `gorm:"type:numeric(18,2);not null;default:0"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (MembershipCardModel) TableName() string {
	return "membership_cards"
}
