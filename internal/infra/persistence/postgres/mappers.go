package postgres

import (
	"membership/internal/domain/entity"
	"membership/internal/infra/persistence/model"

	"gorm.io/datatypes"
)

// --- Mapper Functions ---

// toTierDomain converts a GORM TierModel to a domain Tier entity.
func toTierDomain(data *model.TierModel) *entity.Tier {
	if data == nil {
		return nil
	}

	return &entity.Tier{
		ID:                     data.ID,
		Name:                   data.Name,
		YearlySpendThreshold:   data.YearlySpendThreshold,
		LifetimeSpendThreshold: data.LifetimeSpendThreshold,
		DiscountPercent:        data.DiscountPercent,
		BirthdayVoucherValue:   data.BirthdayVoucherValue,
		Perks:                  data.Perks,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}

// toTierSnapshotDomain converts the stored JSON snapshot to the domain type.
func toTierSnapshotDomain(data *model.TierSnapshotData) *entity.TierSnapshot {
	if data == nil {
		return nil
	}

	return &entity.TierSnapshot{
		TierID:                 data.TierID,
		Name:                   data.Name,
		YearlySpendThreshold:   data.YearlySpendThreshold,
		LifetimeSpendThreshold: data.LifetimeSpendThreshold,
		DiscountPercent:        data.DiscountPercent,
		BirthdayVoucherValue:   data.BirthdayVoucherValue,
		Perks:                  data.Perks,
	}
}

// fromTierSnapshotDomain converts a domain snapshot to its stored JSON form.
func fromTierSnapshotDomain(data *entity.TierSnapshot) datatypes.JSONType[*model.TierSnapshotData] {
	if data == nil {
		return datatypes.NewJSONType[*model.TierSnapshotData](nil)
	}

	return datatypes.NewJSONType(&model.TierSnapshotData{
		TierID:                 data.TierID,
		Name:                   data.Name,
		YearlySpendThreshold:   data.YearlySpendThreshold,
		LifetimeSpendThreshold: data.LifetimeSpendThreshold,
		DiscountPercent:        data.DiscountPercent,
		BirthdayVoucherValue:   data.BirthdayVoucherValue,
		Perks:                  data.Perks,
	})
}

// toLoyaltyRecordDomain converts a GORM LoyaltyRecordModel to a domain LoyaltyRecord entity.
func toLoyaltyRecordDomain(data *model.LoyaltyRecordModel) *entity.LoyaltyRecord {
	if data == nil {
		return nil
	}

	return &entity.LoyaltyRecord{
		ID:            data.ID,
		CustomerID:    data.CustomerID,
		Year:          data.Year,
		SpendThisYear: data.SpendThisYear,
		LifetimeSpend: data.LifetimeSpend,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromLoyaltyRecordDomain converts a domain LoyaltyRecord entity to a GORM LoyaltyRecordModel.
func fromLoyaltyRecordDomain(data *entity.LoyaltyRecord) *model.LoyaltyRecordModel {
	if data == nil {
		return nil
	}

	return &model.LoyaltyRecordModel{
		ID:            data.ID,
		CustomerID:    data.CustomerID,
		Year:          data.Year,
		SpendThisYear: data.SpendThisYear,
		LifetimeSpend: data.LifetimeSpend,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// toMembershipCardDomain converts a GORM MembershipCardModel to a domain MembershipCard entity.
func toMembershipCardDomain(data *model.MembershipCardModel) *entity.MembershipCard {
	if data == nil {
		return nil
	}

	return &entity.MembershipCard{
		ID:                   data.ID,
		CustomerID:           data.CustomerID,
		TierID:               data.TierID,
		IssuedAt:             data.IssuedAt,
		ExpiresAt:            data.ExpiresAt,
		Active:               data.Active,
		TierSnapshot:         toTierSnapshotDomain(data.TierSnapshot.Data()),
		LifetimeSpendAtIssue: data.LifetimeSpendAtIssue,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromMembershipCardDomain converts a domain MembershipCard entity to a GORM MembershipCardModel.
func fromMembershipCardDomain(data *entity.MembershipCard) *model.MembershipCardModel {
	if data == nil {
		return nil
	}

	return &model.MembershipCardModel{
		ID:                   data.ID,
		CustomerID:           data.CustomerID,
		TierID:               data.TierID,
		IssuedAt:             data.IssuedAt,
		ExpiresAt:            data.ExpiresAt,
		Active:               data.Active,
		TierSnapshot:         fromTierSnapshotDomain(data.TierSnapshot),
		LifetimeSpendAtIssue: data.LifetimeSpendAtIssue,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// toSpendSnapshotDomain converts a GORM OrderSpendSnapshotModel to a domain OrderSpendSnapshot entity.
func toSpendSnapshotDomain(data *model.OrderSpendSnapshotModel) *entity.OrderSpendSnapshot {
	if data == nil {
		return nil
	}

	return &entity.OrderSpendSnapshot{
		ID:             data.ID,
		OrderID:        data.OrderID,
		CustomerID:     data.CustomerID,
		TierSnapshot:   toTierSnapshotDomain(data.TierSnapshot.Data()),
		CreditedAmount: data.CreditedAmount,
		CreatedAt:      data.CreatedAt,
	}
}

// fromSpendSnapshotDomain converts a domain OrderSpendSnapshot entity to a GORM OrderSpendSnapshotModel.
func fromSpendSnapshotDomain(data *entity.OrderSpendSnapshot) *model.OrderSpendSnapshotModel {
	if data == nil {
		return nil
	}

	return &model.OrderSpendSnapshotModel{
		ID:             data.ID,
		OrderID:        data.OrderID,
		CustomerID:     data.CustomerID,
		TierSnapshot:   fromTierSnapshotDomain(data.TierSnapshot),
		CreditedAmount: data.CreditedAmount,
		CreatedAt:      data.CreatedAt,
	}
}
