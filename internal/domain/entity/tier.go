// Package entity contains the core business objects of the project.
package entity

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tier is a membership level in the catalog. A zero threshold means that
// criterion is not evaluated.
type Tier struct {
	ID                     uuid.UUID       `json:"id"`
	Name                   string          `json:"name"`
	YearlySpendThreshold   decimal.Decimal `json:"yearly_spend_threshold"`   // Spend within one calendar year that qualifies for the tier.
	LifetimeSpendThreshold decimal.Decimal `json:"lifetime_spend_threshold"` // Spend since the current card was issued that qualifies for the tier.
	DiscountPercent        decimal.Decimal `json:"discount_percent"`
	BirthdayVoucherValue   decimal.Decimal `json:"birthday_voucher_value"`
	Perks                  string          `json:"perks"` // Free-form description of benefits.
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

// Snapshot freezes the tier terms so later catalog edits do not alter issued cards.
func (t *Tier) Snapshot() *TierSnapshot {
	if t == nil {
		return nil
	}

	return &TierSnapshot{
		TierID:                 t.ID,
		Name:                   t.Name,
		YearlySpendThreshold:   t.YearlySpendThreshold,
		LifetimeSpendThreshold: t.LifetimeSpendThreshold,
		DiscountPercent:        t.DiscountPercent,
		BirthdayVoucherValue:   t.BirthdayVoucherValue,
		Perks:                  t.Perks,
	}
}

// QualifiesWith reports whether the given spend meets either of the tier's
// non-zero thresholds.
func (t *Tier) QualifiesWith(spendThisYear, spentSinceCardIssued decimal.Decimal) bool {
	if t.YearlySpendThreshold.IsPositive() && spendThisYear.GreaterThanOrEqual(t.YearlySpendThreshold) {
		return true
	}

	return t.LifetimeSpendThreshold.IsPositive() && spentSinceCardIssued.GreaterThanOrEqual(t.LifetimeSpendThreshold)
}

// TierSnapshot is the immutable copy of a tier's terms embedded in cards and
// order snapshots.
type TierSnapshot struct {
	TierID                 uuid.UUID       `json:"tier_id"`
	Name                   string          `json:"name"`
	YearlySpendThreshold   decimal.Decimal `json:"yearly_spend_threshold"`
	LifetimeSpendThreshold decimal.Decimal `json:"lifetime_spend_threshold"`
	DiscountPercent        decimal.Decimal `json:"discount_percent"`
	BirthdayVoucherValue   decimal.Decimal `json:"birthday_voucher_value"`
	Perks                  string          `json:"perks"`
}

// RankThreshold is the value tiers are ordered by: the yearly spend
// threshold, or the lifetime threshold when the yearly one is not evaluated.
func (t *Tier) RankThreshold() decimal.Decimal {
	if t.YearlySpendThreshold.IsPositive() {
		return t.YearlySpendThreshold
	}

	return t.LifetimeSpendThreshold
}

// SortTiersAscending orders tiers by rank threshold, keeping the relative
// order of equal thresholds.
func SortTiersAscending(tiers []*Tier) {
	sort.SliceStable(tiers, func(i, j int) bool {
		return tiers[i].RankThreshold().LessThan(tiers[j].RankThreshold())
	})
}
