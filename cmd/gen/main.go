package main

import (
	"membership/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for the membership tables.
func main() {
	models := []any{
		model.TierModel{},
		model.LoyaltyRecordModel{},
		model.MembershipCardModel{},
		model.OrderSpendSnapshotModel{},
		model.OrderItemModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
