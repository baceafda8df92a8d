package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lineItem struct {
	Quantity  int             `json:"quantity" validate:"gte=1"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"gte=0"`
}

type spendingRequest struct {
	CustomerID string          `json:"customer_id" validate:"required,uuid"`
	Total      decimal.Decimal `json:"total" validate:"gte=0"`
	Items      []lineItem      `json:"items" validate:"dive"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   spendingRequest
		wantErr string
	}{
		{
			name: "valid request",
			input: spendingRequest{
				CustomerID: "0b6c3d9e-4f5a-4b1c-9d2e-3f4a5b6c7d8e",
				Total:      decimal.NewFromInt(100),
				Items:      []lineItem{{Quantity: 2, UnitPrice: decimal.NewFromInt(50)}},
			},
		},
		{
			name:    "missing customer",
			input:   spendingRequest{},
			wantErr: "customer_id is required",
		},
		{
			name:    "invalid customer",
			input:   spendingRequest{CustomerID: "abc"},
			wantErr: "customer_id must be a valid UUID",
		},
		{
			name: "negative total",
			input: spendingRequest{
				CustomerID: "0b6c3d9e-4f5a-4b1c-9d2e-3f4a5b6c7d8e",
				Total:      decimal.NewFromInt(-1),
			},
			wantErr: "total must be at least 0",
		},
		{
			name: "invalid line item",
			input: spendingRequest{
				CustomerID: "0b6c3d9e-4f5a-4b1c-9d2e-3f4a5b6c7d8e",
				Items:      []lineItem{{Quantity: 0, UnitPrice: decimal.NewFromInt(10)}},
			},
			wantErr: "items[0].quantity must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
