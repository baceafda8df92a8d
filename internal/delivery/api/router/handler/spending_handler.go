package handler

import (
	"log/slog"
	"net/http"
	"time"

	"membership/internal/delivery/api/response"
	"membership/internal/domain/entity"
	"membership/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// SpendingHandlerParams holds dependencies for SpendingHandler, injected by Fx.
type SpendingHandlerParams struct {
	fx.In

	MembershipUC usecase.MembershipUsecase
	Logger       *slog.Logger
}

// SpendingHandler credits completed orders to the loyalty ledger
type SpendingHandler struct {
	membershipUC usecase.MembershipUsecase
	logger       *slog.Logger
}

// NewSpendingHandler is the constructor for SpendingHandler
func NewSpendingHandler(params SpendingHandlerParams) *SpendingHandler {
	return &SpendingHandler{
		membershipUC: params.MembershipUC,
		logger:       params.Logger,
	}
}

// RecordSpendingRequest represents the request body for crediting an order.
// A zero total means the amount is derived from the line items.
type RecordSpendingRequest struct {
	CustomerID  string            `json:"customer_id" validate:"required,uuid"`
	Total       decimal.Decimal   `json:"total" validate:"gte=0"`
	FulfilledAt *time.Time        `json:"fulfilled_at"`
	Items       []LineItemRequest `json:"items" validate:"dive"`
}

// LineItemRequest is one order line in RecordSpendingRequest
type LineItemRequest struct {
	Quantity  int             `json:"quantity" validate:"gte=0"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"gte=0"`
}

func (req *RecordSpendingRequest) toOrder(orderID uuid.UUID) *entity.Order {
	order := &entity.Order{
		OrderID:     orderID,
		CustomerID:  uuid.MustParse(req.CustomerID),
		Total:       req.Total,
		FulfilledAt: req.FulfilledAt,
	}
	for _, item := range req.Items {
		order.LineItems = append(order.LineItems, entity.OrderLineItem{
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return order
}

// RecordOrderSpending credits the order and returns the updated ledger record,
// or null when the order was skipped or already credited.
func (h *SpendingHandler) RecordOrderSpending(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req RecordSpendingRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid spending input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	record, err := h.membershipUC.RecordOrderSpending(c.Request().Context(), req.toOrder(orderID))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record)
}

// GetOrderSpending returns the spend snapshot of a credited order
func (h *SpendingHandler) GetOrderSpending(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	snapshot, err := h.membershipUC.GetOrderSpending(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot)
}
