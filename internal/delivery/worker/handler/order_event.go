package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "membership/internal/delivery/context"
	"membership/internal/domain/entity"
	domainerrors "membership/internal/domain/errors"
	"membership/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderCompletedEvent is published by the order service when an order is fulfilled
type OrderCompletedEvent struct {
	RequestID   string           `json:"request_id,omitempty"`
	OrderID     string           `json:"order_id"`
	CustomerID  string           `json:"customer_id"`
	Total       decimal.Decimal  `json:"total"`
	FulfilledAt *time.Time       `json:"fulfilled_at,omitempty"`
	Items       []OrderEventItem `json:"items,omitempty"`
}

// OrderEventItem is one order line carried inline with the event
type OrderEventItem struct {
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func (e *OrderCompletedEvent) toOrder() (*entity.Order, error) {
	orderID, err := uuid.Parse(e.OrderID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid order_id")
	}

	customerID, err := uuid.Parse(e.CustomerID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid customer_id")
	}

	order := &entity.Order{
		OrderID:     orderID,
		CustomerID:  customerID,
		Total:       e.Total,
		FulfilledAt: e.FulfilledAt,
	}
	for _, item := range e.Items {
		order.LineItems = append(order.LineItems, entity.OrderLineItem{
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return order, nil
}

// retryableError wraps an error to indicate the event should be redelivered
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryableError reports whether processing failed in a way redelivery may fix
func IsRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// OrderEventProcessor credits order-completion events to the loyalty ledger.
// It is shared by every inbound transport.
type OrderEventProcessor struct {
	membershipUC usecase.MembershipUsecase
	logger       *slog.Logger
}

// OrderEventProcessorParams holds dependencies for the OrderEventProcessor
type OrderEventProcessorParams struct {
	fx.In

	MembershipUC usecase.MembershipUsecase
	Logger       *slog.Logger
}

// NewOrderEventProcessor creates the processor
func NewOrderEventProcessor(params OrderEventProcessorParams) *OrderEventProcessor {
	return &OrderEventProcessor{
		membershipUC: params.MembershipUC,
		logger:       params.Logger,
	}
}

// Process decodes and credits one event. Malformed payloads and rejected orders
// return a non-retryable error; store failures return a retryable one.
func (p *OrderEventProcessor) Process(ctx context.Context, data []byte, requestID string) error {
	var event OrderCompletedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return errors.Wrap(err, "failed to parse order completed event")
	}

	// Priority: transport attribute > event field > context > new UUID
	if requestID == "" {
		requestID = event.RequestID
	}
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}

	reqLogger := p.logger.With(slog.String("request_id", requestID))
	if actor := deliverycontext.GetActorFromContext(ctx); actor != "" {
		reqLogger = reqLogger.With(slog.String("actor", actor))
	}
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	order, err := event.toOrder()
	if err != nil {
		return err
	}

	reqLogger.Info("[Worker] Processing order completed event",
		slog.String("order_id", event.OrderID),
		slog.String("customer_id", event.CustomerID),
	)

	record, err := p.membershipUC.RecordOrderSpending(ctx, order)
	if err != nil {
		if isClientError(err) {
			return err
		}

		return newRetryableError(err)
	}

	if record == nil {
		reqLogger.Info("[Worker] Order credited nothing", slog.String("order_id", event.OrderID))

		return nil
	}

	reqLogger.Info("[Worker] Order spending credited",
		slog.String("order_id", event.OrderID),
		slog.Int("year", record.Year),
		slog.String("spend_this_year", record.SpendThisYear.String()),
	)

	return nil
}

func isClientError(err error) bool {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.HTTPCode() < http.StatusInternalServerError
}
