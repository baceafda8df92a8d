package pubsub

import (
	"encoding/json"

	"membership/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Event type attribute values
const (
	EventTypeSpendCredited = "membership.spend_credited"
	EventTypeCardUpgraded  = "membership.card_upgraded"
)

// outboundMessage is a serialized event ready for a transport.
type outboundMessage struct {
	id         string
	data       []byte
	attributes map[string]string
}

func newOutboundMessage(eventType, requestID, actor string, customerID uuid.UUID, event any) (*outboundMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Build attributes with optional request_id for tracing
	attributes := map[string]string{
		"event_type":  eventType,
		"customer_id": customerID.String(),
	}
	if requestID != "" {
		attributes["request_id"] = requestID
	}
	if actor != "" {
		attributes["actor"] = actor
	}

	return &outboundMessage{
		id:         uuid.NewString(),
		data:       data,
		attributes: attributes,
	}, nil
}

func spendCreditedMessage(event *service.SpendCreditedEvent) (*outboundMessage, error) {
	msg, err := newOutboundMessage(EventTypeSpendCredited, event.RequestID, event.Actor, event.CustomerID, event)
	if err != nil {
		return nil, err
	}
	msg.attributes["order_id"] = event.OrderID.String()

	return msg, nil
}

func cardUpgradedMessage(event *service.CardUpgradedEvent) (*outboundMessage, error) {
	msg, err := newOutboundMessage(EventTypeCardUpgraded, event.RequestID, event.Actor, event.CustomerID, event)
	if err != nil {
		return nil, err
	}
	msg.attributes["card_id"] = event.CardID.String()

	return msg, nil
}
