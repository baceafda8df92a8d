package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "membership/internal/delivery/context"
	"membership/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/local/subscriptions/" + DefaultTopicID + "-sub"
	localHTTPTimeout  = 10 * time.Second
)

// localHTTPPublisher implements EventPublisher by sending HTTP POST requests
// to a local endpoint, simulating Pub/Sub push behavior for development
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushMessage is the envelope Google Pub/Sub posts to push endpoints
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: localHTTPTimeout,
		},
		logger: logger,
	}
}

// PublishSpendCredited posts a spend credited event to the local endpoint
func (p *localHTTPPublisher) PublishSpendCredited(ctx context.Context, event *service.SpendCreditedEvent) error {
	msg, err := spendCreditedMessage(event)
	if err != nil {
		return err
	}

	return p.publish(ctx, msg)
}

// PublishCardUpgraded posts a card upgraded event to the local endpoint
func (p *localHTTPPublisher) PublishCardUpgraded(ctx context.Context, event *service.CardUpgradedEvent) error {
	msg, err := cardUpgradedMessage(event)
	if err != nil {
		return err
	}

	return p.publish(ctx, msg)
}

// publish posts msg in the push envelope the worker's push endpoint expects,
// so the local provider exercises the same decode path as Google push.
func (p *localHTTPPublisher) publish(ctx context.Context, msg *outboundMessage) error {
	pushMsg := PushMessage{Subscription: localSubscription}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	pushMsg.Message.MessageID = msg.id
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = msg.attributes

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID := msg.attributes["request_id"]; requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "post %s", msg.attributes["event_type"])
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("endpoint returned non-success status: %d", resp.StatusCode)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("[LocalPubSub] Event published",
		slog.String("endpoint", p.endpoint),
		slog.String("event_type", msg.attributes["event_type"]),
		slog.String("message_id", msg.id),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
