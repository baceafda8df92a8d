package pubsub

import (
	"context"
	"log/slog"

	"membership/config"
	"membership/internal/domain/constants"
	"membership/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher is a no-op implementation when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishSpendCredited(_ context.Context, event *service.SpendCreditedEvent) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("event_type", EventTypeSpendCredited),
		slog.String("order_id", event.OrderID.String()),
	)

	return nil
}

func (p *noopPublisher) PublishCardUpgraded(_ context.Context, event *service.CardUpgradedEvent) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("event_type", EventTypeCardUpgraded),
		slog.String("card_id", event.CardID.String()),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// DefaultTopicID is used when the google provider is configured without a topic.
const DefaultTopicID = "membership-events"

// NewEventPublisher creates the configured EventPublisher and closes it on shutdown
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// newPublisher picks the implementation for cfg. An absent provider disables
// publishing rather than failing startup.
func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		topicID := cfg.TopicID
		if topicID == "" {
			topicID = DefaultTopicID
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", topicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, topicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
