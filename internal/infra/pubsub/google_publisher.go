package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "membership/internal/delivery/context"
	"membership/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher publishes membership events to a Google Cloud Pub/Sub
// topic. Events are ordered per customer so subscribers see a credit before
// the upgrade it caused.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and fails fast when topicID does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger.With(slog.String("topic_id", topicID)),
	}, nil
}

func (p *googlePubSubPublisher) PublishSpendCredited(ctx context.Context, event *service.SpendCreditedEvent) error {
	msg, err := spendCreditedMessage(event)
	if err != nil {
		return err
	}

	return p.publish(ctx, msg)
}

func (p *googlePubSubPublisher) PublishCardUpgraded(ctx context.Context, event *service.CardUpgradedEvent) error {
	msg, err := cardUpgradedMessage(event)
	if err != nil {
		return err
	}

	return p.publish(ctx, msg)
}

func (p *googlePubSubPublisher) publish(ctx context.Context, msg *outboundMessage) error {
	orderingKey := msg.attributes["customer_id"]
	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        msg.data,
		Attributes:  msg.attributes,
		OrderingKey: orderingKey,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		// A failed ordered publish pauses the key until it is resumed.
		p.publisher.ResumePublish(orderingKey)

		return errors.Wrapf(err, "publish %s", msg.attributes["event_type"])
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("[GooglePubSub] Event published",
		slog.String("event_type", msg.attributes["event_type"]),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
