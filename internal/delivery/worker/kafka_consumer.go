package worker

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"membership/config"
	"membership/internal/delivery"
	deliverycontext "membership/internal/delivery/context"
	"membership/internal/delivery/worker/handler"
	"membership/internal/domain/constants"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

const (
	defaultRetryBackoff = time.Second
	maxRetryBackoff     = 30 * time.Second
)

// MessageReader is the subset of *kafka.Reader the consumer needs
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaConsumer struct {
	reader       MessageReader
	processor    *handler.OrderEventProcessor
	logger       *slog.Logger
	retryBackoff time.Duration
	started      atomic.Bool
	stopOnce     sync.Once
	stopCh       chan struct{}
	done         chan struct{}
}

// KafkaConsumerParams holds dependencies for the Kafka consumer
type KafkaConsumerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Processor *handler.OrderEventProcessor
}

// NewKafkaConsumer creates a consumer-group delivery for order-completion events
func NewKafkaConsumer(params KafkaConsumerParams) (delivery.Delivery, error) {
	if params.Cfg.OrderEvents == nil {
		return nil, errors.New("orderEvents config is required for the kafka consumer")
	}

	kafkaCfg := params.Cfg.OrderEvents.Kafka
	if len(kafkaCfg.Brokers) == 0 || kafkaCfg.Topic == "" || kafkaCfg.GroupID == "" {
		return nil, errors.New("orderEvents.kafka requires brokers, topic and groupId")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  kafkaCfg.Brokers,
		Topic:    kafkaCfg.Topic,
		GroupID:  kafkaCfg.GroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})

	consumer := newKafkaConsumer(reader, params.Processor, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: consumer.stop,
	})

	return consumer, nil
}

func newKafkaConsumer(reader MessageReader, processor *handler.OrderEventProcessor, logger *slog.Logger) *kafkaConsumer {
	return &kafkaConsumer{
		reader:       reader,
		processor:    processor,
		logger:       logger,
		retryBackoff: defaultRetryBackoff,
		stopCh:       make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Serve consumes until stopped. Offsets are committed only after an event was
// credited or found unprocessable, so a crash redelivers from the last commit.
func (k *kafkaConsumer) Serve(ctx context.Context) error {
	if !k.started.CompareAndSwap(false, true) {
		return errors.New("kafka consumer already started")
	}
	defer close(k.done)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-k.stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	k.logger.Info("Starting Kafka order event consumer")

	for {
		msg, err := k.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			k.logger.Error("[Worker] Failed to fetch message", slog.Any("error", err))
			if !k.sleep(ctx, k.retryBackoff) {
				return nil
			}

			continue
		}

		if !k.handle(ctx, msg) {
			return nil
		}

		if err := k.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			k.logger.Error("[Worker] Failed to commit message",
				slog.Int64("offset", msg.Offset),
				slog.Any("error", err),
			)
		}
	}
}

// handle processes msg, retrying retryable failures with backoff. It returns
// false when the consumer was stopped before msg was settled.
func (k *kafkaConsumer) handle(ctx context.Context, msg kafka.Message) bool {
	backoff := k.retryBackoff
	ctx = deliverycontext.WithActor(ctx, deliverycontext.WorkerActor(constants.OrderEventsProviderKafka))
	for {
		err := k.processor.Process(ctx, msg.Value, requestIDHeader(msg))
		if err == nil {
			return true
		}

		retryable := handler.IsRetryableError(err)
		k.logger.Error("[Worker] Failed to process order completed event",
			slog.Int("partition", msg.Partition),
			slog.Int64("offset", msg.Offset),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if !retryable {
			return true
		}

		if !k.sleep(ctx, backoff) {
			return false
		}
		backoff = min(backoff*2, maxRetryBackoff)
	}
}

func (k *kafkaConsumer) sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func requestIDHeader(msg kafka.Message) string {
	for _, header := range msg.Headers {
		if header.Key == "request_id" {
			return string(header.Value)
		}
	}

	return ""
}

func (k *kafkaConsumer) stop(ctx context.Context) error {
	k.logger.Info("Shutting down Kafka order event consumer")

	k.stopOnce.Do(func() { close(k.stopCh) })
	if k.started.Load() {
		select {
		case <-k.done:
		case <-ctx.Done():
		}
	}

	return errors.WithStack(k.reader.Close())
}
