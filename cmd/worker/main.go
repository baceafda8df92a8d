package main

import (
	"context"
	"log/slog"
	"os"

	"membership/config"
	"membership/internal/delivery"
	"membership/internal/delivery/worker"
	"membership/internal/delivery/worker/handler"
	"membership/internal/domain/constants"
	logs "membership/internal/infra/log"
	"membership/internal/infra/metrics"
	"membership/internal/infra/persistence"
	"membership/internal/infra/pubsub"
	"membership/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.NewRecorder,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			pubsub.NewEventPublisher,
			metrics.NewMembershipMetrics,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMembershipService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewOrderEventProcessor,
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				newKafkaConsumer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// newKafkaConsumer adds the consumer group only when orderEvents.provider is kafka.
func newKafkaConsumer(params worker.KafkaConsumerParams) (delivery.Delivery, error) {
	if params.Cfg.OrderEvents == nil || params.Cfg.OrderEvents.Provider != constants.OrderEventsProviderKafka {
		return idleDelivery{}, nil
	}

	return worker.NewKafkaConsumer(params)
}

// idleDelivery stands in for a disabled transport.
type idleDelivery struct{}

func (idleDelivery) Serve(context.Context) error { return nil }

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
