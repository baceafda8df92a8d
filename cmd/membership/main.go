package main

import (
	"context"
	"log/slog"
	"os"

	"membership/config"
	"membership/internal/delivery"
	"membership/internal/delivery/api"
	"membership/internal/delivery/api/middleware"
	"membership/internal/delivery/api/router/handler"
	"membership/internal/infra/auth"
	logs "membership/internal/infra/log"
	"membership/internal/infra/metrics"
	"membership/internal/infra/persistence"
	"membership/internal/infra/pubsub"
	"membership/internal/infra/qrcode"
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
		injectMiddleware(),
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
			auth.NewJWTService,
			qrcode.NewQRCodeServiceFromConfig,
			pubsub.NewEventPublisher,
			metrics.NewMembershipMetrics,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTierCatalog,
			impl.NewMembershipCardService,
			impl.NewMembershipService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewTierHandler,
			handler.NewSpendingHandler,
			handler.NewMembershipHandler,
			handler.NewCardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

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
