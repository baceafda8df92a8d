package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"membership/config"
	"membership/internal/delivery"
	"membership/internal/delivery/middleware"
	"membership/internal/delivery/worker/handler"
	"membership/internal/domain/constants"
	"membership/internal/domain/lifecycle"
	"membership/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
	Metrics     *metrics.Recorder `optional:"true"`
}

// NewServer creates a new worker HTTP server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := newEcho(params)

	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// PushPath receives Pub/Sub push deliveries.
const PushPath = "/push"

// eventSource names where order events come from, for the health payload.
func eventSource(cfg *config.Config) string {
	if cfg.OrderEvents != nil && cfg.OrderEvents.Provider == constants.OrderEventsProviderKafka {
		return constants.OrderEventsProviderKafka
	}

	return constants.OrderEventsProviderPubSub
}

// newEcho serves health and metrics, plus the push endpoint when events are
// not consumed from Kafka.
func newEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)

	source := eventSource(params.Cfg)
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "source": source})
	})

	if params.Metrics != nil && params.Cfg.Metrics != nil && params.Cfg.Metrics.Enabled {
		e.GET(params.Cfg.Metrics.Path, echo.WrapHandler(params.Metrics.Handler()))
	}

	if source != constants.OrderEventsProviderKafka {
		push := e.Group(PushPath)
		if limit := params.Cfg.HTTP.MaxRequestBodySize; limit != "" {
			push.Use(echomiddleware.BodyLimit(limit))
		}
		push.POST("", params.PushHandler.HandlePush)
	}

	return e
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting Worker HTTP server", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the worker server
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
