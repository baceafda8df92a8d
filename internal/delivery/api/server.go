package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"membership/config"
	"membership/internal/delivery"
	apimiddleware "membership/internal/delivery/api/middleware"
	"membership/internal/delivery/api/router"
	"membership/internal/delivery/api/validator"
	"membership/internal/delivery/middleware"
	"membership/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := newEcho(params.Cfg, params.Logger)

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// newEcho builds the engine with the shared middleware chain; routes are
// registered separately.
func newEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Order matters: recover first, request ID before the access log.
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowMethods:  []string{http.MethodGet, http.MethodPost},
		AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderXRequestID},
		ExposeHeaders: []string{echo.HeaderXRequestID},
	}))
	if cfg.HTTP.MaxRequestBodySize != "" {
		e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))
	}
	if timeout := cfg.HTTP.Timeouts.WriteTimeout; timeout > 0 {
		e.Use(echomiddleware.ContextTimeoutWithConfig(echomiddleware.ContextTimeoutConfig{Timeout: timeout}))
	}

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	return e
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
