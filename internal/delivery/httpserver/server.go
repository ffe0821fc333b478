// Package httpserver builds the echo server both services run on.
package httpserver

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"authflow/config"
	"authflow/internal/delivery"
	"authflow/internal/delivery/middleware"
	"authflow/internal/delivery/validator"
	"authflow/internal/domain/lifecycle"
	"authflow/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// HealthPath is excluded from access logs.
const HealthPath = "/health"

// Routes registers a service's handlers on the echo instance.
type Routes interface {
	RegisterRoutes(e *echo.Echo)
}

type server struct {
	name   string
	cfg    *config.Config
	logger *slog.Logger
	echo   *echo.Echo
}

// NewEcho returns an echo instance with the shared middleware chain, error
// handler and validator installed.
func NewEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Recover first, then request ID so the access log carries it.
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg, HealthPath).Handle)
	if cfg.HTTP.MaxRequestBodySize != "" {
		e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))
	}

	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	return e
}

// New builds a delivery for one service and registers its graceful shutdown.
func New(lc fx.Lifecycle, name string, cfg *config.Config, logger *slog.Logger, routes Routes) delivery.Delivery {
	e := NewEcho(cfg, logger)
	routes.RegisterRoutes(e)

	srv := &server{
		name:   name,
		cfg:    cfg,
		logger: logger.With(slog.String("server", name)),
		echo:   e,
	}

	lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv
}

func (s *server) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("host_port", hostPort))

	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.echo.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *server) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
