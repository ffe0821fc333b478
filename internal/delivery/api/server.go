// Package api is the public HTTP delivery of the auth service.
package api

import (
	"log/slog"

	"authflow/config"
	"authflow/internal/delivery"
	"authflow/internal/delivery/api/router"
	"authflow/internal/delivery/httpserver"

	"go.uber.org/fx"
)

// ServerParams holds dependencies for the auth HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) delivery.Delivery {
	return httpserver.New(params.Lc, "auth", params.Cfg, params.Logger, router.NewRouter(params.RouterParams))
}
