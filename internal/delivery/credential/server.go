// Package credential is the internal HTTP delivery of the credential service.
package credential

import (
	"log/slog"

	"authflow/config"
	"authflow/internal/delivery"
	"authflow/internal/delivery/credential/router"
	"authflow/internal/delivery/httpserver"

	"go.uber.org/fx"
)

type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) delivery.Delivery {
	return httpserver.New(params.Lc, "users", params.Cfg, params.Logger, router.NewRouter(params.RouterParams))
}
