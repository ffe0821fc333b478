// Package router wires the credential service's routes.
package router

import (
	"authflow/internal/delivery/credential/router/handler"
	"authflow/internal/delivery/httpserver"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CredentialHandler *handler.CredentialHandler
}

type router struct {
	credentialHandler *handler.CredentialHandler
}

func NewRouter(params RouterParams) httpserver.Routes {
	return &router{
		credentialHandler: params.CredentialHandler,
	}
}

func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET(httpserver.HealthPath, httpserver.HealthCheck)

	usersGroup := e.Group("/users")
	{
		usersGroup.POST("/verify", r.credentialHandler.Verify)
	}
}
