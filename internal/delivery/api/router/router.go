// Package router wires the auth service's routes.
package router

import (
	"authflow/internal/delivery/api/router/handler"
	"authflow/internal/delivery/httpserver"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler *handler.AuthHandler
}

type router struct {
	authHandler *handler.AuthHandler
}

// NewRouter is the constructor for the auth service router.
func NewRouter(params RouterParams) httpserver.Routes {
	return &router{
		authHandler: params.AuthHandler,
	}
}

func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET(httpserver.HealthPath, httpserver.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/public-key", r.authHandler.PublicKey)
	}
}
