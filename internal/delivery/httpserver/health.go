package httpserver

import (
	"net/http"

	"authflow/internal/delivery/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness only; it touches no dependency.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
