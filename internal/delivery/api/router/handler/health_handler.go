package handler

import (
	"net/http"

	"membership/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
