package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthCheck handles the health check endpoint
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// Root answers on / so a browser hitting the API gets a sign of life
func Root(c echo.Context) error {
	return c.String(http.StatusOK, "Property listing API is running")
}
