package handler

import (
	"net/http"
	"strings"

	"github.com/Gnanasekark/Online-property-listing/pkg/logger"
	"github.com/Gnanasekark/Online-property-listing/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Geocode resolves ?q= to coordinates for the map picker
func (h *Handler) Geocode(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "q is required"})
	}
	if h.places == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "geocoding is disabled"})
	}

	place, err := h.places.Search(c.Request().Context(), query)
	if err != nil {
		logger.FromEcho(c).Warn("Geocoding failed", zap.String("query", query), zap.Error(err))
		prometheus.GeocodeCounter.WithLabelValues("error").Inc()
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "geocoding failed"})
	}
	if place == nil {
		prometheus.GeocodeCounter.WithLabelValues("miss").Inc()
		return c.JSON(http.StatusNotFound, echo.Map{"error": "location not found"})
	}

	prometheus.GeocodeCounter.WithLabelValues("hit").Inc()
	return c.JSON(http.StatusOK, place)
}
