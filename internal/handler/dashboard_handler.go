package handler

import (
	"net/http"

	"github.com/Gnanasekark/Online-property-listing/internal/middleware"
	"github.com/Gnanasekark/Online-property-listing/internal/model"
	"github.com/Gnanasekark/Online-property-listing/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Dashboard summarises the caller's listings and enquiries
func (h *Handler) Dashboard(c echo.Context) error {
	log := logger.FromEcho(c)
	ctx := c.Request().Context()
	ownerID := middleware.ClaimsFromContext(c).UserID

	properties, err := h.properties.CountByOwner(ctx, ownerID)
	if err != nil {
		log.Error("Failed to count properties", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load dashboard"})
	}
	enquiries, err := h.messages.CountByOwner(ctx, ownerID, "")
	if err != nil {
		log.Error("Failed to count enquiries", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load dashboard"})
	}
	unread, err := h.messages.CountByOwner(ctx, ownerID, model.StatusUnread)
	if err != nil {
		log.Error("Failed to count unread enquiries", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load dashboard"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"totalProperties": properties,
		"totalEnquiries":  enquiries,
		"unreadEnquiries": unread,
	})
}
