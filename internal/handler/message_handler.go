package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Gnanasekark/Online-property-listing/internal/middleware"
	"github.com/Gnanasekark/Online-property-listing/internal/model"
	"github.com/Gnanasekark/Online-property-listing/internal/repository"
	"github.com/Gnanasekark/Online-property-listing/pkg/logger"
	"github.com/Gnanasekark/Online-property-listing/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// MessageRequest is the contact form payload
type MessageRequest struct {
	Name          string `json:"name" form:"name" validate:"required"`
	Email         string `json:"email" form:"email" validate:"required,email"`
	Phone         string `json:"phone" form:"phone"`
	Message       string `json:"message" form:"message" validate:"required"`
	PropertyID    string `json:"propertyId" form:"propertyId"`
	PropertyTitle string `json:"propertyTitle" form:"propertyTitle"`
	OwnerID       string `json:"ownerId" form:"ownerId"`
}

// CreateMessage records an enquiry. Anyone may send one; a signed in sender is attached to it.
func (h *Handler) CreateMessage(c echo.Context) error {
	log := logger.FromEcho(c)
	ctx := c.Request().Context()

	var req MessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		log.Warn("Invalid enquiry", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	message := model.NewMessage(
		strings.TrimSpace(req.Name),
		strings.TrimSpace(req.Email),
		strings.TrimSpace(req.Phone),
		req.Message,
	)
	message.OwnerID = strings.TrimSpace(req.OwnerID)
	message.PropertyTitle = req.PropertyTitle

	// the listing is authoritative for who receives the enquiry
	if id := strings.TrimSpace(req.PropertyID); id != "" {
		property, err := h.properties.FindByID(ctx, id)
		if err != nil {
			return storeError(c, log, err, "property not found", "failed to send message")
		}
		message.PropertyID = property.ID
		message.PropertyTitle = property.Title
		message.OwnerID = property.OwnerID
	}

	if claims := middleware.ClaimsFromContext(c); claims != nil {
		message.UserID = claims.UserID
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := h.messages.Create(ctx, message); err != nil {
		log.Error("Failed to create message", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to send message"})
	}

	prometheus.EnquiryCounter.WithLabelValues("created").Inc()
	log.Info("Enquiry created",
		zap.String("message_id", message.ID),
		zap.String("property_id", message.PropertyID),
		zap.String("owner_id", message.OwnerID))

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "Message sent successfully",
		"data":    message,
	})
}

// ListMessages returns the enquiries addressed to the caller, newest first
func (h *Handler) ListMessages(c echo.Context) error {
	claims := middleware.ClaimsFromContext(c)

	status := strings.ToLower(strings.TrimSpace(c.QueryParam("status")))
	if status != "" && !model.ValidStatus(status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be unread or read"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	messages, err := h.messages.FindByOwner(c.Request().Context(), claims.UserID, status)
	if err != nil {
		logger.FromEcho(c).Error("Failed to fetch messages", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch messages"})
	}
	return c.JSON(http.StatusOK, messages)
}

// MarkMessageRead moves an enquiry from unread to read. Only the owner it was
// sent to may do so; repeating the call changes nothing.
func (h *Handler) MarkMessageRead(c echo.Context) error {
	log := logger.FromEcho(c)
	ctx := c.Request().Context()
	claims := middleware.ClaimsFromContext(c)

	message, err := h.messages.FindByID(ctx, c.Param("id"))
	if err != nil {
		return storeError(c, log, err, "message not found", "failed to update message")
	}

	if !message.AddressedTo(claims.UserID) {
		log.Warn("Message ownership check failed",
			zap.String("message_id", message.ID),
			zap.String("user_id", claims.UserID))
		prometheus.RecordOwnershipDenied("message")
		return c.JSON(http.StatusForbidden, echo.Map{"error": "not authorized to update this message"})
	}

	changed, err := message.MarkRead()
	if err != nil {
		if errors.Is(err, model.ErrInvalidStatus) {
			log.Error("Message has an unknown status", zap.String("message_id", message.ID), zap.String("status", message.Status))
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		}
		return err
	}
	if !changed {
		return c.JSON(http.StatusOK, message)
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := h.messages.UpdateStatus(ctx, message.ID, message.Status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "message not found"})
		}
		log.Error("Failed to mark message read", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update message"})
	}

	prometheus.EnquiryCounter.WithLabelValues("read").Inc()
	log.Info("Enquiry marked read", zap.String("message_id", message.ID))
	return c.JSON(http.StatusOK, message)
}
