package handlers

import (
	"net/http"
	"time"

	"netbank-prototype/internal/dto"
	"netbank-prototype/internal/errors"
	"netbank-prototype/internal/models"
	"netbank-prototype/internal/notify"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// NotificationHandler serves the timed notification sink
type NotificationHandler struct {
	sink *notify.Sink
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(sink *notify.Sink) *NotificationHandler {
	return &NotificationHandler{sink: sink}
}

// List returns the notifications still inside their display window,
// including any in their fade-out grace period
func (h *NotificationHandler) List(c echo.Context) error {
	active := h.sink.Active()

	responses := make([]dto.NotificationResponse, 0, len(active))
	for _, n := range active {
		responses = append(responses, toNotificationResponse(n))
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: responses,
		Meta: map[string]interface{}{"count": len(responses)},
	})
}

// Create posts a timed notification
func (h *NotificationHandler) Create(c echo.Context) error {
	var req dto.NotifyRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	notification, err := h.sink.Notify(req.Message, req.Severity,
		time.Duration(req.DurationMS)*time.Millisecond)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    toNotificationResponse(notification),
		Message: "Notification posted",
	})
}

// Dismiss removes a notification before its timer expires
func (h *NotificationHandler) Dismiss(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid notification id"))
	}

	if !h.sink.Dismiss(id) {
		return SendError(c, errors.SystemNotFound, errors.WithDetails("Notification not found"))
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Notification dismissed",
	})
}

func toNotificationResponse(n models.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:        n.ID.String(),
		Message:   n.Message,
		Severity:  n.Severity,
		CreatedAt: n.CreatedAt,
		ExpiresAt: n.ExpiresAt,
		FadingOut: n.FadingOut,
	}
}
