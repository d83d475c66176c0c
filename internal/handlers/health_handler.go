package handlers

import (
	"net/http"
	"time"

	"netbank-prototype/internal/session"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports process liveness and session storage health
type HealthHandler struct {
	store     session.Store
	startedAt time.Time
	version   string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store session.Store, version string) *HealthHandler {
	return &HealthHandler{
		store:     store,
		startedAt: time.Now(),
		version:   version,
	}
}

// Health returns liveness plus a session storage probe. A degraded store
// still reports 200: the prototype keeps working from memory.
func (h *HealthHandler) Health(c echo.Context) error {
	storage := "ok"
	if degradable, ok := h.store.(interface{ Degraded() bool }); ok && degradable.Degraded() {
		storage = "degraded"
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":          "ok",
		"version":         h.version,
		"uptime_seconds":  int(time.Since(h.startedAt).Seconds()),
		"session_storage": storage,
	})
}
