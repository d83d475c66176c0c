package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles the route handlers for registration
type Handlers struct {
	Auth         *AuthHandler
	Transfer     *TransferHandler
	Screen       *ScreenHandler
	Account      *AccountHandler
	Transaction  *TransactionHandler
	Notification *NotificationHandler
	Health       *HealthHandler
	Dev          *DevHandler
}

// RegisterRoutes wires every endpoint onto the echo instance. Dev routes are
// only registered when devMode is set.
func RegisterRoutes(e *echo.Echo, h Handlers, devMode bool) {
	e.GET("/health", h.Health.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/login/validate", h.Auth.Validate)
	auth.POST("/logout", h.Auth.Logout)
	auth.GET("/session", h.Auth.Session)

	api.POST("/transfers", h.Transfer.Submit)
	api.POST("/transfers/validate", h.Transfer.Validate)

	api.GET("/view", h.Screen.View)
	api.POST("/view/tab", h.Screen.SelectTab)
	api.POST("/actions", h.Screen.Dispatch)

	api.GET("/accounts", h.Account.List)
	api.GET("/accounts/summary", h.Account.Summary)
	api.GET("/accounts/:id", h.Account.Get)

	api.GET("/transactions", h.Transaction.List)

	api.GET("/notifications", h.Notification.List)
	api.POST("/notifications", h.Notification.Create)
	api.DELETE("/notifications/:id", h.Notification.Dismiss)

	if devMode && h.Dev != nil {
		api.POST("/dev/demo-data", h.Dev.GenerateDemoData)
	}
}
