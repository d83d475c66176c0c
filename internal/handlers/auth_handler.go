package handlers

import (
	"net/http"

	"netbank-prototype/internal/dto"
	"netbank-prototype/internal/errors"
	"netbank-prototype/internal/services"
	"netbank-prototype/internal/ui"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles the simulated sign-in endpoints
type AuthHandler struct {
	loginService services.LoginServiceInterface
	applier      *ui.Applier
	view         *ui.ViewController
	state        *ui.ApplicationState
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(loginService services.LoginServiceInterface, applier *ui.Applier, view *ui.ViewController, state *ui.ApplicationState) *AuthHandler {
	return &AuthHandler{
		loginService: loginService,
		applier:      applier,
		view:         view,
		state:        state,
	}
}

// Login handles a login form submission. Validation failures come back as a
// 422 carrying every failed rule; a valid submission completes the simulated
// delay, sets the session flag, and lands on the dashboard.
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	result, effects := h.loginService.Submit(c.Request().Context(), ui.LoginInput{
		CustomerID: req.CustomerID,
		Password:   req.Password,
	})

	passThrough, err := h.applier.Apply(effects)
	if err != nil {
		return SendSystemError(c, err)
	}

	if !result.IsValid {
		return SendError(c, errors.LoginValidationFailed,
			errors.WithDetails(fieldErrorDetails(result.Errors)...))
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: map[string]interface{}{
			"authenticated": h.state.IsAuthenticated(),
			"view":          h.view.View(),
			"effects":       passThrough,
		},
		Message: "Signed in successfully",
	})
}

// Validate runs the login validation without submitting: no delay, no
// session change, no effects. Backs per-field revalidation on blur.
func (h *AuthHandler) Validate(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	result := h.loginService.Validate(req.CustomerID, req.Password)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: result,
	})
}

// Logout clears the session flag and returns the interface to the login screen
func (h *AuthHandler) Logout(c echo.Context) error {
	effects := h.loginService.Logout()

	passThrough, err := h.applier.Apply(effects)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: map[string]interface{}{
			"view":    h.view.View(),
			"effects": passThrough,
		},
		Message: "Signed out",
	})
}

// Session reports the persisted session flag and the screen the interface
// would open on after a reload
func (h *AuthHandler) Session(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.SessionResponse{
			Authenticated: h.state.IsAuthenticated(),
			ActiveScreen:  string(h.state.ActiveScreen()),
		},
	})
}
