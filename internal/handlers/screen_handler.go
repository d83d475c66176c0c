package handlers

import (
	"net/http"

	"netbank-prototype/internal/dto"
	"netbank-prototype/internal/errors"
	"netbank-prototype/internal/models"
	"netbank-prototype/internal/ui"

	"github.com/labstack/echo/v4"
)

// ScreenHandler serves the view state and the dispatch endpoint. Every user
// action flows through the same command table: the handler only names the
// action, the registered handler decides the effects.
type ScreenHandler struct {
	dispatcher *ui.Dispatcher
	applier    *ui.Applier
	view       *ui.ViewController
}

// NewScreenHandler creates a new screen handler
func NewScreenHandler(dispatcher *ui.Dispatcher, applier *ui.Applier, view *ui.ViewController) *ScreenHandler {
	return &ScreenHandler{
		dispatcher: dispatcher,
		applier:    applier,
		view:       view,
	}
}

// View returns the current view state: exactly one visible screen, the tab
// navigation state, and any live announcement
func (h *ScreenHandler) View(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{
		Data: h.view.View(),
	})
}

// SelectTab navigates to one of the tabbed screens via the dispatch table
func (h *ScreenHandler) SelectTab(c echo.Context) error {
	var req dto.TabSelectRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	screen, err := models.ParseScreen(req.Screen)
	if err != nil {
		return SendError(c, errors.ScreenUnknown)
	}

	return h.dispatch(c, ui.Action{
		Kind:   ui.ActionTabSelect,
		Screen: screen,
	})
}

// Dispatch runs one discrete user action through the command table
func (h *ScreenHandler) Dispatch(c echo.Context) error {
	var req dto.ActionRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	action := ui.Action{
		Kind: ui.ActionKind(req.Kind),
	}
	if req.Screen != "" {
		screen, err := models.ParseScreen(req.Screen)
		if err != nil {
			return SendError(c, errors.ScreenUnknown)
		}
		action.Screen = screen
	}
	if req.Login != nil {
		action.Login = ui.LoginInput{
			CustomerID: req.Login.CustomerID,
			Password:   req.Login.Password,
		}
	}
	if req.Transfer != nil {
		action.Transfer = ui.TransferInput{
			Destination:     req.Transfer.Destination,
			AmountRaw:       req.Transfer.Amount,
			Description:     req.Transfer.Description,
			SourceAccountID: req.Transfer.SourceAccountID,
		}
	}

	return h.dispatch(c, action)
}

func (h *ScreenHandler) dispatch(c echo.Context, action ui.Action) error {
	effects, err := h.dispatcher.Dispatch(c.Request().Context(), action)
	if err != nil {
		return SendError(c, errors.ValidationGeneral,
			errors.WithDetails("Unknown action kind"))
	}

	passThrough, err := h.applier.Apply(effects)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: map[string]interface{}{
			"view":    h.view.View(),
			"effects": passThrough,
		},
	})
}
