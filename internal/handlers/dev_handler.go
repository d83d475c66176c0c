package handlers

import (
	"net/http"

	"netbank-prototype/internal/dto"
	"netbank-prototype/internal/errors"
	"netbank-prototype/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler exposes development-only helpers. The route is only registered
// in development environments.
type DevHandler struct {
	generator        services.DemoDataGeneratorInterface
	statementService services.StatementServiceInterface
}

// NewDevHandler creates a new dev handler
func NewDevHandler(generator services.DemoDataGeneratorInterface, statementService services.StatementServiceInterface) *DevHandler {
	return &DevHandler{
		generator:        generator,
		statementService: statementService,
	}
}

// GenerateDemoData appends randomized display-only rows to the statement
func (h *DevHandler) GenerateDemoData(c echo.Context) error {
	var req dto.GenerateDemoDataRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	rows := h.generator.Generate(req.Count, req.Days)
	h.statementService.AppendDemoTransactions(rows)

	return c.JSON(http.StatusCreated, SuccessResponse{
		Message: "Demo transactions generated",
		Meta:    map[string]interface{}{"generated": len(rows)},
	})
}
