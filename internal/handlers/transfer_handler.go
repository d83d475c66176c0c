package handlers

import (
	"net/http"
	"strings"

	"netbank-prototype/internal/dto"
	"netbank-prototype/internal/errors"
	"netbank-prototype/internal/services"
	"netbank-prototype/internal/ui"
	"netbank-prototype/internal/validation"

	"github.com/labstack/echo/v4"
)

// TransferHandler handles the simulated transfer endpoint
type TransferHandler struct {
	transferService services.TransferServiceInterface
	applier         *ui.Applier
	view            *ui.ViewController
	state           *ui.ApplicationState
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(transferService services.TransferServiceInterface, applier *ui.Applier, view *ui.ViewController, state *ui.ApplicationState) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
		applier:         applier,
		view:            view,
		state:           state,
	}
}

// Submit handles a transfer form submission. The transfer is simulated only:
// after the fixed processing delay a receipt comes back and no balance
// changes. Validation failures return a 422 carrying every failed rule.
func (h *TransferHandler) Submit(c echo.Context) error {
	if !h.state.IsAuthenticated() {
		return SendError(c, errors.SessionNotAuthenticated)
	}

	var req dto.TransferRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	receipt, result, effects := h.transferService.Submit(c.Request().Context(), ui.TransferInput{
		Destination:     req.Destination,
		AmountRaw:       req.Amount,
		Description:     req.Description,
		SourceAccountID: req.SourceAccountID,
	})

	passThrough, err := h.applier.Apply(effects)
	if err != nil {
		return SendSystemError(c, err)
	}

	if !result.IsValid {
		return SendError(c, transferErrorCode(result),
			errors.WithMessage(result.FirstError()),
			errors.WithDetails(fieldErrorDetails(result.Errors)...))
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: map[string]interface{}{
			"receipt": dto.TransferReceiptResponse{
				Reference:   receipt.Reference,
				Destination: receipt.Destination,
				Amount:      validation.FormatMoney(receipt.Amount),
				CompletedAt: receipt.CompletedAt,
			},
			"view":    h.view.View(),
			"effects": passThrough,
		},
		Message: "Transfer submitted",
	})
}

// Validate runs the transfer validation without submitting: no delay, no
// receipt, no effects. Backs per-field revalidation on blur.
func (h *TransferHandler) Validate(c echo.Context) error {
	var req dto.TransferRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	result := h.transferService.Validate(ui.TransferInput{
		Destination:     req.Destination,
		AmountRaw:       req.Amount,
		Description:     req.Description,
		SourceAccountID: req.SourceAccountID,
	})

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: result,
	})
}

// transferErrorCode picks the error code matching the first failed rule
func transferErrorCode(result validation.TransferResult) errors.ErrorCode {
	if len(result.Errors) == 0 {
		return errors.ValidationGeneral
	}

	first := result.Errors[0]
	switch first.Field {
	case validation.FieldDestination:
		if first.Message == "Destination account is required" {
			return errors.TransferDestinationRequired
		}
		return errors.TransferDestinationInvalid
	case validation.FieldAmount:
		switch {
		case strings.HasPrefix(first.Message, "Please enter"):
			return errors.TransferAmountInvalid
		case strings.HasPrefix(first.Message, "Amount must be greater"):
			return errors.TransferAmountNotPositive
		case strings.HasPrefix(first.Message, "Insufficient funds"):
			return errors.TransferInsufficientFunds
		case strings.HasPrefix(first.Message, "Transfer limit"):
			return errors.TransferLimitExceeded
		default:
			return errors.TransferAmountInvalid
		}
	case validation.FieldDescription:
		return errors.TransferDescriptionTooLong
	case validation.FieldSourceAccount:
		return errors.TransferUnknownAccount
	default:
		return errors.ValidationGeneral
	}
}
