package handlers

import (
	"net/http"

	"netbank-prototype/internal/dto"
	"netbank-prototype/internal/errors"
	"netbank-prototype/internal/models"
	"netbank-prototype/internal/services"
	"netbank-prototype/internal/ui"

	"github.com/labstack/echo/v4"
)

// TransactionHandler serves the fixed, read-only statement
type TransactionHandler struct {
	statementService services.StatementServiceInterface
	state            *ui.ApplicationState
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(statementService services.StatementServiceInterface, state *ui.ApplicationState) *TransactionHandler {
	return &TransactionHandler{
		statementService: statementService,
		state:            state,
	}
}

// List returns the statement rows most recent first. An optional limit query
// parameter truncates the list; the data never changes otherwise.
func (h *TransactionHandler) List(c echo.Context) error {
	if !h.state.IsAuthenticated() {
		return SendError(c, errors.SessionNotAuthenticated)
	}

	transactions := h.statementService.Transactions()

	limit := getIntParam(c, "limit", len(transactions))
	if limit < len(transactions) && limit >= 0 {
		transactions = transactions[:limit]
	}

	responses := make([]dto.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		responses = append(responses, toTransactionResponse(t))
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ListTransactionsResponse{
			Transactions: responses,
			Count:        len(responses),
		},
	})
}

func toTransactionResponse(t models.Transaction) dto.TransactionResponse {
	direction := "credit"
	if t.IsDebit() {
		direction = "debit"
	}

	return dto.TransactionResponse{
		Date:        t.Date,
		Description: t.Description,
		Amount:      t.Amount.StringFixed(2),
		Balance:     t.Balance.StringFixed(2),
		Direction:   direction,
	}
}
