package handlers

import (
	"net/http"

	"netbank-prototype/internal/dto"
	"netbank-prototype/internal/errors"
	"netbank-prototype/internal/models"
	"netbank-prototype/internal/services"
	"netbank-prototype/internal/ui"
	"netbank-prototype/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// AccountHandler serves the fixed account data behind the dashboard
type AccountHandler struct {
	statementService services.StatementServiceInterface
	state            *ui.ApplicationState
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(statementService services.StatementServiceInterface, state *ui.ApplicationState) *AccountHandler {
	return &AccountHandler{
		statementService: statementService,
		state:            state,
	}
}

// List returns the fixed account set in display order
func (h *AccountHandler) List(c echo.Context) error {
	if !h.state.IsAuthenticated() {
		return SendError(c, errors.SessionNotAuthenticated)
	}

	accounts := h.statementService.Accounts()

	responses := make([]dto.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, toAccountResponse(account))
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: responses,
	})
}

// Get returns a single fixed account
func (h *AccountHandler) Get(c echo.Context) error {
	if !h.state.IsAuthenticated() {
		return SendError(c, errors.SessionNotAuthenticated)
	}

	account, ok := h.statementService.AccountByID(c.Param("id"))
	if !ok {
		return SendError(c, errors.SystemNotFound, errors.WithDetails("Account not found"))
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: toAccountResponse(account),
	})
}

// Summary totals the fixed accounts for the dashboard header
func (h *AccountHandler) Summary(c echo.Context) error {
	if !h.state.IsAuthenticated() {
		return SendError(c, errors.SessionNotAuthenticated)
	}

	accounts := h.statementService.Accounts()

	responses := make([]dto.AccountResponse, 0, len(accounts))
	total := decimal.Zero
	for _, account := range accounts {
		responses = append(responses, toAccountResponse(account))
		total = total.Add(account.Balance)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.DashboardSummaryResponse{
			Accounts:       responses,
			TotalBalance:   total.StringFixed(2),
			TotalFormatted: validation.FormatMoney(total),
		},
	})
}

func toAccountResponse(account models.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:               account.ID,
		Name:             account.Name,
		AccountType:      account.AccountType,
		Number:           account.Number,
		Balance:          account.Balance.StringFixed(2),
		BalanceFormatted: validation.FormatMoney(account.Balance),
	}
}
