package services

import (
	"context"
	"time"

	"netbank-prototype/internal/models"
	"netbank-prototype/internal/ui"
	"netbank-prototype/internal/validation"
)

// LoginServiceInterface simulates authentication: validation, a fixed
// processing delay, and the session flag transition
type LoginServiceInterface interface {
	Validate(customerID, password string) validation.Result
	Submit(ctx context.Context, input ui.LoginInput) (validation.Result, []ui.Effect)
	Logout() []ui.Effect
}

// TransferServiceInterface simulates funds transfers: validation, a fixed
// processing delay, and a receipt. No balance ever mutates.
type TransferServiceInterface interface {
	Validate(input ui.TransferInput) validation.TransferResult
	Submit(ctx context.Context, input ui.TransferInput) (*models.TransferReceipt, validation.TransferResult, []ui.Effect)
}

// NavigationServiceInterface handles tab selection and the password
// visibility toggle
type NavigationServiceInterface interface {
	SelectTab(screen models.Screen) []ui.Effect
	TogglePasswordVisibility() []ui.Effect
}

// StatementServiceInterface serves the fixed account and transaction data
// backing the dashboard and transactions screens
type StatementServiceInterface interface {
	Accounts() []models.Account
	AccountByID(id string) (models.Account, bool)
	Transactions() []models.Transaction
	AppendDemoTransactions(transactions []models.Transaction)
}

// DemoDataGeneratorInterface produces extra display-only statement rows for
// development environments
type DemoDataGeneratorInterface interface {
	Generate(count, days int) []models.Transaction
}

// MetricsRecorderInterface records operational metrics
type MetricsRecorderInterface interface {
	RecordScreenView(screen string)
	RecordLoginAttempt(status string)
	RecordTransfer(status string)
	RecordSimulatedDelay(operation string, duration time.Duration)
}
