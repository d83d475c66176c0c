package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"netbank-prototype/internal/models"
	"netbank-prototype/internal/ui"
	"netbank-prototype/internal/validation"
)

// Control and form identifiers shared with the rendered document
const (
	ControlTransferSubmit = "transfer-submit"
	FormTransfer          = "transfer"
)

// DefaultTransferDelay is the simulated transfer processing latency
const DefaultTransferDelay = 1500 * time.Millisecond

// TransferService simulates funds transfers. A valid request is held for a
// fixed delay, acknowledged with a receipt, and discarded; account balances
// never change.
type TransferService struct {
	validator *validation.FormValidator
	delay     time.Duration
	sleep     Sleeper
	metrics   MetricsRecorderInterface
	logger    *slog.Logger
}

// NewTransferService creates a transfer service
func NewTransferService(
	validator *validation.FormValidator,
	delay time.Duration,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *TransferService {
	if delay <= 0 {
		delay = DefaultTransferDelay
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TransferService{
		validator: validator,
		delay:     delay,
		sleep:     realSleep,
		metrics:   metrics,
		logger:    logger,
	}
}

// WithSleeper overrides the simulated delay; used by tests
func (s *TransferService) WithSleeper(sleep Sleeper) *TransferService {
	s.sleep = sleep
	return s
}

// Validate runs the pure transfer validation
func (s *TransferService) Validate(input ui.TransferInput) validation.TransferResult {
	return s.validator.ValidateTransfer(
		input.Destination, input.AmountRaw, input.Description, input.SourceAccountID)
}

// Submit handles a transfer form submission. On validation failure the first
// error is surfaced inline and as a notification and every offending field
// is marked invalid. On success the submit control is disabled for the
// simulated delay, a receipt is issued, and the form is reset.
func (s *TransferService) Submit(ctx context.Context, input ui.TransferInput) (*models.TransferReceipt, validation.TransferResult, []ui.Effect) {
	result := s.Validate(input)

	if !result.IsValid {
		s.metrics.RecordTransfer(statusRejected)
		s.logger.Info("transfer rejected",
			"errors", len(result.Errors),
			"first_error", result.FirstError(),
		)
		return nil, result, rejectionEffects(result.Result, FormTransfer)
	}

	effects := []ui.Effect{
		{Kind: ui.EffectSetControlEnabled, Control: ControlTransferSubmit, Enabled: false},
		{Kind: ui.EffectSetInlineStatus, Message: "Processing transfer...", Severity: models.SeverityInfo},
	}

	started := time.Now()
	s.sleep(s.delay)
	s.metrics.RecordSimulatedDelay("transfer", time.Since(started))

	receipt := &models.TransferReceipt{
		Reference:   models.GenerateTransferReference(),
		Destination: result.Request.Destination,
		Amount:      result.Request.Amount,
		CompletedAt: time.Now(),
	}

	s.metrics.RecordTransfer(statusAccepted)
	s.logger.Info("transfer simulated",
		"reference", receipt.Reference,
		"destination", receipt.Destination,
		"amount", receipt.Amount.StringFixed(2),
		"source_account", result.Request.SourceAccountID,
	)

	effects = append(effects,
		ui.Effect{Kind: ui.EffectSetControlEnabled, Control: ControlTransferSubmit, Enabled: true},
		ui.Effect{Kind: ui.EffectSetInlineStatus, Message: "", Severity: models.SeverityInfo},
		ui.Effect{
			Kind: ui.EffectNotify,
			Message: fmt.Sprintf("Transfer of %s submitted (reference %s)",
				validation.FormatMoney(receipt.Amount), receipt.Reference),
			Severity: models.SeveritySuccess,
		},
		ui.Effect{Kind: ui.EffectResetForm, Form: FormTransfer},
	)

	return receipt, result, effects
}
