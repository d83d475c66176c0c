package services

import (
	"context"
	"log/slog"
	"time"

	"netbank-prototype/internal/models"
	"netbank-prototype/internal/ui"
	"netbank-prototype/internal/validation"
)

// Control and form identifiers shared with the rendered document
const (
	ControlLoginSubmit = "login-submit"
	FormLogin          = "login"
)

// DefaultLoginDelay is the simulated authentication latency
const DefaultLoginDelay = 1000 * time.Millisecond

// LoginService simulates authentication. Credentials are validated but never
// verified against anything; a successful submission flips the session flag
// after a fixed delay and navigates to the dashboard.
type LoginService struct {
	validator *validation.FormValidator
	state     *ui.ApplicationState
	delay     time.Duration
	sleep     Sleeper
	metrics   MetricsRecorderInterface
	logger    *slog.Logger
}

// NewLoginService creates a login service
func NewLoginService(
	validator *validation.FormValidator,
	state *ui.ApplicationState,
	delay time.Duration,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *LoginService {
	if delay <= 0 {
		delay = DefaultLoginDelay
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &LoginService{
		validator: validator,
		state:     state,
		delay:     delay,
		sleep:     realSleep,
		metrics:   metrics,
		logger:    logger,
	}
}

// WithSleeper overrides the simulated delay; used by tests
func (s *LoginService) WithSleeper(sleep Sleeper) *LoginService {
	s.sleep = sleep
	return s
}

// Validate runs the pure login validation
func (s *LoginService) Validate(customerID, password string) validation.Result {
	return s.validator.ValidateLogin(customerID, password)
}

// Submit handles a login form submission. On validation failure the first
// error is surfaced both inline and as a notification and every offending
// field is marked invalid. On success the submit control is disabled for the
// simulated delay, then the session flag is set and the view transitions to
// the dashboard.
func (s *LoginService) Submit(ctx context.Context, input ui.LoginInput) (validation.Result, []ui.Effect) {
	result := s.validator.ValidateLogin(input.CustomerID, input.Password)

	if !result.IsValid {
		s.metrics.RecordLoginAttempt(statusRejected)
		s.logger.Info("login rejected",
			"errors", len(result.Errors),
			"first_error", result.FirstError(),
		)
		return result, rejectionEffects(result, FormLogin)
	}

	effects := []ui.Effect{
		{Kind: ui.EffectSetControlEnabled, Control: ControlLoginSubmit, Enabled: false},
		{Kind: ui.EffectSetInlineStatus, Message: "Signing in...", Severity: models.SeverityInfo},
	}

	started := time.Now()
	s.sleep(s.delay)
	s.metrics.RecordSimulatedDelay("login", time.Since(started))

	if err := s.state.SetAuthenticated(true); err != nil {
		// The file store degrades internally; any other store error still
		// leaves the in-memory flag authoritative for this process
		s.logger.Warn("failed to persist session flag", "error", err.Error())
	}

	s.metrics.RecordLoginAttempt(statusAccepted)
	s.logger.Info("login accepted", "customer_id", result.Fields[validation.FieldCustomerID])

	effects = append(effects,
		ui.Effect{Kind: ui.EffectSetControlEnabled, Control: ControlLoginSubmit, Enabled: true},
		ui.Effect{Kind: ui.EffectSetInlineStatus, Message: "", Severity: models.SeverityInfo},
		ui.Effect{Kind: ui.EffectNotify, Message: "Signed in successfully", Severity: models.SeveritySuccess},
		ui.Effect{Kind: ui.EffectShowScreen, Screen: models.ScreenDashboard},
	)

	return result, effects
}

// Logout clears the session flag and returns to the login screen
func (s *LoginService) Logout() []ui.Effect {
	if err := s.state.SetAuthenticated(false); err != nil {
		s.logger.Warn("failed to clear session flag", "error", err.Error())
	}

	s.logger.Info("logged out")

	return []ui.Effect{
		{Kind: ui.EffectShowScreen, Screen: models.ScreenLogin},
		{Kind: ui.EffectNotify, Message: "You have been signed out", Severity: models.SeverityInfo},
	}
}

// rejectionEffects builds the failure effects shared by both forms: first
// error inline, first error as a notification, then field validity markers
// for assistive technology. The full error list stays internal.
func rejectionEffects(result validation.Result, form string) []ui.Effect {
	effects := []ui.Effect{
		{Kind: ui.EffectSetInlineStatus, Message: result.FirstError(), Severity: models.SeverityError},
		{Kind: ui.EffectNotify, Message: result.FirstError(), Severity: models.SeverityError},
	}

	for _, field := range result.InvalidFields() {
		effects = append(effects, ui.Effect{
			Kind:  ui.EffectSetFieldValidity,
			Field: field,
			Valid: false,
			Form:  form,
		})
	}

	return effects
}
