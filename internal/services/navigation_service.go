package services

import (
	"log/slog"

	"netbank-prototype/internal/models"
	"netbank-prototype/internal/ui"
)

// NavigationService handles the tab controls and the password visibility
// toggle. Tab destinations are session-gated: selecting one while signed out
// falls back to the login screen.
type NavigationService struct {
	state  *ui.ApplicationState
	logger *slog.Logger
}

// NewNavigationService creates a navigation service
func NewNavigationService(state *ui.ApplicationState, logger *slog.Logger) *NavigationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &NavigationService{state: state, logger: logger}
}

// SelectTab navigates to one of the tabbed screens
func (s *NavigationService) SelectTab(screen models.Screen) []ui.Effect {
	if !models.IsValidScreen(screen) || !screen.HasTabNavigation() {
		s.logger.Warn("tab selection for non-tab screen", "screen", string(screen))
		return []ui.Effect{{
			Kind:     ui.EffectNotify,
			Message:  "That screen is not available",
			Severity: models.SeverityError,
		}}
	}

	if screen.RequiresAuthentication() && !s.state.IsAuthenticated() {
		return []ui.Effect{
			{Kind: ui.EffectShowScreen, Screen: models.ScreenLogin},
			{Kind: ui.EffectNotify, Message: "Sign in to view this screen", Severity: models.SeverityError},
		}
	}

	return []ui.Effect{{Kind: ui.EffectShowScreen, Screen: screen}}
}

// TogglePasswordVisibility flips the password field between masked and
// plain text. Pure rendering state; nothing here persists.
func (s *NavigationService) TogglePasswordVisibility() []ui.Effect {
	return []ui.Effect{{Kind: ui.EffectTogglePasswordVisibility}}
}
