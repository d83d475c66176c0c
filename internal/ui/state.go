// Package ui owns the screen-navigation controller: the application state,
// the view controller that keeps exactly one screen visible, and the command
// dispatch table that maps discrete user actions to descriptions of required
// UI effects. Rendering stays outside; everything here returns data.
package ui

import (
	"sync"

	"netbank-prototype/internal/models"
	"netbank-prototype/internal/session"
)

// ApplicationState is the explicit, process-wide UI state: the currently
// active screen and the session flag. All mutation goes through controlled
// methods; there are no ambient globals.
type ApplicationState struct {
	mu           sync.RWMutex
	activeScreen models.Screen
	store        session.Store
}

// NewApplicationState reads the persisted session flag and selects the
// startup screen: dashboard when authenticated, login otherwise
func NewApplicationState(store session.Store) *ApplicationState {
	active := models.ScreenLogin
	if store.IsAuthenticated() {
		active = models.ScreenDashboard
	}

	return &ApplicationState{
		activeScreen: active,
		store:        store,
	}
}

// ActiveScreen returns the currently visible screen
func (s *ApplicationState) ActiveScreen() models.Screen {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeScreen
}

// IsAuthenticated reports the session flag
func (s *ApplicationState) IsAuthenticated() bool {
	return s.store.IsAuthenticated()
}

// SetAuthenticated writes the session flag
func (s *ApplicationState) SetAuthenticated(authenticated bool) error {
	return s.store.SetAuthenticated(authenticated)
}

// setActiveScreen records the new active screen. Only the ViewController
// calls this; navigation always goes through ShowScreen.
func (s *ApplicationState) setActiveScreen(screen models.Screen) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeScreen = screen
}
