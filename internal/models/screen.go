package models

import "errors"

// Screen identifies one of the mutually-exclusive named views.
// The enumeration is closed: exactly one screen is active at any time.
type Screen string

const (
	ScreenLogin        Screen = "login"
	ScreenDashboard    Screen = "dashboard"
	ScreenTransactions Screen = "transactions"
	ScreenTransfer     Screen = "transfer"
)

var ErrUnknownScreen = errors.New("unknown screen identifier")

// AllScreens returns the closed screen enumeration in display order
func AllScreens() []Screen {
	return []Screen{ScreenLogin, ScreenDashboard, ScreenTransactions, ScreenTransfer}
}

// TabScreens returns the screens reachable through the secondary tab navigation
func TabScreens() []Screen {
	return []Screen{ScreenDashboard, ScreenTransactions, ScreenTransfer}
}

// ParseScreen converts a raw identifier into a Screen
// Returns ErrUnknownScreen for anything outside the closed enumeration
func ParseScreen(raw string) (Screen, error) {
	s := Screen(raw)
	if !IsValidScreen(s) {
		return "", ErrUnknownScreen
	}
	return s, nil
}

// IsValidScreen checks if the screen is part of the closed enumeration
func IsValidScreen(s Screen) bool {
	switch s {
	case ScreenLogin, ScreenDashboard, ScreenTransactions, ScreenTransfer:
		return true
	default:
		return false
	}
}

// RequiresAuthentication returns true for screens gated behind the session flag
func (s Screen) RequiresAuthentication() bool {
	return s != ScreenLogin
}

// HasTabNavigation returns true if the secondary tab navigation is visible
// while this screen is active
func (s Screen) HasTabNavigation() bool {
	switch s {
	case ScreenDashboard, ScreenTransactions, ScreenTransfer:
		return true
	default:
		return false
	}
}

// Title returns the human-readable screen name used in status announcements
func (s Screen) Title() string {
	switch s {
	case ScreenLogin:
		return "Sign in"
	case ScreenDashboard:
		return "Dashboard"
	case ScreenTransactions:
		return "Transactions"
	case ScreenTransfer:
		return "Transfer funds"
	default:
		return string(s)
	}
}
