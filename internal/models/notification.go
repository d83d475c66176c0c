package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	SeveritySuccess = "success"
	SeverityError   = "error"
	SeverityInfo    = "info"
)

var ErrInvalidSeverity = errors.New("invalid notification severity")

// Notification is a transient, dismissible user-facing notice. Notices are
// kept in insertion order and removed after their duration elapses, with a
// short fade-out grace before removal.
type Notification struct {
	ID        uuid.UUID     `json:"id"`
	Message   string        `json:"message"`
	Severity  string        `json:"severity"`
	Duration  time.Duration `json:"-"`
	CreatedAt time.Time     `json:"created_at"`
	ExpiresAt time.Time     `json:"expires_at"`
	FadingOut bool          `json:"fading_out"`
}

// Validate validates the notification fields
func (n *Notification) Validate() error {
	if n.Message == "" {
		return errors.New("notification message is required")
	}

	if !IsValidSeverity(n.Severity) {
		return ErrInvalidSeverity
	}

	return nil
}

// IsExpired returns true once the notice's display window has passed
func (n *Notification) IsExpired(now time.Time) bool {
	return !now.Before(n.ExpiresAt)
}

// IsValidSeverity checks if the severity is one of the allowed values
func IsValidSeverity(severity string) bool {
	switch severity {
	case SeveritySuccess, SeverityError, SeverityInfo:
		return true
	default:
		return false
	}
}
