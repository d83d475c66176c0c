package dto

import "time"

// NotifyRequest posts a timed notification
type NotifyRequest struct {
	Message    string `json:"message" validate:"required,max=200"`
	Severity   string `json:"severity" validate:"required,severity"`
	DurationMS int    `json:"durationMs" validate:"omitempty,min=0,max=60000"`
}

// NotificationResponse is one active notification
type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
	FadingOut bool      `json:"fadingOut"`
}
