package dto

// Auth Request DTOs

// LoginRequest carries the raw login form fields. Deliberately untagged:
// the form validator reports every failed rule back to the caller, so
// nothing may be rejected at bind time.
type LoginRequest struct {
	CustomerID string `json:"customerId"`
	Password   string `json:"password"`
}

// Auth Response DTOs

// SessionResponse reports the persisted session flag and the screen the
// interface would open on
type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	ActiveScreen  string `json:"activeScreen"`
}
