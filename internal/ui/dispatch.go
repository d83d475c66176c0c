package ui

import (
	"context"
	"fmt"
	"time"

	"netbank-prototype/internal/models"
)

// ActionKind enumerates the discrete user actions the interface can emit
type ActionKind string

const (
	ActionLoginSubmit    ActionKind = "login_submit"
	ActionTransferSubmit ActionKind = "transfer_submit"
	ActionTabSelect      ActionKind = "tab_select"
	ActionLogoutClick    ActionKind = "logout_click"
	ActionPasswordToggle ActionKind = "password_toggle"
)

// LoginInput carries the raw login form fields
type LoginInput struct {
	CustomerID string
	Password   string
}

// TransferInput carries the raw transfer form fields
type TransferInput struct {
	Destination     string
	AmountRaw       string
	Description     string
	SourceAccountID string
}

// Action is one dispatched user action with its payload
type Action struct {
	Kind     ActionKind
	Screen   models.Screen
	Login    LoginInput
	Transfer TransferInput
}

// EffectKind enumerates the UI effects a handler can request
type EffectKind string

const (
	EffectShowScreen               EffectKind = "show_screen"
	EffectNotify                   EffectKind = "notify"
	EffectSetFieldValidity         EffectKind = "set_field_validity"
	EffectSetControlEnabled        EffectKind = "set_control_enabled"
	EffectResetForm                EffectKind = "reset_form"
	EffectTogglePasswordVisibility EffectKind = "toggle_password_visibility"
	EffectSetInlineStatus          EffectKind = "set_inline_status"
)

// Effect is a single required UI change, described rather than performed.
// Effects from one handler apply strictly in slice order.
type Effect struct {
	Kind EffectKind `json:"kind"`

	// EffectShowScreen
	Screen models.Screen `json:"screen,omitempty"`

	// EffectNotify / EffectSetInlineStatus
	Message  string        `json:"message,omitempty"`
	Severity string        `json:"severity,omitempty"`
	Duration time.Duration `json:"-"`

	// EffectSetFieldValidity
	Field string `json:"field,omitempty"`
	Valid bool   `json:"valid,omitempty"`

	// EffectSetControlEnabled
	Control string `json:"control,omitempty"`
	Enabled bool   `json:"enabled,omitempty"`

	// EffectResetForm
	Form string `json:"form,omitempty"`
}

// Handler turns an action into the ordered list of effects it requires
type Handler func(ctx context.Context, action Action) []Effect

// Dispatcher maps action kinds to their handlers, decoupling
// validation/business logic from rendering
type Dispatcher struct {
	handlers map[ActionKind]Handler
}

// NewDispatcher creates an empty dispatch table
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[ActionKind]Handler)}
}

// Register binds a handler to an action kind, replacing any previous binding
func (d *Dispatcher) Register(kind ActionKind, handler Handler) {
	d.handlers[kind] = handler
}

// Dispatch runs the handler registered for the action's kind
func (d *Dispatcher) Dispatch(ctx context.Context, action Action) ([]Effect, error) {
	handler, ok := d.handlers[action.Kind]
	if !ok {
		return nil, fmt.Errorf("no handler registered for action %q", action.Kind)
	}
	return handler(ctx, action), nil
}
