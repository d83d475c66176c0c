package dto

// ActionRequest is one discrete user action posted to the dispatch endpoint.
// Only the payload matching the kind is read; the rest stay zero.
type ActionRequest struct {
	Kind     string           `json:"kind" validate:"required"`
	Screen   string           `json:"screen,omitempty"`
	Login    *LoginRequest    `json:"login,omitempty"`
	Transfer *TransferRequest `json:"transfer,omitempty"`
}
