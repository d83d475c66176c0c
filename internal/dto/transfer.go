package dto

import "time"

// TransferRequest carries the raw transfer form fields. Untagged for the
// same reason as LoginRequest: validation must report all failures at once,
// not stop at the first bind error.
type TransferRequest struct {
	Destination     string `json:"destination"`
	Amount          string `json:"amount"`
	Description     string `json:"description"`
	SourceAccountID string `json:"sourceAccountId"`
}

// TransferReceiptResponse acknowledges a simulated transfer
type TransferReceiptResponse struct {
	Reference   string    `json:"reference"`
	Destination string    `json:"destination"`
	Amount      string    `json:"amount"`
	CompletedAt time.Time `json:"completedAt"`
}
