package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferRequest is the transient payload of a simulated funds transfer.
// It is validated, held for the simulated processing delay, and discarded;
// no balance ever mutates.
type TransferRequest struct {
	Destination     string          `json:"destination"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	SourceAccountID string          `json:"source_account_id"`
}

// TransferReceipt is the outcome of a simulated transfer, returned after the
// processing delay completes
type TransferReceipt struct {
	Reference   string          `json:"reference"`
	Destination string          `json:"destination"`
	Amount      decimal.Decimal `json:"amount"`
	CompletedAt time.Time       `json:"completed_at"`
}

// GenerateTransferReference creates a display reference for a simulated transfer
func GenerateTransferReference() string {
	return fmt.Sprintf("SIM-%s", uuid.New().String()[:8])
}
