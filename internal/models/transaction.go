package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidTransactionDate = errors.New("transaction date is required")

// Transaction represents a single row of the fixed, read-only statement:
// date, description, signed amount, and the running balance after it.
type Transaction struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Balance     decimal.Decimal `json:"balance"`
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.Date.IsZero() {
		return ErrInvalidTransactionDate
	}

	if t.Description == "" {
		return errors.New("transaction description is required")
	}

	if t.Amount.IsZero() {
		return errors.New("transaction amount cannot be zero")
	}

	return nil
}

// IsDebit returns true if the transaction withdrew funds
func (t *Transaction) IsDebit() bool {
	return t.Amount.IsNegative()
}

// IsCredit returns true if the transaction deposited funds
func (t *Transaction) IsCredit() bool {
	return t.Amount.IsPositive()
}
