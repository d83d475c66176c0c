package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

const (
	AccountTypeEveryday = "everyday"
	AccountTypeSavings  = "savings"
)

var (
	ErrInvalidAccountType = errors.New("invalid account type")
	ErrInvalidBalance     = errors.New("balance cannot be negative")
)

// Account represents one of the fixed demo accounts. Balances are immutable
// for the process lifetime and only bound transfer amount validation.
type Account struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	AccountType string          `json:"account_type"`
	Number      string          `json:"number"`
	Balance     decimal.Decimal `json:"balance"`
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.ID == "" {
		return errors.New("account ID is required")
	}

	if a.Name == "" {
		return errors.New("account name is required")
	}

	if !IsValidAccountType(a.AccountType) {
		return ErrInvalidAccountType
	}

	if a.Balance.IsNegative() {
		return ErrInvalidBalance
	}

	return nil
}

// CanCover returns true if the balance covers the given amount
func (a *Account) CanCover(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}

// IsValidAccountType checks if the account type is one of the allowed types
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeEveryday, AccountTypeSavings:
		return true
	default:
		return false
	}
}
