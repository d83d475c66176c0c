// Package staticdata holds the fixed demo data set compiled into the
// prototype. Nothing here is loaded from an external source and nothing
// mutates it: accounts only bound transfer validation, and the statement is
// rendered read-only.
package staticdata

import (
	"time"

	"github.com/shopspring/decimal"

	"netbank-prototype/internal/models"
)

const (
	EverydayAccountID = "acc-everyday"
	SavingsAccountID  = "acc-savings"
)

var accounts = []models.Account{
	{
		ID:          EverydayAccountID,
		Name:        "Everyday Account",
		AccountType: models.AccountTypeEveryday,
		Number:      "062-000 13572468",
		Balance:     decimal.NewFromFloat(2450.35),
	},
	{
		ID:          SavingsAccountID,
		Name:        "NetSaver Account",
		AccountType: models.AccountTypeSavings,
		Number:      "062-000 24681357",
		Balance:     decimal.NewFromFloat(15830.00),
	},
}

var transactions = []models.Transaction{
	{
		Date:        time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC),
		Description: "Salary deposit - Acme Pty Ltd",
		Amount:      decimal.NewFromFloat(3200.00),
		Balance:     decimal.NewFromFloat(2450.35),
	},
	{
		Date:        time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC),
		Description: "Woolworths Metro",
		Amount:      decimal.NewFromFloat(-85.50),
		Balance:     decimal.NewFromFloat(-749.65),
	},
	{
		Date:        time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		Description: "Rent payment",
		Amount:      decimal.NewFromFloat(-620.00),
		Balance:     decimal.NewFromFloat(-664.15),
	},
	{
		Date:        time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC),
		Description: "Electricity bill - Energy Co",
		Amount:      decimal.NewFromFloat(-142.80),
		Balance:     decimal.NewFromFloat(-44.15),
	},
	{
		Date:        time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC),
		Description: "Transfer from NetSaver",
		Amount:      decimal.NewFromFloat(250.00),
		Balance:     decimal.NewFromFloat(98.65),
	},
	{
		Date:        time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC),
		Description: "Coffee Corner",
		Amount:      decimal.NewFromFloat(-12.40),
		Balance:     decimal.NewFromFloat(-151.35),
	},
	{
		Date:        time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		Description: "Streaming subscription",
		Amount:      decimal.NewFromFloat(-18.99),
		Balance:     decimal.NewFromFloat(-138.95),
	},
}

// Accounts returns a copy of the fixed account set in display order
func Accounts() []models.Account {
	out := make([]models.Account, len(accounts))
	copy(out, accounts)
	return out
}

// AccountByID looks up one of the fixed accounts
func AccountByID(id string) (models.Account, bool) {
	for _, a := range accounts {
		if a.ID == id {
			return a, true
		}
	}
	return models.Account{}, false
}

// Transactions returns a copy of the fixed statement in its rendered order
// (most recent first)
func Transactions() []models.Transaction {
	out := make([]models.Transaction, len(transactions))
	copy(out, transactions)
	return out
}
