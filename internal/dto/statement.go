package dto

import "time"

// AccountResponse is one row of the dashboard account list
type AccountResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	AccountType      string `json:"accountType"`
	Number           string `json:"number"`
	Balance          string `json:"balance"`
	BalanceFormatted string `json:"balanceFormatted"`
}

// DashboardSummaryResponse totals the fixed accounts for the dashboard header
type DashboardSummaryResponse struct {
	Accounts       []AccountResponse `json:"accounts"`
	TotalBalance   string            `json:"totalBalance"`
	TotalFormatted string            `json:"totalFormatted"`
}

// TransactionResponse is one row of the read-only statement
type TransactionResponse struct {
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Balance     string    `json:"balance"`
	Direction   string    `json:"direction"`
}

// ListTransactionsResponse represents the response for listing the statement
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
}
