package services

import (
	"testing"
	"time"

	"netbank-prototype/internal/models"
	"netbank-prototype/internal/staticdata"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// StatementServiceTestSuite defines the test suite for StatementService
type StatementServiceTestSuite struct {
	suite.Suite
	service *StatementService
}

// SetupTest runs before each test
func (s *StatementServiceTestSuite) SetupTest() {
	s.service = NewStatementService(nil)
}

// TestStatementServiceSuite runs the test suite
func TestStatementServiceSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}

func (s *StatementServiceTestSuite) TestAccounts_FixedSet() {
	accounts := s.service.Accounts()

	s.Require().Len(accounts, 2)
	s.Equal(staticdata.EverydayAccountID, accounts[0].ID)
	s.Equal(staticdata.SavingsAccountID, accounts[1].ID)
	s.True(accounts[0].Balance.Equal(decimal.NewFromFloat(2450.35)))
	s.True(accounts[1].Balance.Equal(decimal.NewFromFloat(15830.00)))
}

func (s *StatementServiceTestSuite) TestAccountByID() {
	account, ok := s.service.AccountByID(staticdata.SavingsAccountID)
	s.True(ok)
	s.Equal(models.AccountTypeSavings, account.AccountType)

	_, ok = s.service.AccountByID("acc-missing")
	s.False(ok)
}

func (s *StatementServiceTestSuite) TestTransactions_NewestFirst() {
	transactions := s.service.Transactions()

	s.Require().Len(transactions, 7)
	for i := 1; i < len(transactions); i++ {
		s.False(transactions[i].Date.After(transactions[i-1].Date),
			"statement must stay in most-recent-first order")
	}
}

func (s *StatementServiceTestSuite) TestAppendDemoTransactions_MergedByDate() {
	demo := models.Transaction{
		Date:        time.Date(2025, 7, 13, 0, 0, 0, 0, time.UTC),
		Description: "Demo purchase",
		Amount:      decimal.NewFromFloat(-20.00),
		Balance:     decimal.NewFromFloat(100.00),
	}

	s.service.AppendDemoTransactions([]models.Transaction{demo})
	transactions := s.service.Transactions()

	s.Require().Len(transactions, 8)
	// Lands between the Jul 14 and Jul 12 fixed rows
	s.Equal("Demo purchase", transactions[1].Description)
}

func (s *StatementServiceTestSuite) TestAppendDemoTransactions_SkipsInvalidRows() {
	s.service.AppendDemoTransactions([]models.Transaction{
		{}, // zero date and empty description
		{
			Date:        time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
			Description: "Valid demo row",
			Amount:      decimal.NewFromFloat(-5.00),
			Balance:     decimal.NewFromFloat(50.00),
		},
	})

	s.Len(s.service.Transactions(), 8)
}

func (s *StatementServiceTestSuite) TestTransactions_ReturnsCopy() {
	first := s.service.Transactions()
	first[0].Description = "mutated"

	s.NotEqual("mutated", s.service.Transactions()[0].Description)
}
