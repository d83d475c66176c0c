package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// AccountHandlerTestSuite defines the test suite for AccountHandler
type AccountHandlerTestSuite struct {
	suite.Suite
	env     *testEnv
	handler *AccountHandler
}

// SetupTest runs before each test
func (s *AccountHandlerTestSuite) SetupTest() {
	s.env = newTestEnv()
	s.handler = NewAccountHandler(s.env.statement, s.env.state)
}

// TestAccountHandlerSuite runs the test suite
func TestAccountHandlerSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}

func (s *AccountHandlerTestSuite) TestList_RequiresSession() {
	c, rec := s.env.request(http.MethodGet, "/api/v1/accounts", "")

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AccountHandlerTestSuite) TestList_ReturnsFixedAccounts() {
	s.Require().NoError(s.env.store.SetAuthenticated(true))

	c, rec := s.env.request(http.MethodGet, "/api/v1/accounts", "")

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusOK, rec.Code)

	var response SuccessResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))

	accounts := response.Data.([]interface{})
	s.Require().Len(accounts, 2)

	first := accounts[0].(map[string]interface{})
	s.Equal("Everyday Account", first["name"])
	s.Equal("$2,450.35", first["balanceFormatted"])
}

func (s *AccountHandlerTestSuite) TestGet_UnknownAccount() {
	s.Require().NoError(s.env.store.SetAuthenticated(true))

	c, rec := s.env.request(http.MethodGet, "/api/v1/accounts/acc-missing", "")
	c.SetParamNames("id")
	c.SetParamValues("acc-missing")

	s.NoError(s.handler.Get(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *AccountHandlerTestSuite) TestSummary_TotalsBalances() {
	s.Require().NoError(s.env.store.SetAuthenticated(true))

	c, rec := s.env.request(http.MethodGet, "/api/v1/accounts/summary", "")

	s.NoError(s.handler.Summary(c))
	s.Equal(http.StatusOK, rec.Code)

	var response SuccessResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))

	summary := response.Data.(map[string]interface{})
	// 2450.35 + 15830.00
	s.Equal("18280.35", summary["totalBalance"])
	s.Equal("$18,280.35", summary["totalFormatted"])
	s.Len(summary["accounts"].([]interface{}), 2)
}
