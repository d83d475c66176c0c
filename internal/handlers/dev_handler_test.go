package handlers

import (
	"net/http"
	"testing"

	"netbank-prototype/internal/services"

	"github.com/stretchr/testify/suite"
)

// DevHandlerTestSuite defines the test suite for DevHandler
type DevHandlerTestSuite struct {
	suite.Suite
	env     *testEnv
	handler *DevHandler
}

// SetupTest runs before each test
func (s *DevHandlerTestSuite) SetupTest() {
	s.env = newTestEnv()
	s.handler = NewDevHandler(services.NewDemoDataGenerator(1), s.env.statement)
}

// TestDevHandlerSuite runs the test suite
func TestDevHandlerSuite(t *testing.T) {
	suite.Run(t, new(DevHandlerTestSuite))
}

func (s *DevHandlerTestSuite) TestGenerateDemoData_AppendsRows() {
	before := len(s.env.statement.Transactions())

	c, rec := s.env.request(http.MethodPost, "/api/v1/dev/demo-data", `{"count":5,"days":14}`)

	s.NoError(s.handler.GenerateDemoData(c))
	s.Equal(http.StatusCreated, rec.Code)
	s.Len(s.env.statement.Transactions(), before+5)
}

func (s *DevHandlerTestSuite) TestGenerateDemoData_CountOutOfRange() {
	c, rec := s.env.request(http.MethodPost, "/api/v1/dev/demo-data", `{"count":500}`)

	err := s.handler.GenerateDemoData(c)
	if err != nil {
		s.env.echo.HTTPErrorHandler(err, c)
	}

	s.Equal(http.StatusBadRequest, rec.Code)
}
