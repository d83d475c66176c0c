package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"netbank-prototype/internal/models"
)

// FormsTestSuite is the test suite for the login and transfer form validators
type FormsTestSuite struct {
	suite.Suite
	validator *FormValidator
}

// SetupTest runs before each test
func (s *FormsTestSuite) SetupTest() {
	accounts := map[string]models.Account{
		"acc-everyday": {
			ID:          "acc-everyday",
			Name:        "Everyday Account",
			AccountType: models.AccountTypeEveryday,
			Number:      "062-000 13572468",
			Balance:     decimal.NewFromFloat(2450.35),
		},
		"acc-savings": {
			ID:          "acc-savings",
			Name:        "NetSaver Account",
			AccountType: models.AccountTypeSavings,
			Number:      "062-000 24681357",
			Balance:     decimal.NewFromFloat(15830.00),
		},
	}

	s.validator = NewFormValidator(4, decimal.NewFromInt(10000), func(id string) (models.Account, bool) {
		a, ok := accounts[id]
		return a, ok
	})
}

// TestFormsTestSuite runs the test suite
func TestFormsTestSuite(t *testing.T) {
	suite.Run(t, new(FormsTestSuite))
}

// TestValidateLogin_RequiredFields tests required-field rules for empty and
// whitespace-only values
func (s *FormsTestSuite) TestValidateLogin_RequiredFields() {
	testCases := []struct {
		name       string
		customerID string
		password   string
		expected   []string
	}{
		{
			name:     "both empty",
			expected: []string{"Customer ID is required", "Password is required"},
		},
		{
			name:       "customer ID whitespace only",
			customerID: "   ",
			password:   "abcd",
			expected:   []string{"Customer ID is required"},
		},
		{
			name:       "password empty",
			customerID: "A1",
			expected:   []string{"Password is required"},
		},
		{
			name:       "password whitespace only",
			customerID: "A1",
			password:   "    ",
			expected:   []string{"Password is required"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			result := s.validator.ValidateLogin(tc.customerID, tc.password)

			s.False(result.IsValid)
			s.Len(result.Errors, len(tc.expected))
			for i, message := range tc.expected {
				s.Equal(message, result.Errors[i].Message)
			}
		})
	}
}

// TestValidateLogin_PasswordMinLength tests lengths 1-3 fail and 4+ pass
func (s *FormsTestSuite) TestValidateLogin_PasswordMinLength() {
	for _, password := range []string{"a", "ab", "abc"} {
		result := s.validator.ValidateLogin("A1", password)
		s.False(result.IsValid, "password %q must fail", password)
		s.Equal("Password must be at least 4 characters", result.FirstError())
	}

	for _, password := range []string{"abcd", "abcde", "correct horse"} {
		result := s.validator.ValidateLogin("A1", password)
		s.True(result.IsValid, "password %q must pass", password)
		s.Empty(result.Errors)
	}
}

// TestValidateLogin_EchoesSanitizedCustomerIDOnly tests echo behavior
func (s *FormsTestSuite) TestValidateLogin_EchoesSanitizedCustomerIDOnly() {
	result := s.validator.ValidateLogin(`<b>A1</b>`, "hunter2")

	s.Equal("&lt;b&gt;A1&lt;/b&gt;", result.Fields[FieldCustomerID])
	_, echoed := result.Fields[FieldPassword]
	s.False(echoed, "password must never be echoed")
}

// TestValidateLogin_ReportsAllErrors tests that every violated rule is collected
func (s *FormsTestSuite) TestValidateLogin_ReportsAllErrors() {
	result := s.validator.ValidateLogin("", "")

	s.Len(result.Errors, 2)
	s.Equal("Customer ID is required", result.FirstError())
	s.Equal([]string{FieldCustomerID, FieldPassword}, result.InvalidFields())
	s.Equal("Password is required", result.FieldMessage(FieldPassword))
	s.Empty(result.FieldMessage(FieldDestination))
}

// TestValidateTransfer_DestinationFormat tests the BSB-account pattern
func (s *FormsTestSuite) TestValidateTransfer_DestinationFormat() {
	valid := []string{
		"062-000 12345678",
		"062000 12345678",
		"062-000123456",
		"062000123456789",
		"123-456 123456",
	}
	for _, destination := range valid {
		result := s.validator.ValidateTransfer(destination, "50.00", "", "acc-everyday")
		s.True(result.IsValid, "destination %q must pass", destination)
	}

	invalid := []string{
		"62-000 12345678",    // 2-digit BSB prefix
		"062-00 12345678",    // 2-digit BSB suffix
		"062-000 12345",      // 5-digit account number
		"062-000 1234567890", // 10-digit account number
		"062-000-12345678",   // hyphen before account number
		"062-000  12345678",  // double space
		"abc-def 12345678",   // letters
	}
	for _, destination := range invalid {
		result := s.validator.ValidateTransfer(destination, "50.00", "", "acc-everyday")
		s.False(result.IsValid, "destination %q must fail", destination)
		s.Contains(result.FirstError(), "valid BSB and account number")
	}
}

// TestValidateTransfer_DestinationRequired tests the required rule
func (s *FormsTestSuite) TestValidateTransfer_DestinationRequired() {
	result := s.validator.ValidateTransfer("  ", "50.00", "", "acc-everyday")

	s.False(result.IsValid)
	s.Equal("Destination account is required", result.FirstError())
}

// TestValidateTransfer_AmountRules tests parse, positivity, balance, and ceiling bounds
func (s *FormsTestSuite) TestValidateTransfer_AmountRules() {
	testCases := []struct {
		name     string
		amount   string
		expected string
	}{
		{"unparseable", "fifty", "Please enter a valid amount"},
		{"empty", "", "Please enter a valid amount"},
		{"zero", "0", "Amount must be greater than $0.00"},
		{"negative", "-5.00", "Amount must be greater than $0.00"},
		{"exceeds balance", "2450.36", "Insufficient funds, available: $2,450.35"},
		{"exceeds limit", "15000", "Transfer limit is $10,000.00 per transaction"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			result := s.validator.ValidateTransfer("062-000 12345678", tc.amount, "", "acc-everyday")

			s.False(result.IsValid)
			s.Contains(messagesOf(result.Result), tc.expected)
			s.Nil(result.Request)
		})
	}
}

// TestValidateTransfer_AmountWithinAllBounds tests a fully valid submission
func (s *FormsTestSuite) TestValidateTransfer_AmountWithinAllBounds() {
	result := s.validator.ValidateTransfer("062-000 12345678", "50.00", "Rent split", "acc-everyday")

	s.True(result.IsValid)
	s.Empty(result.Errors)
	s.Require().NotNil(result.Request)
	s.True(result.Request.Amount.Equal(decimal.NewFromFloat(50.00)))
	s.Equal("062-000 12345678", result.Request.Destination)
	s.Equal("acc-everyday", result.Request.SourceAccountID)
}

// TestValidateTransfer_LimitFromLargerAccount tests the ceiling independent of balance
func (s *FormsTestSuite) TestValidateTransfer_LimitFromLargerAccount() {
	// Savings holds $15,830 so only the per-transaction ceiling can reject $12,000
	result := s.validator.ValidateTransfer("062-000 12345678", "12000", "", "acc-savings")

	s.False(result.IsValid)
	s.Equal([]string{"Transfer limit is $10,000.00 per transaction"}, messagesOf(result.Result))

	withinLimit := s.validator.ValidateTransfer("062-000 12345678", "10000", "", "acc-savings")
	s.True(withinLimit.IsValid, "amount equal to the ceiling must pass")
}

// TestValidateTransfer_AmountFormatting tests tolerant amount parsing
func (s *FormsTestSuite) TestValidateTransfer_AmountFormatting() {
	for _, amount := range []string{"$50.00", "1,250.75", "$1,250.75", " 50 "} {
		result := s.validator.ValidateTransfer("062-000 12345678", amount, "", "acc-everyday")
		s.True(result.IsValid, "amount %q must parse", amount)
	}
}

// TestValidateTransfer_DescriptionLength tests the optional 40-character bound
func (s *FormsTestSuite) TestValidateTransfer_DescriptionLength() {
	ok := s.validator.ValidateTransfer("062-000 12345678", "50.00",
		"exactly forty characters of description!", "acc-everyday")
	s.True(ok.IsValid)

	tooLong := s.validator.ValidateTransfer("062-000 12345678", "50.00",
		"this description runs past the forty char bound", "acc-everyday")
	s.False(tooLong.IsValid)
	s.Equal("Description must be 40 characters or less", tooLong.FirstError())

	empty := s.validator.ValidateTransfer("062-000 12345678", "50.00", "", "acc-everyday")
	s.True(empty.IsValid, "description is optional")
}

// TestValidateTransfer_UnknownSourceAccount tests rejection of unknown accounts
func (s *FormsTestSuite) TestValidateTransfer_UnknownSourceAccount() {
	result := s.validator.ValidateTransfer("062-000 12345678", "50.00", "", "acc-missing")

	s.False(result.IsValid)
	s.Equal("Selected source account does not exist", result.FieldMessage(FieldSourceAccount))
}

// TestValidateTransfer_ReportsAllErrors tests the collect-all policy across fields
func (s *FormsTestSuite) TestValidateTransfer_ReportsAllErrors() {
	result := s.validator.ValidateTransfer("bogus", "-1",
		"this description also runs past the forty character bound", "acc-everyday")

	s.False(result.IsValid)
	s.Equal([]string{FieldDestination, FieldAmount, FieldDescription}, result.InvalidFields())
	s.Contains(result.FirstError(), "valid BSB and account number")
}

// TestValidateTransfer_EchoesSanitizedFields tests sanitized redisplay values
func (s *FormsTestSuite) TestValidateTransfer_EchoesSanitizedFields() {
	result := s.validator.ValidateTransfer(`<script>`, "50.00", `"quoted" & more`, "acc-everyday")

	s.Equal("&lt;script&gt;", result.Fields[FieldDestination])
	s.Equal("&#34;quoted&#34; &amp; more", result.Fields[FieldDescription])
}

// TestFormatMoney tests dollar formatting with thousands separators
func (s *FormsTestSuite) TestFormatMoney() {
	testCases := []struct {
		amount   float64
		expected string
	}{
		{0, "$0.00"},
		{50, "$50.00"},
		{999.99, "$999.99"},
		{1000, "$1,000.00"},
		{10000, "$10,000.00"},
		{2450.35, "$2,450.35"},
		{1234567.89, "$1,234,567.89"},
		{-85.5, "-$85.50"},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, FormatMoney(decimal.NewFromFloat(tc.amount)))
	}
}

func messagesOf(r Result) []string {
	out := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		out = append(out, e.Message)
	}
	return out
}
