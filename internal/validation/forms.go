package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"netbank-prototype/internal/models"
)

// Field names shared with the rendered form controls
const (
	FieldCustomerID    = "customerId"
	FieldPassword      = "password"
	FieldDestination   = "destination"
	FieldAmount        = "amount"
	FieldDescription   = "description"
	FieldSourceAccount = "sourceAccount"
)

// FieldError is a single violated rule, tied to the offending form field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the outcome of a form validation pass. Every violated rule is
// collected (not just the first); the interface surfaces the first error and
// marks each offending field invalid. Fields carries sanitized echoes of the
// submitted values for redisplay.
type Result struct {
	IsValid bool              `json:"is_valid"`
	Errors  []FieldError      `json:"errors"`
	Fields  map[string]string `json:"fields"`
}

// FirstError returns the message shown inline and as a notification,
// preserving the report-all-internally, show-first display policy
func (r *Result) FirstError() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

// FieldMessage returns the first message for a specific field, or "" if the
// field passed. Used for per-field revalidation on blur.
func (r *Result) FieldMessage(field string) string {
	for _, e := range r.Errors {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// InvalidFields lists the offending fields in rule order, for marking field
// validity state on the rendered controls
func (r *Result) InvalidFields() []string {
	seen := make(map[string]bool, len(r.Errors))
	fields := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		if !seen[e.Field] {
			seen[e.Field] = true
			fields = append(fields, e.Field)
		}
	}
	return fields
}

func (r *Result) addError(field, message string) {
	r.IsValid = false
	r.Errors = append(r.Errors, FieldError{Field: field, Message: message})
}

// TransferResult extends Result with the parsed request when every rule passed
type TransferResult struct {
	Result
	Request *models.TransferRequest `json:"request,omitempty"`
}

// AccountLookup resolves a source account identifier to its fixed account
type AccountLookup func(id string) (models.Account, bool)

// FormValidator owns the pure login and transfer validation procedures.
// Limits are fixed at construction from configuration.
type FormValidator struct {
	passwordMinLength    int
	descriptionMaxLength int
	transferLimit        decimal.Decimal
	lookupAccount        AccountLookup
}

// NewFormValidator creates a form validator with the given limits
func NewFormValidator(passwordMinLength int, transferLimit decimal.Decimal, lookup AccountLookup) *FormValidator {
	return &FormValidator{
		passwordMinLength:    passwordMinLength,
		descriptionMaxLength: 40,
		transferLimit:        transferLimit,
		lookupAccount:        lookup,
	}
}

// ValidateLogin checks the login form. All violated rules are returned; the
// password is validated but never echoed back.
func (v *FormValidator) ValidateLogin(customerID, password string) Result {
	result := Result{
		IsValid: true,
		Errors:  []FieldError{},
		Fields: map[string]string{
			FieldCustomerID: Sanitize(strings.TrimSpace(customerID)),
		},
	}

	if strings.TrimSpace(customerID) == "" {
		result.addError(FieldCustomerID, "Customer ID is required")
	}

	if strings.TrimSpace(password) == "" {
		result.addError(FieldPassword, "Password is required")
	} else if len([]rune(password)) < v.passwordMinLength {
		result.addError(FieldPassword,
			fmt.Sprintf("Password must be at least %d characters", v.passwordMinLength))
	}

	return result
}

// ValidateTransfer checks the transfer form. All violated rules are
// returned, plus sanitized field values and, when fully valid, the parsed
// transfer request.
func (v *FormValidator) ValidateTransfer(destination, amountRaw, description, sourceAccountID string) TransferResult {
	destination = strings.TrimSpace(destination)
	description = strings.TrimSpace(description)

	result := TransferResult{
		Result: Result{
			IsValid: true,
			Errors:  []FieldError{},
			Fields: map[string]string{
				FieldDestination:   Sanitize(destination),
				FieldAmount:        Sanitize(strings.TrimSpace(amountRaw)),
				FieldDescription:   Sanitize(description),
				FieldSourceAccount: Sanitize(sourceAccountID),
			},
		},
	}

	if destination == "" {
		result.addError(FieldDestination, "Destination account is required")
	} else if !bsbAccountPattern.MatchString(destination) {
		result.addError(FieldDestination,
			"Destination must be a valid BSB and account number (e.g. 062-000 12345678)")
	}

	account, accountKnown := v.lookupAccount(sourceAccountID)
	if !accountKnown {
		result.addError(FieldSourceAccount, "Selected source account does not exist")
	}

	amount, parsed := parseAmount(amountRaw)
	switch {
	case !parsed:
		result.addError(FieldAmount, "Please enter a valid amount")
	case !amount.IsPositive():
		result.addError(FieldAmount, "Amount must be greater than $0.00")
	default:
		if accountKnown && !account.CanCover(amount) {
			result.addError(FieldAmount,
				fmt.Sprintf("Insufficient funds, available: %s", FormatMoney(account.Balance)))
		}
		if amount.GreaterThan(v.transferLimit) {
			result.addError(FieldAmount,
				fmt.Sprintf("Transfer limit is %s per transaction", FormatMoney(v.transferLimit)))
		}
	}

	if len([]rune(description)) > v.descriptionMaxLength {
		result.addError(FieldDescription,
			fmt.Sprintf("Description must be %d characters or less", v.descriptionMaxLength))
	}

	if result.IsValid {
		result.Request = &models.TransferRequest{
			Destination:     destination,
			Amount:          amount,
			Description:     description,
			SourceAccountID: sourceAccountID,
		}
	}

	return result
}

// parseAmount parses a user-typed amount, tolerating a leading dollar sign
// and thousands separators
func parseAmount(raw string) (decimal.Decimal, bool) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// FormatMoney renders a decimal as a dollar amount with thousands
// separators, e.g. 10000 -> "$10,000.00"
func FormatMoney(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	parts := strings.SplitN(fixed, ".", 2)

	intPart := parts[0]
	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}

	formatted := "$" + b.String() + "." + parts[1]
	if amount.IsNegative() {
		formatted = "-" + formatted
	}
	return formatted
}
