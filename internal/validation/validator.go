package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"netbank-prototype/internal/models"
)

// bsbAccountPattern models an Australian BSB plus account number:
// exactly 3 digits, optional hyphen, exactly 3 digits, optional single
// space, then 6-9 digits.
var bsbAccountPattern = regexp.MustCompile(`^\d{3}-?\d{3}\s?\d{6,9}$`)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("bsb_account", validateBSBAccount)
	_ = v.RegisterValidation("screen_id", validateScreenID)
	_ = v.RegisterValidation("severity", validateSeverity)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateBSBAccount validates the destination routing+account number format
func validateBSBAccount(fl validator.FieldLevel) bool {
	destination := fl.Field().String()
	if destination == "" {
		return false
	}

	return bsbAccountPattern.MatchString(destination)
}

// validateScreenID validates that a screen identifier belongs to the closed enumeration
func validateScreenID(fl validator.FieldLevel) bool {
	return models.IsValidScreen(models.Screen(fl.Field().String()))
}

// validateSeverity validates that a notification severity is one of the allowed values
func validateSeverity(fl validator.FieldLevel) bool {
	return models.IsValidSeverity(fl.Field().String())
}
