package handlers

import (
	"fmt"

	"netbank-prototype/internal/validation"

	"github.com/labstack/echo/v4"
)

// fieldErrorDetails flattens form validation errors into the details list of
// the standard error response, preserving rule order
func fieldErrorDetails(errs []validation.FieldError) []string {
	details := make([]string, 0, len(errs))
	for _, e := range errs {
		details = append(details, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return details
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}
