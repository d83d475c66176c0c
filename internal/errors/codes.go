package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationTooLong       ErrorCode = "VALIDATION_005"
)

// Login error codes (LOGIN_*)
const (
	LoginCustomerIDRequired ErrorCode = "LOGIN_001"
	LoginPasswordRequired   ErrorCode = "LOGIN_002"
	LoginPasswordTooShort   ErrorCode = "LOGIN_003"
	LoginValidationFailed   ErrorCode = "LOGIN_004"
)

// Transfer error codes (TRANSFER_*)
const (
	TransferDestinationRequired ErrorCode = "TRANSFER_001"
	TransferDestinationInvalid  ErrorCode = "TRANSFER_002"
	TransferAmountInvalid       ErrorCode = "TRANSFER_003"
	TransferAmountNotPositive   ErrorCode = "TRANSFER_004"
	TransferInsufficientFunds   ErrorCode = "TRANSFER_005"
	TransferLimitExceeded       ErrorCode = "TRANSFER_006"
	TransferDescriptionTooLong  ErrorCode = "TRANSFER_007"
	TransferUnknownAccount      ErrorCode = "TRANSFER_008"
)

// Screen error codes (SCREEN_*)
const (
	ScreenUnknown      ErrorCode = "SCREEN_001"
	ScreenUnauthorized ErrorCode = "SCREEN_002"
)

// Session error codes (SESSION_*)
const (
	SessionNotAuthenticated ErrorCode = "SESSION_001"
	SessionStorageDegraded  ErrorCode = "SESSION_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemStorageError       ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
	SystemNotFound           ErrorCode = "SYSTEM_005"
	SystemForbidden          ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationTooLong:       "Field value exceeds the maximum length",

	// Login errors
	LoginCustomerIDRequired: "Customer ID is required",
	LoginPasswordRequired:   "Password is required",
	LoginPasswordTooShort:   "Password is too short",
	LoginValidationFailed:   "Please correct the highlighted fields and try again",

	// Transfer errors
	TransferDestinationRequired: "Destination account is required",
	TransferDestinationInvalid:  "Destination must be a valid BSB and account number (e.g. 062-000 12345678)",
	TransferAmountInvalid:       "Please enter a valid amount",
	TransferAmountNotPositive:   "Amount must be greater than $0.00",
	TransferInsufficientFunds:   "Insufficient funds in the selected account",
	TransferLimitExceeded:       "Transfer limit is $10,000.00 per transaction",
	TransferDescriptionTooLong:  "Description must be 40 characters or less",
	TransferUnknownAccount:      "Selected source account does not exist",

	// Screen errors
	ScreenUnknown:      "Unknown screen identifier",
	ScreenUnauthorized: "Sign in to view this screen",

	// Session errors
	SessionNotAuthenticated: "Not authenticated",
	SessionStorageDegraded:  "Session storage unavailable, using in-memory session",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemStorageError:       "Session storage error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemNotFound:           "Resource not found",
	SystemForbidden:          "Access denied",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
