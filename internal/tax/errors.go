package tax

// ============================================================================
// TAX ERROR CODES
// ============================================================================
// These constants mirror domain error codes to avoid circular imports.
// The handler layer maps these to HTTP status codes.

const (
	codeInternal = "internal"
	codeInvalid  = "invalid"
)

// TaxError represents a tax-specific error with a code and message.
type TaxError struct {
	Code    string
	Message string
}

func (e *TaxError) Error() string {
	return e.Message
}

// ErrorCode returns the error code for HTTP status mapping.
func (e *TaxError) ErrorCode() string {
	return e.Code
}

var (
	// ErrInvalidRate is returned when a configured rate is outside [0,1].
	ErrInvalidRate = &TaxError{Code: codeInvalid, Message: "Tax rate must be a fraction between 0 and 1"}

	// ErrNegativeAmount is returned when the taxable amount is negative.
	// This is a caller contract violation, not a user-facing condition.
	ErrNegativeAmount = &TaxError{Code: codeInternal, Message: "Taxable amount must not be negative"}
)
