package shipping

// ============================================================================
// SHIPPING ERROR CODES
// ============================================================================
// These constants mirror domain error codes to avoid circular imports.
// The handler layer maps these to HTTP status codes.

const (
	codeInternal = "internal"
	codeInvalid  = "invalid"
)

// ShippingError represents a shipping-specific error with a code and message.
type ShippingError struct {
	Code    string
	Message string
}

func (e *ShippingError) Error() string {
	return e.Message
}

// ErrorCode returns the error code for HTTP status mapping.
func (e *ShippingError) ErrorCode() string {
	return e.Code
}

var (
	// ErrInvalidFee is returned when a configured fee or threshold is negative.
	ErrInvalidFee = &ShippingError{Code: codeInvalid, Message: "Shipping fee and threshold must not be negative"}

	// ErrNegativeAmount is returned when a quoted amount is negative.
	// This is a caller contract violation, not a user-facing condition.
	ErrNegativeAmount = &ShippingError{Code: codeInternal, Message: "Quoted amounts must not be negative"}
)
