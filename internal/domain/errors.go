package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain-level error handling.
// Trade rejections travel inside engine.Decision; the handler layer maps
// ledger commit failures to HTTP status codes.
var (
	ErrMalformedQuantity    = errors.New("malformed_quantity")
	ErrUnknownSecurity      = errors.New("unknown_security")
	ErrInsufficientHoldings = errors.New("insufficient_holdings")
	ErrUnknownHoldingID     = errors.New("unknown_holding_id")
)

// ErrQuantityOutOfRange is returned for digit-only input that does not fit
// in an int64. It wraps ErrMalformedQuantity.
var ErrQuantityOutOfRange = fmt.Errorf("%w: out of range", ErrMalformedQuantity)

// ValidationError represents a request validation failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ReasonCode returns the snake_case code of a rejection error, or "" for nil.
// Unknown errors map to "internal_error".
func ReasonCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrQuantityOutOfRange):
		return "quantity_out_of_range"
	case errors.Is(err, ErrMalformedQuantity):
		return ErrMalformedQuantity.Error()
	case errors.Is(err, ErrUnknownSecurity):
		return ErrUnknownSecurity.Error()
	case errors.Is(err, ErrInsufficientHoldings):
		return ErrInsufficientHoldings.Error()
	case errors.Is(err, ErrUnknownHoldingID):
		return ErrUnknownHoldingID.Error()
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return "validation_error"
	}
	return "internal_error"
}
