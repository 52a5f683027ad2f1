package domain

import (
	"regexp"
	"strconv"
)

// BuyErrorMessage is shown next to the buy form when the buy error
// indicator is raised.
const BuyErrorMessage = "Please enter a whole number, e.g. 10000."

var (
	quantityRegex = regexp.MustCompile(`^[0-9]+$`)
	digitRegex    = regexp.MustCompile(`^[0-9]$`)
)

// IsWholeNumber reports whether input consists of one or more ASCII digits
// and nothing else.
func IsWholeNumber(input string) bool {
	return quantityRegex.MatchString(input)
}

// ParseQuantity converts raw trade-quantity text into a non-negative whole
// number of units. Signs, decimal points, exponents, whitespace and empty
// input are rejected with ErrMalformedQuantity. Digit-only input that does
// not fit in an int64 is rejected with ErrQuantityOutOfRange.
func ParseQuantity(input string) (int64, error) {
	if !IsWholeNumber(input) {
		return 0, ErrMalformedQuantity
	}
	units, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return 0, ErrQuantityOutOfRange
	}
	return units, nil
}

// FilterKeystroke applies the quantity field's per-keystroke filter: when
// typed is not exactly one ASCII digit, the last character of value is
// dropped. Otherwise value is returned unchanged.
func FilterKeystroke(value, typed string) string {
	if digitRegex.MatchString(typed) || value == "" {
		return value
	}
	runes := []rune(value)
	return string(runes[:len(runes)-1])
}
