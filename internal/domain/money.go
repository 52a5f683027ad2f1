package domain

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// PriceFromFloat converts a float64 price received at the API boundary to a
// decimal. NaN, infinities and negative values are rejected.
func PriceFromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, fmt.Errorf("price must be a finite number")
	}
	if f < 0 {
		return decimal.Zero, fmt.Errorf("price must be >= 0")
	}
	return decimal.NewFromFloat(f), nil
}

// IsKnownCurrency reports whether code is an ISO 4217 currency code.
func IsKnownCurrency(code string) bool {
	return money.GetCurrency(code) != nil
}

var (
	minInt64 = decimal.NewFromInt(math.MinInt64)
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
)

// FormatMoney renders amount in the given currency, rounded to the
// currency's minor unit (e.g. "$2,800.00"). Amounts whose minor units do
// not fit in an int64 are formatted from their decimal digits with the same
// currency rules.
func FormatMoney(amount decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return amount.StringFixed(2) + " " + code
	}
	f := cur.Formatter()
	minor := amount.Shift(int32(f.Fraction)).Round(0)
	if minor.GreaterThanOrEqual(minInt64) && minor.LessThanOrEqual(maxInt64) {
		return money.New(minor.IntPart(), code).Display()
	}
	return formatMinorDigits(f, minor)
}

// formatMinorDigits applies f's grouping, decimal separator and template to
// an integral amount of minor units.
func formatMinorDigits(f *money.Formatter, minor decimal.Decimal) string {
	sa := minor.Abs().String()
	if len(sa) <= f.Fraction {
		sa = strings.Repeat("0", f.Fraction-len(sa)+1) + sa
	}
	if f.Thousand != "" {
		for i := len(sa) - f.Fraction - 3; i > 0; i -= 3 {
			sa = sa[:i] + f.Thousand + sa[i:]
		}
	}
	if f.Fraction > 0 {
		sa = sa[:len(sa)-f.Fraction] + f.Decimal + sa[len(sa)-f.Fraction:]
	}
	sa = strings.Replace(f.Template, "1", sa, 1)
	sa = strings.Replace(sa, "$", f.Grapheme, 1)
	if minor.IsNegative() {
		sa = "-" + sa
	}
	return sa
}
