package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Quote carries the live market data attached to a security.
type Quote struct {
	LatestPrice decimal.Decimal
}

// Security is a tradable instrument identified by its canonical
// (uppercase) symbol. Snapshots are supplied by the securities feed and
// never mutated here.
type Security struct {
	Symbol string
	Quote  *Quote // nil when no quote has been received yet
}

// HasQuote reports whether the security carries quote data.
func (s Security) HasQuote() bool {
	return s.Quote != nil
}

// CanonicalSymbol returns the canonical form of a ticker symbol. Surrounding
// whitespace is kept: lookups are whitespace-sensitive.
func CanonicalSymbol(symbol string) string {
	return strings.ToUpper(symbol)
}

// FindSecurity returns the security whose symbol equals the uppercased
// symbol. Empty and whitespace-only symbols never match.
func FindSecurity(securities []Security, symbol string) (Security, bool) {
	if strings.TrimSpace(symbol) == "" {
		return Security{}, false
	}
	upper := CanonicalSymbol(symbol)
	for _, s := range securities {
		if s.Symbol == upper {
			return s, true
		}
	}
	return Security{}, false
}

// SymbolExists reports whether symbol names a security in securities,
// case-insensitively.
func SymbolExists(securities []Security, symbol string) bool {
	_, ok := FindSecurity(securities, symbol)
	return ok
}
