package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func testSecurities() []Security {
	return []Security{
		{Symbol: "AAPL", Quote: &Quote{LatestPrice: decimal.NewFromInt(100)}},
		{Symbol: "MSFT", Quote: &Quote{LatestPrice: decimal.NewFromInt(90)}},
		{Symbol: "NOQT"},
	}
}

func TestSymbolExists(t *testing.T) {
	securities := testSecurities()

	tests := []struct {
		symbol string
		want   bool
	}{
		{"AAPL", true},
		{"aapl", true},
		{"aApL", true},
		{"msft", true},
		{"noqt", true},
		{"A", false},
		{"AAP", false},
		{"AAPLX", false},
		{" AAPL", false},
		{"AAPL ", false},
		{"", false},
		{" ", false},
		{"\t\n", false},
	}

	for _, tt := range tests {
		if got := SymbolExists(securities, tt.symbol); got != tt.want {
			t.Errorf("SymbolExists(%q) = %v, want %v", tt.symbol, got, tt.want)
		}
	}
}

func TestSymbolExists_EmptyList(t *testing.T) {
	if SymbolExists(nil, "AAPL") {
		t.Error("SymbolExists(nil, AAPL) = true, want false")
	}
}

func TestSymbolExists_WhitespaceSymbolInList(t *testing.T) {
	securities := []Security{{Symbol: " "}, {Symbol: ""}}
	if SymbolExists(securities, " ") {
		t.Error(`SymbolExists(" ") = true, want false`)
	}
	if SymbolExists(securities, "") {
		t.Error(`SymbolExists("") = true, want false`)
	}
}

func TestFindSecurity(t *testing.T) {
	s, ok := FindSecurity(testSecurities(), "msft")
	if !ok {
		t.Fatal("FindSecurity(msft) not found")
	}
	if s.Symbol != "MSFT" {
		t.Errorf("Symbol = %q, want MSFT", s.Symbol)
	}
	if !s.HasQuote() {
		t.Fatal("HasQuote() = false, want true")
	}
	if !s.Quote.LatestPrice.Equal(decimal.NewFromInt(90)) {
		t.Errorf("LatestPrice = %s, want 90", s.Quote.LatestPrice)
	}

	s, ok = FindSecurity(testSecurities(), "noqt")
	if !ok {
		t.Fatal("FindSecurity(noqt) not found")
	}
	if s.HasQuote() {
		t.Error("HasQuote() = true for security without quote")
	}
}

func TestCanonicalSymbol(t *testing.T) {
	if got := CanonicalSymbol("aapl"); got != "AAPL" {
		t.Errorf("CanonicalSymbol(aapl) = %q, want AAPL", got)
	}
	if got := CanonicalSymbol(" aapl"); got != " AAPL" {
		t.Errorf("CanonicalSymbol(%q) = %q, want %q", " aapl", got, " AAPL")
	}
}
