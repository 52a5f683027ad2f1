package service

import (
	"testing"

	"github.com/efreitasn/tradedesk/internal/domain"
	"github.com/efreitasn/tradedesk/internal/store"
	"github.com/shopspring/decimal"
)

func TestSummary_Empty(t *testing.T) {
	svc := NewPortfolioService(store.NewLedgerStore())

	s := svc.Summary()
	if !s.Totals.PurchaseCost.IsZero() || s.Totals.Quantity != 0 {
		t.Errorf("Totals = {%s %d}, want {0 0}", s.Totals.PurchaseCost, s.Totals.Quantity)
	}
	if len(s.Holdings.StockItems) != 0 {
		t.Errorf("got %d stock items, want 0", len(s.Holdings.StockItems))
	}
}

func TestSummary_TracksCommits(t *testing.T) {
	ledger := store.NewLedgerStore()
	svc := NewPortfolioService(ledger)

	a, _ := ledger.Submit(domain.TransactionRecord{Symbol: "AAPL", Units: 20, PricePerUnit: decimal.NewFromInt(80), Kind: domain.TransactionBuy})
	_, _ = ledger.Submit(domain.TransactionRecord{Symbol: "MSFT", Units: 20, PricePerUnit: decimal.NewFromInt(60), Kind: domain.TransactionBuy})

	s := svc.Summary()
	if !s.Totals.PurchaseCost.Equal(decimal.NewFromInt(2800)) || s.Totals.Quantity != 40 {
		t.Errorf("Totals = {%s %d}, want {2800 40}", s.Totals.PurchaseCost, s.Totals.Quantity)
	}

	_, _ = ledger.Submit(domain.TransactionRecord{StockID: a.ID, Symbol: "AAPL", Units: 5, PricePerUnit: decimal.NewFromInt(100), Kind: domain.TransactionSell})

	s = svc.Summary()
	if !s.Totals.PurchaseCost.Equal(decimal.NewFromInt(2400)) || s.Totals.Quantity != 35 {
		t.Errorf("Totals = {%s %d}, want {2400 35}", s.Totals.PurchaseCost, s.Totals.Quantity)
	}
	if len(s.Holdings.Transactions) != 3 {
		t.Errorf("got %d transactions, want 3", len(s.Holdings.Transactions))
	}
}
