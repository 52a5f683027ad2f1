package store

import (
	"fmt"
	"testing"

	"github.com/efreitasn/tradedesk/internal/domain"
	"github.com/shopspring/decimal"
	"pgregory.net/rapid"
)

// TestProperty_LedgerTotalsTrackCommits replays random buys and sells and
// checks that the snapshot's aggregates always equal the units bought minus
// the units sold, and that no stock item ever goes negative.
func TestProperty_LedgerTotalsTrackCommits(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := newTestLedger()
		var held int64
		steps := rapid.IntRange(1, 40).Draw(t, "steps")

		for i := 0; i < steps; i++ {
			snap := l.Snapshot()
			doSell := len(snap.StockItems) > 0 && rapid.Bool().Draw(t, fmt.Sprintf("sell-%d", i))

			if doSell {
				item := rapid.SampledFrom(snap.StockItems).Draw(t, fmt.Sprintf("item-%d", i))
				units := rapid.Int64Range(1, item.Units+5).Draw(t, fmt.Sprintf("sellUnits-%d", i))
				_, err := l.Submit(sell(item.ID, item.Symbol, units, 1))
				if (err == nil) != (units <= item.Units) {
					t.Fatalf("sell %d of %d: err=%v", units, item.Units, err)
				}
				if err == nil {
					held -= units
				}
			} else {
				units := rapid.Int64Range(1, 1000).Draw(t, fmt.Sprintf("buyUnits-%d", i))
				cents := rapid.Int64Range(0, 100_000).Draw(t, fmt.Sprintf("cents-%d", i))
				rec := domain.TransactionRecord{
					Symbol:       rapid.SampledFrom([]string{"AAPL", "MSFT"}).Draw(t, fmt.Sprintf("symbol-%d", i)),
					Units:        units,
					PricePerUnit: decimal.New(cents, -2),
					Kind:         domain.TransactionBuy,
				}
				if _, err := l.Submit(rec); err != nil {
					t.Fatalf("buy failed: %v", err)
				}
				held += units
			}

			snap = l.Snapshot()
			for _, item := range snap.StockItems {
				if item.Units <= 0 {
					t.Fatalf("stock item %s has %d units", item.ID, item.Units)
				}
			}
			if got := domain.AggregateTotals(snap).Quantity; got != held {
				t.Fatalf("AggregateTotals.Quantity = %d, want %d", got, held)
			}
		}
	})
}
