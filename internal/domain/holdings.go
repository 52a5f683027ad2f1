package domain

import "github.com/shopspring/decimal"

// StockItem is one acquisition lot held in the ledger.
type StockItem struct {
	ID                         string
	Symbol                     string
	Units                      int64
	PricePerUnitOnPurchaseDate decimal.Decimal
}

// Cost returns Units × PricePerUnitOnPurchaseDate.
func (i StockItem) Cost() decimal.Decimal {
	return i.PricePerUnitOnPurchaseDate.Mul(decimal.NewFromInt(i.Units))
}

// HoldingsSnapshot is the ledger's current view of stock items and the
// transactions that produced them. It is derived by the ledger and only
// read here.
type HoldingsSnapshot struct {
	StockItems   []StockItem
	Transactions []TransactionRecord
}

// Totals holds the portfolio-wide aggregates of a snapshot.
type Totals struct {
	PurchaseCost decimal.Decimal
	Quantity     int64
}

// FindStockItem returns the stock item with the given id.
func (s HoldingsSnapshot) FindStockItem(id string) (StockItem, bool) {
	if id == "" {
		return StockItem{}, false
	}
	for _, item := range s.StockItems {
		if item.ID == id {
			return item, true
		}
	}
	return StockItem{}, false
}

// CheckUnits reports why targetUnits of stock item id can or cannot be
// sold: nil when the item holds at least targetUnits, ErrUnknownHoldingID
// when no such item exists and ErrInsufficientHoldings otherwise. Only the
// named item counts, never other lots of the same symbol.
func (s HoldingsSnapshot) CheckUnits(id string, targetUnits int64) error {
	item, ok := s.FindStockItem(id)
	if !ok {
		return ErrUnknownHoldingID
	}
	if targetUnits < 0 || item.Units < targetUnits {
		return ErrInsufficientHoldings
	}
	return nil
}

// HasSufficientUnits reports whether stock item id holds at least
// targetUnits. Selling exactly the full holding is allowed.
func HasSufficientUnits(snapshot HoldingsSnapshot, id string, targetUnits int64) bool {
	return snapshot.CheckUnits(id, targetUnits) == nil
}

// AggregateTotals folds the snapshot's stock items into the total purchase
// cost and total quantity held. Raw transactions are not consulted.
func AggregateTotals(snapshot HoldingsSnapshot) Totals {
	totals := Totals{PurchaseCost: decimal.Zero}
	for _, item := range snapshot.StockItems {
		totals.PurchaseCost = totals.PurchaseCost.Add(item.Cost())
		totals.Quantity += item.Units
	}
	return totals
}
