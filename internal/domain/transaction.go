package domain

import "github.com/shopspring/decimal"

// TransactionKind distinguishes buys from sells.
type TransactionKind string

const (
	TransactionBuy  TransactionKind = "buy"
	TransactionSell TransactionKind = "sell"
)

// TransactionRecord is an immutable request/fact for one buy or sell. The
// ledger assigns ID on commit; StockID names the sold stock item and is
// empty for buys.
type TransactionRecord struct {
	ID           string
	StockID      string
	Symbol       string
	Units        int64
	PricePerUnit decimal.Decimal
	Kind         TransactionKind
}

// Total returns Units × PricePerUnit.
func (r TransactionRecord) Total() decimal.Decimal {
	return r.PricePerUnit.Mul(decimal.NewFromInt(r.Units))
}
