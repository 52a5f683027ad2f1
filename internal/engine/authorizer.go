package engine

import (
	"github.com/efreitasn/tradedesk/internal/domain"
)

// Decision is the outcome of evaluating one trade request. Exactly one of
// Record or Err is meaningful: Err is nil when the trade is accepted and
// holds one of the domain rejection sentinels otherwise.
type Decision struct {
	Record domain.TransactionRecord
	Err    error
}

// Accepted reports whether the request produced a transaction record.
func (d Decision) Accepted() bool {
	return d.Err == nil
}

func reject(err error) Decision {
	return Decision{Err: err}
}

// AuthorizeBuy evaluates a buy of rawUnits of the security named by ticker
// against the securities snapshot. The record is priced at the security's
// latest quote. Unknown securities and securities without a quote are
// rejected with domain.ErrUnknownSecurity.
func AuthorizeBuy(securities []domain.Security, ticker, rawUnits string) Decision {
	units, err := domain.ParseQuantity(rawUnits)
	if err != nil {
		return reject(err)
	}

	security, ok := domain.FindSecurity(securities, ticker)
	if !ok || !security.HasQuote() {
		return reject(domain.ErrUnknownSecurity)
	}

	return Decision{Record: domain.TransactionRecord{
		Symbol:       domain.CanonicalSymbol(ticker),
		Units:        units,
		PricePerUnit: security.Quote.LatestPrice,
		Kind:         domain.TransactionBuy,
	}}
}

// AuthorizeSell evaluates a sell of rawUnits from stock item stockItemID.
// Only the units held by that item count. The record is priced at the
// current quote of ticker, not at the item's purchase price.
func AuthorizeSell(
	securities []domain.Security,
	holdings domain.HoldingsSnapshot,
	ticker, rawUnits, stockItemID string,
) Decision {
	units, err := domain.ParseQuantity(rawUnits)
	if err != nil {
		return reject(err)
	}

	if err := holdings.CheckUnits(stockItemID, units); err != nil {
		return reject(err)
	}

	security, ok := domain.FindSecurity(securities, ticker)
	if !ok || !security.HasQuote() {
		return reject(domain.ErrUnknownSecurity)
	}

	return Decision{Record: domain.TransactionRecord{
		StockID:      stockItemID,
		Symbol:       domain.CanonicalSymbol(ticker),
		Units:        units,
		PricePerUnit: security.Quote.LatestPrice,
		Kind:         domain.TransactionSell,
	}}
}
