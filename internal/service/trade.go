package service

import (
	"errors"
	"log/slog"

	"github.com/efreitasn/tradedesk/internal/domain"
	"github.com/efreitasn/tradedesk/internal/engine"
)

// SecuritySource provides the current securities snapshot.
type SecuritySource interface {
	Snapshot() []domain.Security
}

// Ledger provides the current holdings snapshot and accepts transaction
// records for commit.
type Ledger interface {
	Snapshot() domain.HoldingsSnapshot
	Submit(rec domain.TransactionRecord) (domain.TransactionRecord, error)
}

// TradeResult is the outcome of a buy or sell request. Committed is set
// only when the decision was accepted and the ledger applied the record.
type TradeResult struct {
	Decision     engine.Decision
	Committed    *domain.TransactionRecord
	ShowBuyError bool
}

// StockPage is the derived view of one security's trading page.
type StockPage struct {
	Symbol     string
	Security   domain.Security
	StockItems []domain.StockItem
	Totals     domain.Totals
	// Redirect is set when the ticker names no known security; the caller
	// should send the user to the default view.
	Redirect bool
}

// TradeService evaluates trade requests for a security page against the
// current snapshots and submits accepted records to the ledger.
type TradeService struct {
	securities SecuritySource
	ledger     Ledger
	logger     *slog.Logger
}

// NewTradeService creates a new TradeService with the given dependencies.
func NewTradeService(securities SecuritySource, ledger Ledger, logger *slog.Logger) *TradeService {
	return &TradeService{
		securities: securities,
		ledger:     ledger,
		logger:     logger,
	}
}

// Page returns the trading page for ticker.
func (s *TradeService) Page(ticker string) *StockPage {
	security, ok := domain.FindSecurity(s.securities.Snapshot(), ticker)
	if !ok {
		return &StockPage{Symbol: ticker, Redirect: true}
	}

	holdings := s.ledger.Snapshot()
	return &StockPage{
		Symbol:     security.Symbol,
		Security:   security,
		StockItems: holdings.StockItems,
		Totals:     domain.AggregateTotals(holdings),
	}
}

// BuyInput is the buy quantity field after a keystroke was filtered.
type BuyInput struct {
	Value       string
	WholeNumber bool
}

// FilterBuyInput applies the quantity field's keystroke filter for ticker's
// page. ok is false when the ticker names no known security.
func (s *TradeService) FilterBuyInput(ticker, value, typed string) (in BuyInput, ok bool) {
	if !domain.SymbolExists(s.securities.Snapshot(), ticker) {
		return BuyInput{}, false
	}
	filtered := domain.FilterKeystroke(value, typed)
	return BuyInput{Value: filtered, WholeNumber: domain.IsWholeNumber(filtered)}, true
}

// Buy evaluates a buy of rawUnits of ticker. Rejected requests produce no
// commit and no error; the rejection is reported in the result. The buy
// error indicator is raised only for digit-only input that cannot be
// represented as a quantity. An error is returned only when the ledger
// refuses an accepted record.
func (s *TradeService) Buy(ticker, rawUnits string) (*TradeResult, error) {
	d := engine.AuthorizeBuy(s.securities.Snapshot(), ticker, rawUnits)
	res := &TradeResult{
		Decision:     d,
		ShowBuyError: errors.Is(d.Err, domain.ErrQuantityOutOfRange),
	}
	return s.commit(res, "buy")
}

// Sell evaluates a sell of rawUnits from stock item stockItemID, priced at
// ticker's current quote. Rejections are reported as for Buy.
func (s *TradeService) Sell(ticker, rawUnits, stockItemID string) (*TradeResult, error) {
	d := engine.AuthorizeSell(s.securities.Snapshot(), s.ledger.Snapshot(), ticker, rawUnits, stockItemID)
	return s.commit(&TradeResult{Decision: d}, "sell")
}

func (s *TradeService) commit(res *TradeResult, kind string) (*TradeResult, error) {
	d := res.Decision
	if !d.Accepted() {
		s.logger.Debug("trade rejected",
			slog.String("kind", kind),
			slog.String("reason", domain.ReasonCode(d.Err)),
		)
		return res, nil
	}

	rec, err := s.ledger.Submit(d.Record)
	if err != nil {
		s.logger.Warn("trade commit failed",
			slog.String("kind", kind),
			slog.String("symbol", d.Record.Symbol),
			slog.Int64("units", d.Record.Units),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Debug("trade committed",
		slog.String("kind", kind),
		slog.String("id", rec.ID),
		slog.String("symbol", rec.Symbol),
		slog.Int64("units", rec.Units),
		slog.String("price", rec.PricePerUnit.String()),
		slog.String("total", rec.Total().String()),
	)
	res.Committed = &rec
	return res, nil
}
