package service

import "github.com/efreitasn/tradedesk/internal/domain"

// PortfolioSummary is the holdings snapshot plus its aggregates.
type PortfolioSummary struct {
	Holdings domain.HoldingsSnapshot
	Totals   domain.Totals
}

// PortfolioService derives portfolio-wide figures from the ledger.
type PortfolioService struct {
	ledger Ledger
}

// NewPortfolioService creates a new PortfolioService.
func NewPortfolioService(ledger Ledger) *PortfolioService {
	return &PortfolioService{ledger: ledger}
}

// Summary returns the current holdings with totals recomputed from them.
func (s *PortfolioService) Summary() *PortfolioSummary {
	holdings := s.ledger.Snapshot()
	return &PortfolioSummary{
		Holdings: holdings,
		Totals:   domain.AggregateTotals(holdings),
	}
}
