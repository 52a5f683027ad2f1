package handler

import (
	"net/http"

	"github.com/efreitasn/tradedesk/internal/service"
)

// PortfolioHandler serves the holdings summary.
type PortfolioHandler struct {
	portfolioSvc *service.PortfolioService
	currency     string
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioSvc *service.PortfolioService, currency string) *PortfolioHandler {
	return &PortfolioHandler{portfolioSvc: portfolioSvc, currency: currency}
}

type portfolioResponse struct {
	StockItems   []stockItemResponse   `json:"stock_items"`
	Transactions []transactionResponse `json:"transactions"`
	Totals       totalsResponse        `json:"totals"`
}

// Summary handles GET /portfolio.
func (h *PortfolioHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary := h.portfolioSvc.Summary()
	WriteJSON(w, http.StatusOK, portfolioResponse{
		StockItems:   toStockItemResponses(summary.Holdings.StockItems),
		Transactions: toTransactionResponses(summary.Holdings.Transactions),
		Totals:       toTotalsResponse(summary.Totals, h.currency),
	})
}
