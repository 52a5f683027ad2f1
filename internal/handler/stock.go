package handler

import (
	"errors"
	"net/http"

	"github.com/efreitasn/tradedesk/internal/domain"
	"github.com/efreitasn/tradedesk/internal/service"
	"github.com/go-chi/chi/v5"
)

// StockHandler handles the trading page endpoints for a single ticker.
type StockHandler struct {
	tradeSvc    *service.TradeService
	defaultView string
	currency    string
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(tradeSvc *service.TradeService, defaultView, currency string) *StockHandler {
	return &StockHandler{
		tradeSvc:    tradeSvc,
		defaultView: defaultView,
		currency:    currency,
	}
}

// Units is carried as text exactly as typed into the form control.
type buyRequest struct {
	Units *string `json:"units"`
}

type sellRequest struct {
	Units       *string `json:"units"`
	StockItemID *string `json:"stock_item_id"`
}

type buyInputRequest struct {
	Value string `json:"value"`
	Typed string `json:"typed"`
}

type buyInputResponse struct {
	Value       string `json:"value"`
	WholeNumber bool   `json:"whole_number"`
}

type stockPageResponse struct {
	Symbol     string              `json:"symbol"`
	Security   securityResponse    `json:"security"`
	StockItems []stockItemResponse `json:"stock_items"`
	Totals     totalsResponse      `json:"totals"`
}

type tradeResponse struct {
	Status      string               `json:"status"`
	Reason      string               `json:"reason,omitempty"`
	Transaction *transactionResponse `json:"transaction,omitempty"`
}

type buyResponse struct {
	tradeResponse
	ShowBuyError    bool   `json:"show_buy_error"`
	BuyErrorMessage string `json:"buy_error_message,omitempty"`
}

// Page handles GET /stocks/{ticker}. Unknown tickers are redirected to the
// default view.
func (h *StockHandler) Page(w http.ResponseWriter, r *http.Request) {
	page := h.tradeSvc.Page(chi.URLParam(r, "ticker"))
	if page.Redirect {
		http.Redirect(w, r, h.defaultView, http.StatusSeeOther)
		return
	}

	WriteJSON(w, http.StatusOK, stockPageResponse{
		Symbol:     page.Symbol,
		Security:   toSecurityResponse(page.Security),
		StockItems: toStockItemResponses(page.StockItems),
		Totals:     toTotalsResponse(page.Totals, h.currency),
	})
}

// Buy handles POST /stocks/{ticker}/buy.
func (h *StockHandler) Buy(w http.ResponseWriter, r *http.Request) {
	var req buyRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	res, err := h.tradeSvc.Buy(chi.URLParam(r, "ticker"), deref(req.Units))
	if err != nil {
		mapTradeError(w, err)
		return
	}

	resp := buyResponse{
		tradeResponse: toTradeResponse(res),
		ShowBuyError:  res.ShowBuyError,
	}
	if res.ShowBuyError {
		resp.BuyErrorMessage = domain.BuyErrorMessage
	}
	WriteJSON(w, http.StatusOK, resp)
}

// BuyInput handles POST /stocks/{ticker}/buy/input. It returns the quantity
// field value after filtering the keystroke just typed.
func (h *StockHandler) BuyInput(w http.ResponseWriter, r *http.Request) {
	var req buyInputRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	in, ok := h.tradeSvc.FilterBuyInput(chi.URLParam(r, "ticker"), req.Value, req.Typed)
	if !ok {
		WriteError(w, http.StatusNotFound, "unknown_security", "Security not found")
		return
	}

	WriteJSON(w, http.StatusOK, buyInputResponse{Value: in.Value, WholeNumber: in.WholeNumber})
}

// Sell handles POST /stocks/{ticker}/sell.
func (h *StockHandler) Sell(w http.ResponseWriter, r *http.Request) {
	var req sellRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	res, err := h.tradeSvc.Sell(chi.URLParam(r, "ticker"), deref(req.Units), deref(req.StockItemID))
	if err != nil {
		mapTradeError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, toTradeResponse(res))
}

func toTradeResponse(res *service.TradeResult) tradeResponse {
	if !res.Decision.Accepted() {
		return tradeResponse{
			Status: "rejected",
			Reason: domain.ReasonCode(res.Decision.Err),
		}
	}
	resp := tradeResponse{Status: "accepted"}
	if res.Committed != nil {
		tx := toTransactionResponse(*res.Committed)
		resp.Transaction = &tx
	}
	return resp
}

// deref maps an absent field to the empty string.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// mapTradeError maps ledger commit errors to HTTP responses.
func mapTradeError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		WriteError(w, http.StatusBadRequest, "validation_error", validationErr.Message)
	case errors.Is(err, domain.ErrUnknownHoldingID):
		WriteError(w, http.StatusNotFound, "unknown_holding_id", "Stock item not found")
	case errors.Is(err, domain.ErrInsufficientHoldings):
		WriteError(w, http.StatusConflict, "insufficient_holdings", "Stock item no longer holds enough units")
	default:
		WriteError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
	}
}
