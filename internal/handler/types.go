package handler

import (
	"github.com/efreitasn/tradedesk/internal/domain"
)

// quoteResponse is the JSON form of a security's quote.
type quoteResponse struct {
	LatestPrice float64 `json:"latest_price"`
}

// securityResponse is the JSON form of a security.
type securityResponse struct {
	Symbol string         `json:"symbol"`
	Quote  *quoteResponse `json:"quote"`
}

// stockItemResponse is the JSON form of a stock item.
type stockItemResponse struct {
	ID                         string  `json:"id"`
	Symbol                     string  `json:"symbol"`
	Units                      int64   `json:"units"`
	PricePerUnitOnPurchaseDate float64 `json:"price_per_unit_on_purchase_date"`
}

// transactionResponse is the JSON form of a transaction record.
type transactionResponse struct {
	ID           string  `json:"id"`
	StockID      string  `json:"stock_id,omitempty"`
	Symbol       string  `json:"symbol"`
	Units        int64   `json:"units"`
	PricePerUnit float64 `json:"price_per_unit"`
	Total        float64 `json:"total"`
	Kind         string  `json:"kind"`
}

// totalsResponse is the JSON form of the portfolio aggregates.
type totalsResponse struct {
	PurchaseCost        float64 `json:"purchase_cost"`
	PurchaseCostDisplay string  `json:"purchase_cost_display"`
	Quantity            int64   `json:"quantity"`
}

func toSecurityResponse(s domain.Security) securityResponse {
	resp := securityResponse{Symbol: s.Symbol}
	if s.Quote != nil {
		resp.Quote = &quoteResponse{LatestPrice: s.Quote.LatestPrice.InexactFloat64()}
	}
	return resp
}

func toSecurityResponses(securities []domain.Security) []securityResponse {
	out := make([]securityResponse, len(securities))
	for i, s := range securities {
		out[i] = toSecurityResponse(s)
	}
	return out
}

func toStockItemResponses(items []domain.StockItem) []stockItemResponse {
	out := make([]stockItemResponse, len(items))
	for i, item := range items {
		out[i] = stockItemResponse{
			ID:                         item.ID,
			Symbol:                     item.Symbol,
			Units:                      item.Units,
			PricePerUnitOnPurchaseDate: item.PricePerUnitOnPurchaseDate.InexactFloat64(),
		}
	}
	return out
}

func toTransactionResponse(r domain.TransactionRecord) transactionResponse {
	return transactionResponse{
		ID:           r.ID,
		StockID:      r.StockID,
		Symbol:       r.Symbol,
		Units:        r.Units,
		PricePerUnit: r.PricePerUnit.InexactFloat64(),
		Total:        r.Total().InexactFloat64(),
		Kind:         string(r.Kind),
	}
}

func toTransactionResponses(records []domain.TransactionRecord) []transactionResponse {
	out := make([]transactionResponse, len(records))
	for i, r := range records {
		out[i] = toTransactionResponse(r)
	}
	return out
}

func toTotalsResponse(t domain.Totals, currency string) totalsResponse {
	return totalsResponse{
		PurchaseCost:        t.PurchaseCost.InexactFloat64(),
		PurchaseCostDisplay: domain.FormatMoney(t.PurchaseCost, currency),
		Quantity:            t.Quantity,
	}
}
