package handler

import (
	"errors"
	"net/http"

	"github.com/efreitasn/tradedesk/internal/domain"
	"github.com/efreitasn/tradedesk/internal/service"
)

// SecurityHandler handles the securities snapshot endpoints.
type SecurityHandler struct {
	securitySvc *service.SecurityService
}

// NewSecurityHandler creates a new SecurityHandler.
func NewSecurityHandler(securitySvc *service.SecurityService) *SecurityHandler {
	return &SecurityHandler{securitySvc: securitySvc}
}

type securityInputRequest struct {
	Symbol      string   `json:"symbol"`
	LatestPrice *float64 `json:"latest_price"`
}

type replaceSecuritiesRequest struct {
	Securities []securityInputRequest `json:"securities"`
}

type securitiesResponse struct {
	Securities []securityResponse `json:"securities"`
}

// List handles GET /securities.
func (h *SecurityHandler) List(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, securitiesResponse{
		Securities: toSecurityResponses(h.securitySvc.List()),
	})
}

// Replace handles PUT /securities.
func (h *SecurityHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var req replaceSecuritiesRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if req.Securities == nil {
		WriteError(w, http.StatusBadRequest, "validation_error", "securities is required")
		return
	}

	inputs := make([]service.SecurityInput, len(req.Securities))
	for i, s := range req.Securities {
		inputs[i] = service.SecurityInput{Symbol: s.Symbol, LatestPrice: s.LatestPrice}
	}

	securities, err := h.securitySvc.Replace(inputs)
	if err != nil {
		mapSecurityError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, securitiesResponse{
		Securities: toSecurityResponses(securities),
	})
}

func mapSecurityError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		WriteError(w, http.StatusBadRequest, "validation_error", validationErr.Message)
		return
	}
	WriteError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
}
