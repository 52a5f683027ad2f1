package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	t.Run("sets content type and status code", func(t *testing.T) {
		w := httptest.NewRecorder()

		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})

		if got := w.Header().Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q, want %q", got, "application/json")
		}
		if w.Code != http.StatusOK {
			t.Errorf("status code = %d, want %d", w.Code, http.StatusOK)
		}

		var result map[string]string
		if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if result["status"] != "ok" {
			t.Errorf("body status = %q, want %q", result["status"], "ok")
		}
	})

	t.Run("security without quote encodes null", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteJSON(w, http.StatusOK, securityResponse{Symbol: "AAPL"})

		var raw map[string]any
		if err := json.NewDecoder(w.Body).Decode(&raw); err != nil {
			t.Fatalf("failed to decode: %v", err)
		}
		if raw["symbol"] != "AAPL" {
			t.Errorf("symbol = %v, want %q", raw["symbol"], "AAPL")
		}
		if v, ok := raw["quote"]; !ok || v != nil {
			t.Errorf("quote = %v (present=%v), want null", v, ok)
		}
	})

	t.Run("buy response flattens trade fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteJSON(w, http.StatusOK, buyResponse{
			tradeResponse: tradeResponse{Status: "rejected", Reason: "quantity_out_of_range"},
			ShowBuyError:  true,
		})

		var raw map[string]any
		if err := json.NewDecoder(w.Body).Decode(&raw); err != nil {
			t.Fatalf("failed to decode: %v", err)
		}
		if raw["status"] != "rejected" {
			t.Errorf("status = %v, want rejected", raw["status"])
		}
		if raw["show_buy_error"] != true {
			t.Errorf("show_buy_error = %v, want true", raw["show_buy_error"])
		}
		if _, ok := raw["transaction"]; ok {
			t.Error("transaction should be omitted on rejection")
		}
	})
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, http.StatusConflict, "insufficient_holdings", "Stock item no longer holds enough units")

	if w.Code != http.StatusConflict {
		t.Errorf("status code = %d, want %d", w.Code, http.StatusConflict)
	}
	if got := w.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want %q", got, "application/json")
	}

	var resp errorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if resp.Error != "insufficient_holdings" {
		t.Errorf("error = %q, want %q", resp.Error, "insufficient_holdings")
	}
	if resp.Message != "Stock item no longer holds enough units" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestParseJSON(t *testing.T) {
	newReq := func(contentType, body string) *http.Request {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		if contentType != "" {
			r.Header.Set("Content-Type", contentType)
		}
		return r
	}

	t.Run("decodes units as text", func(t *testing.T) {
		var req buyRequest
		if err := ParseJSON(newReq("application/json", `{"units":"10000"}`), &req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Units == nil || *req.Units != "10000" {
			t.Errorf("units = %v, want 10000", req.Units)
		}
	})

	t.Run("accepts charset parameter", func(t *testing.T) {
		var req buyRequest
		if err := ParseJSON(newReq("application/json; charset=utf-8", `{"units":"1"}`), &req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	tests := []struct {
		name        string
		contentType string
		body        string
	}{
		{"missing content type", "", `{"units":"1"}`},
		{"wrong content type", "text/plain", `{"units":"1"}`},
		{"malformed JSON", "application/json", `{"units":`},
		{"unknown field", "application/json", `{"units":"1","price":3}`},
		{"numeric units", "application/json", `{"units":10}`},
		{"trailing value", "application/json", `{"units":"1"}{"units":"2"}`},
		{"empty body", "application/json", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req buyRequest
			if err := ParseJSON(newReq(tt.contentType, tt.body), &req); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
