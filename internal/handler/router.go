package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/efreitasn/tradedesk/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Options holds the presentation settings the handlers need.
type Options struct {
	// DefaultView is where requests for unknown tickers are redirected.
	DefaultView string
	// DisplayCurrency is the ISO 4217 code used for formatted amounts.
	DisplayCurrency string
}

// NewRouter creates a chi router with all routes registered, request logging,
// and Content-Type validation middleware.
func NewRouter(
	securitySvc *service.SecurityService,
	tradeSvc *service.TradeService,
	portfolioSvc *service.PortfolioService,
	opts Options,
	logger *slog.Logger,
) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogging(logger))
	r.Use(middleware.Recoverer)
	r.Use(contentTypeJSON)

	securityH := NewSecurityHandler(securitySvc)
	stockH := NewStockHandler(tradeSvc, opts.DefaultView, opts.DisplayCurrency)
	portfolioH := NewPortfolioHandler(portfolioSvc, opts.DisplayCurrency)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Home lists the securities snapshot.
	r.Get("/", securityH.List)
	r.Get("/securities", securityH.List)
	r.Put("/securities", securityH.Replace)

	// Trading page.
	r.Get("/stocks/{ticker}", stockH.Page)
	r.Post("/stocks/{ticker}/buy", stockH.Buy)
	r.Post("/stocks/{ticker}/buy/input", stockH.BuyInput)
	r.Post("/stocks/{ticker}/sell", stockH.Sell)

	r.Get("/portfolio", portfolioH.Summary)

	return r
}

// requestLogging logs one line per request, tagged with the chi request id.
// Successful POSTs log at debug; server errors log at error.
func requestLogging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)

			level := slog.LevelInfo
			switch {
			case ww.status >= http.StatusInternalServerError:
				level = slog.LevelError
			case r.Method == http.MethodPost && ww.status < http.StatusBadRequest:
				level = slog.LevelDebug
			}
			logger.LogAttrs(r.Context(), level, "request",
				slog.String("request_id", middleware.GetReqID(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

// contentTypeJSON rejects POST, PUT and PATCH requests whose Content-Type
// is not application/json with 400 before the handler runs.
func contentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			ct := r.Header.Get("Content-Type")
			if ct == "" || !strings.HasPrefix(ct, "application/json") {
				WriteError(w, http.StatusBadRequest, "invalid_request",
					"Content-Type must be application/json")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
