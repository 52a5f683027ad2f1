package service

import (
	"fmt"
	"regexp"

	"github.com/efreitasn/tradedesk/internal/domain"
	"github.com/efreitasn/tradedesk/internal/store"
)

var symbolRegex = regexp.MustCompile(`^[A-Z]{1,10}$`)

// SecurityInput represents a single security in a snapshot replacement.
type SecurityInput struct {
	Symbol      string
	LatestPrice *float64 // nil when no quote is available
}

// SecurityService validates and publishes securities snapshots.
type SecurityService struct {
	store *store.SecurityStore
}

// NewSecurityService creates a new SecurityService.
func NewSecurityService(store *store.SecurityStore) *SecurityService {
	return &SecurityService{store: store}
}

// Replace validates inputs and replaces the whole securities snapshot with
// them. Nothing is stored when any input is invalid.
func (s *SecurityService) Replace(inputs []SecurityInput) ([]domain.Security, error) {
	seen := make(map[string]bool, len(inputs))
	securities := make([]domain.Security, 0, len(inputs))

	for _, in := range inputs {
		symbol := domain.CanonicalSymbol(in.Symbol)
		if !symbolRegex.MatchString(symbol) {
			return nil, &domain.ValidationError{
				Message: fmt.Sprintf("symbol must match ^[A-Z]{1,10}$, got %q", in.Symbol),
			}
		}
		if seen[symbol] {
			return nil, &domain.ValidationError{
				Message: fmt.Sprintf("duplicate symbol: %s", symbol),
			}
		}
		seen[symbol] = true

		sec := domain.Security{Symbol: symbol}
		if in.LatestPrice != nil {
			price, err := domain.PriceFromFloat(*in.LatestPrice)
			if err != nil {
				return nil, &domain.ValidationError{
					Message: fmt.Sprintf("latest_price for %s: %v", symbol, err),
				}
			}
			sec.Quote = &domain.Quote{LatestPrice: price}
		}
		securities = append(securities, sec)
	}

	s.store.Replace(securities)
	return s.store.Snapshot(), nil
}

// List returns the current securities snapshot.
func (s *SecurityService) List() []domain.Security {
	return s.store.Snapshot()
}
