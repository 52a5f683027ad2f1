package store

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/efreitasn/tradedesk/internal/domain"
	"github.com/google/uuid"
)

// LedgerStore is the commit target for transaction records. It owns the
// holdings snapshot: stock items in acquisition order and the append-only
// list of committed transactions. Commits are serialized and each record
// is validated again against the state at commit time.
type LedgerStore struct {
	mu           sync.Mutex
	items        []domain.StockItem
	transactions []domain.TransactionRecord
	// heldUnits is the sum of units over items; it never exceeds math.MaxInt64.
	heldUnits int64
	newID     func() string
}

// NewLedgerStore creates an empty LedgerStore.
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{
		newID: func() string { return uuid.New().String() },
	}
}

// Submit applies rec to the ledger and returns the committed record with
// its assigned ID. A buy opens a new stock item whose ID equals the
// transaction ID. A sell removes units from stock item rec.StockID and
// drops the item once it is empty.
//
// It returns a *domain.ValidationError for malformed records and for buys
// that would push the total units held past math.MaxInt64,
// domain.ErrUnknownHoldingID when the sold item does not exist and
// domain.ErrInsufficientHoldings when it holds fewer units than requested.
func (s *LedgerStore) Submit(rec domain.TransactionRecord) (domain.TransactionRecord, error) {
	if err := validateRecord(rec); err != nil {
		return domain.TransactionRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch rec.Kind {
	case domain.TransactionBuy:
		if rec.Units > math.MaxInt64-s.heldUnits {
			return domain.TransactionRecord{}, &domain.ValidationError{
				Message: fmt.Sprintf("buying %d units would exceed the maximum total holding", rec.Units),
			}
		}
		s.heldUnits += rec.Units
		rec.ID = s.newID()
		rec.StockID = ""
		s.items = append(s.items, domain.StockItem{
			ID:                         rec.ID,
			Symbol:                     rec.Symbol,
			Units:                      rec.Units,
			PricePerUnitOnPurchaseDate: rec.PricePerUnit,
		})
	case domain.TransactionSell:
		idx := s.indexOf(rec.StockID)
		if idx < 0 {
			return domain.TransactionRecord{}, domain.ErrUnknownHoldingID
		}
		item := &s.items[idx]
		if item.Symbol != rec.Symbol {
			return domain.TransactionRecord{}, &domain.ValidationError{
				Message: fmt.Sprintf("stock item %s holds %s, not %s", item.ID, item.Symbol, rec.Symbol),
			}
		}
		if item.Units < rec.Units {
			return domain.TransactionRecord{}, domain.ErrInsufficientHoldings
		}
		item.Units -= rec.Units
		s.heldUnits -= rec.Units
		if item.Units == 0 {
			s.items = append(s.items[:idx], s.items[idx+1:]...)
		}
		rec.ID = s.newID()
	}

	s.transactions = append(s.transactions, rec)
	return rec, nil
}

// Snapshot returns a copy of the current holdings.
func (s *LedgerStore) Snapshot() domain.HoldingsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.StockItem, len(s.items))
	copy(items, s.items)
	transactions := make([]domain.TransactionRecord, len(s.transactions))
	copy(transactions, s.transactions)

	return domain.HoldingsSnapshot{
		StockItems:   items,
		Transactions: transactions,
	}
}

func (s *LedgerStore) indexOf(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func validateRecord(rec domain.TransactionRecord) error {
	if rec.Kind != domain.TransactionBuy && rec.Kind != domain.TransactionSell {
		return &domain.ValidationError{Message: fmt.Sprintf("unknown transaction kind %q", rec.Kind)}
	}
	if strings.TrimSpace(rec.Symbol) == "" {
		return &domain.ValidationError{Message: "symbol is required"}
	}
	if rec.Units <= 0 {
		return &domain.ValidationError{Message: "units must be > 0"}
	}
	if rec.PricePerUnit.IsNegative() {
		return &domain.ValidationError{Message: "price_per_unit must be >= 0"}
	}
	return nil
}
