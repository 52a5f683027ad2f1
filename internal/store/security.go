package store

import (
	"sync"

	"github.com/efreitasn/tradedesk/internal/domain"
	"github.com/google/btree"
)

func securityLess(a, b domain.Security) bool {
	return a.Symbol < b.Symbol
}

// SecurityStore is a thread-safe in-memory holder of the current securities
// snapshot, ordered by symbol. Every Replace swaps in a full new snapshot.
type SecurityStore struct {
	mu         sync.RWMutex
	securities *btree.BTreeG[domain.Security]
}

const securityDegree = 16

// NewSecurityStore creates an empty SecurityStore.
func NewSecurityStore() *SecurityStore {
	return &SecurityStore{
		securities: btree.NewG[domain.Security](securityDegree, securityLess),
	}
}

// Replace discards the current snapshot and stores securities in its
// place. Symbols are stored in canonical form; on duplicate symbols the
// last entry wins.
func (s *SecurityStore) Replace(securities []domain.Security) {
	tree := btree.NewG[domain.Security](securityDegree, securityLess)
	for _, sec := range securities {
		sec = copySecurity(sec)
		sec.Symbol = domain.CanonicalSymbol(sec.Symbol)
		tree.ReplaceOrInsert(sec)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.securities = tree
}

// Snapshot returns a copy of the current securities in ascending symbol
// order. Returns an empty slice when no snapshot has been stored.
func (s *SecurityStore) Snapshot() []domain.Security {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Security, 0, s.securities.Len())
	s.securities.Ascend(func(sec domain.Security) bool {
		result = append(result, copySecurity(sec))
		return true
	})
	return result
}

// Len returns the number of securities in the current snapshot.
func (s *SecurityStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.securities.Len()
}

// copySecurity detaches the quote so callers cannot mutate stored data.
func copySecurity(sec domain.Security) domain.Security {
	if sec.Quote != nil {
		q := *sec.Quote
		sec.Quote = &q
	}
	return sec
}
