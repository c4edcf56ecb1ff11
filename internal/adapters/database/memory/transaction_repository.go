package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/fintrackr/finance_tracker_app/internal/apperrors"
	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackr/finance_tracker_app/internal/core/ports/repositories"
	"github.com/google/uuid"
)

// MemoryTransactionRepository is an in-memory implementation of the
// transaction store contract. It backs the service and contract tests and
// lets the server run without a database, with the same filtering and
// ordering semantics as the MongoDB adapter.
type MemoryTransactionRepository struct {
	mu   sync.RWMutex
	txns []storedTransaction
	seq  int64
}

type storedTransaction struct {
	txn domain.Transaction
	seq int64 // insertion order, breaks ties among equal dates and timestamps
}

// NewMemoryTransactionRepository creates an empty in-memory repository.
func NewMemoryTransactionRepository() *MemoryTransactionRepository {
	return &MemoryTransactionRepository{}
}

var _ portsrepo.TransactionRepository = (*MemoryTransactionRepository)(nil)

// SaveTransaction stores the record and assigns an opaque identifier.
func (r *MemoryTransactionRepository) SaveTransaction(_ context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	txn.TransactionID = uuid.NewString()
	r.txns = append(r.txns, storedTransaction{txn: txn, seq: r.seq})

	saved := txn
	return &saved, nil
}

// FindTransactions returns matching records ordered by date descending, ties
// broken by insertion recency, with the pagination window applied.
func (r *MemoryTransactionRepository) FindTransactions(_ context.Context, filter domain.TransactionFilter, limit, offset int) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]storedTransaction, 0, len(r.txns))
	for _, stored := range r.txns {
		if matchesFilter(stored.txn, filter) {
			matched = append(matched, stored)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].txn.Date.Equal(matched[j].txn.Date) {
			return matched[i].txn.Date.After(matched[j].txn.Date)
		}
		return matched[i].seq > matched[j].seq
	})

	if offset >= len(matched) {
		return []domain.Transaction{}, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}

	txns := make([]domain.Transaction, len(matched))
	for i, stored := range matched {
		txns[i] = stored.txn
	}
	return txns, nil
}

// CountTransactions counts matching records regardless of any window.
func (r *MemoryTransactionRepository) CountTransactions(_ context.Context, filter domain.TransactionFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, stored := range r.txns {
		if matchesFilter(stored.txn, filter) {
			count++
		}
	}
	return count, nil
}

// FindTransactionByID retrieves a record by its identifier.
func (r *MemoryTransactionRepository) FindTransactionByID(_ context.Context, transactionID string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, stored := range r.txns {
		if stored.txn.TransactionID == transactionID {
			txn := stored.txn
			return &txn, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// matchesFilter applies the AND-combined filter set: type exact, category and
// description case-insensitive substring, amount exact.
func matchesFilter(txn domain.Transaction, filter domain.TransactionFilter) bool {
	if filter.Type != "" && txn.Type != filter.Type {
		return false
	}
	if filter.Category != "" && !containsFold(txn.Category, filter.Category) {
		return false
	}
	if filter.Description != "" && !containsFold(txn.Description, filter.Description) {
		return false
	}
	if filter.Amount != nil && !txn.Amount.Equal(*filter.Amount) {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
