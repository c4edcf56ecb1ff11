package repositories

import (
	"context"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
)

// TransactionReader defines read operations against the transaction store.
type TransactionReader interface {
	// FindTransactions retrieves transactions matching the filter, ordered by
	// date descending with ties broken by insertion recency. A limit <= 0
	// means no window; offset skips matches from the top of the ordering.
	FindTransactions(ctx context.Context, filter domain.TransactionFilter, limit, offset int) ([]domain.Transaction, error)

	// CountTransactions returns the number of records matching the filter,
	// independent of any pagination window.
	CountTransactions(ctx context.Context, filter domain.TransactionFilter) (int64, error)

	// FindTransactionByID retrieves a single record by its opaque identifier.
	// Returns apperrors.ErrNotFound when no such record exists.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
}

// TransactionWriter defines write operations against the transaction store.
type TransactionWriter interface {
	// SaveTransaction durably inserts a new record and returns it with the
	// store-assigned identifier populated.
	SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)
}

// TransactionRepository combines all transaction store operations.
type TransactionRepository interface {
	TransactionReader
	TransactionWriter
}
