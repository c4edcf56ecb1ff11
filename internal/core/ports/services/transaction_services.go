package services

import (
	"context"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	"github.com/fintrackr/finance_tracker_app/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data.
type TransactionReaderSvc interface {
	// ListTransactions retrieves one page of transactions matching the filter
	// set, together with the total match count. List and search share this
	// single code path.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// GetTransactionByID retrieves a single transaction.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// SummarizeTransactions aggregates all transactions matching the filter
	// set into total income, total expenses and balance.
	SummarizeTransactions(ctx context.Context, filter domain.TransactionFilter) (*dto.SummaryResponse, error)
}

// TransactionWriterSvc defines write operations for transaction data.
type TransactionWriterSvc interface {
	// CreateTransaction validates and persists a new transaction. Validation
	// failures are returned before the store is touched.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}

// ServiceContainer holds instances of all the application services and is the
// entry point handlers use to reach service functionality.
type ServiceContainer struct {
	Transaction TransactionSvcFacade
}
