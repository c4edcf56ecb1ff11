package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/apperrors"
	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackr/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackr/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackr/finance_tracker_app/internal/dto"
	"github.com/fintrackr/finance_tracker_app/internal/utils/accounting"
	"golang.org/x/sync/errgroup"
)

// TransactionService implements the transaction query engine on top of the
// store repository. It holds no state of its own; every operation is a
// function of its inputs plus the current store contents.
type TransactionService struct {
	transactionRepo portsrepo.TransactionRepository
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(transactionRepo portsrepo.TransactionRepository) portssvc.TransactionSvcFacade {
	return &TransactionService{transactionRepo: transactionRepo}
}

// CreateTransaction validates the candidate record and persists it. On
// validation failure the store is never touched, so a rejected create has no
// partial side effects.
func (s *TransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	date, err := dto.ParseTransactionDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be an RFC 3339 timestamp or a calendar date", apperrors.ErrValidation)
	}

	txn := domain.Transaction{
		Type:        domain.TransactionType(req.Type),
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}.Normalized()

	if err := txn.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.transactionRepo.SaveTransaction(ctx, txn)
	if err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	return saved, nil
}

// ListTransactions runs the unified list/search query: one filtered, ordered
// page plus the total match count. The page and the count are independent
// store reads, so they run concurrently.
func (s *TransactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	filter := params.Filter()

	var (
		txns  []domain.Transaction
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txns, err = s.transactionRepo.FindTransactions(gctx, filter, params.Limit, params.Offset)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.transactionRepo.CountTransactions(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &dto.ListTransactionsResponse{
		Items:  dto.ToTransactionResponses(txns),
		Total:  total,
		Offset: params.Offset,
		Limit:  params.Limit,
	}, nil
}

// GetTransactionByID retrieves a single transaction by its opaque identifier.
func (s *TransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

// SummarizeTransactions aggregates every record matching the filter set into
// the dashboard totals. Aggregation itself is the pure accounting engine;
// this method only feeds it the matching records.
func (s *TransactionService) SummarizeTransactions(ctx context.Context, filter domain.TransactionFilter) (*dto.SummaryResponse, error) {
	txns, err := s.transactionRepo.FindTransactions(ctx, filter, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for summary: %w", err)
	}

	summary := dto.ToSummaryResponse(accounting.Summarize(txns))
	return &summary, nil
}
