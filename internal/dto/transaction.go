package dto

import (
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// The identifier is store-assigned, so there is intentionally no id field for
// the client to supply.
type CreateTransactionRequest struct {
	Type        string          `json:"type" binding:"required,oneof=income expense"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Date        string          `json:"date" binding:"required,txndate"`
}

// ListTransactionsParams carries the parsed filter set and pagination window
// for the unified list/search operation. Zero-valued filter fields impose no
// constraint; Limit 0 means no pagination window.
type ListTransactionsParams struct {
	Type        string
	Category    string
	Description string
	Amount      *decimal.Decimal
	Offset      int
	Limit       int
}

// Filter converts the params into the domain filter set.
func (p ListTransactionsParams) Filter() domain.TransactionFilter {
	return domain.TransactionFilter{
		Type:        domain.TransactionType(p.Type),
		Category:    p.Category,
		Description: p.Description,
		Amount:      p.Amount,
	}
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string          `json:"id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ListTransactionsResponse is one page of the ordered transaction list plus
// the total match count, from which the client derives the page count.
type ListTransactionsResponse struct {
	Items  []TransactionResponse `json:"items"`
	Total  int64                 `json:"total"`
	Offset int                   `json:"offset"`
	Limit  int                   `json:"limit,omitempty"`
}

// SummaryResponse carries the aggregate totals for the dashboard.
type SummaryResponse struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Balance       decimal.Decimal `json:"balance"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Type:          string(txn.Type),
		Amount:        txn.Amount,
		Category:      txn.Category,
		Description:   txn.Description,
		Date:          txn.Date,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}

// ToSummaryResponse converts a domain.Summary to its response DTO.
func ToSummaryResponse(summary domain.Summary) SummaryResponse {
	return SummaryResponse{
		TotalIncome:   summary.TotalIncome,
		TotalExpenses: summary.TotalExpenses,
		Balance:       summary.Balance,
	}
}
