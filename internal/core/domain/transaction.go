package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType classifies a transaction as money coming in or going out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// IsValid reports whether the type is one of the two supported values.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// Transaction is a single income or expense record. Records are immutable
// once persisted; the store assigns TransactionID at insert time.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"` // Positive value; precise decimal type
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	CreatedAt     time.Time       `json:"createdAt"` // Insertion time, breaks ordering ties for equal dates
}

// Normalized returns a copy of the transaction with string fields trimmed of
// surrounding whitespace. Validation operates on the normalized form.
func (t Transaction) Normalized() Transaction {
	t.Category = strings.TrimSpace(t.Category)
	t.Description = strings.TrimSpace(t.Description)
	return t
}

// Validate checks the field rules for a candidate transaction. It is pure and
// performs no I/O. All failures wrap apperrors.ErrValidation.
//
// Category accepts any non-blank string; the client suggests values from a
// fixed vocabulary but the server does not enforce one.
func (t Transaction) Validate() error {
	if t.Type == "" {
		return fmt.Errorf("%w: type is required", apperrors.ErrValidation)
	}
	if !t.Type.IsValid() {
		return fmt.Errorf("%w: type must be either %q or %q", apperrors.ErrValidation, Income, Expense)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: amount is required and must be greater than 0", apperrors.ErrValidation)
	}
	if strings.TrimSpace(t.Category) == "" {
		return fmt.Errorf("%w: category is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: date is required", apperrors.ErrValidation)
	}
	return nil
}

// TransactionFilter is a partial set of field constraints combined with
// logical AND. Zero-valued fields impose no constraint.
type TransactionFilter struct {
	Type        TransactionType  // exact match
	Category    string           // case-insensitive substring match
	Description string           // case-insensitive substring match
	Amount      *decimal.Decimal // exact numeric match
}

// IsZero reports whether the filter constrains nothing.
func (f TransactionFilter) IsZero() bool {
	return f.Type == "" && f.Category == "" && f.Description == "" && f.Amount == nil
}
