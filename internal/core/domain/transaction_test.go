package domain_test

import (
	"testing"
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/apperrors"
	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validTransaction() domain.Transaction {
	return domain.Transaction{
		Type:        domain.Expense,
		Amount:      decimal.NewFromFloat(42.50),
		Category:    "Food",
		Description: "Groceries",
		Date:        time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Transaction)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid expense",
			mutate: func(tx *domain.Transaction) {},
		},
		{
			name:   "valid income",
			mutate: func(tx *domain.Transaction) { tx.Type = domain.Income; tx.Category = "Salary" },
		},
		{
			name:    "missing type",
			mutate:  func(tx *domain.Transaction) { tx.Type = "" },
			wantErr: true,
			errMsg:  "type is required",
		},
		{
			name:    "invalid type",
			mutate:  func(tx *domain.Transaction) { tx.Type = "transfer" },
			wantErr: true,
			errMsg:  "type must be either",
		},
		{
			name:    "zero amount",
			mutate:  func(tx *domain.Transaction) { tx.Amount = decimal.Zero },
			wantErr: true,
			errMsg:  "amount is required and must be greater than 0",
		},
		{
			name:    "negative amount",
			mutate:  func(tx *domain.Transaction) { tx.Amount = decimal.NewFromInt(-10) },
			wantErr: true,
			errMsg:  "amount is required and must be greater than 0",
		},
		{
			name:    "missing category",
			mutate:  func(tx *domain.Transaction) { tx.Category = "" },
			wantErr: true,
			errMsg:  "category is required",
		},
		{
			name:    "whitespace-only category",
			mutate:  func(tx *domain.Transaction) { tx.Category = "   " },
			wantErr: true,
			errMsg:  "category is required",
		},
		{
			name:    "missing description",
			mutate:  func(tx *domain.Transaction) { tx.Description = "" },
			wantErr: true,
			errMsg:  "description is required",
		},
		{
			name:    "whitespace-only description",
			mutate:  func(tx *domain.Transaction) { tx.Description = "\t\n" },
			wantErr: true,
			errMsg:  "description is required",
		},
		{
			name:    "missing date",
			mutate:  func(tx *domain.Transaction) { tx.Date = time.Time{} },
			wantErr: true,
			errMsg:  "date is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tt.mutate(&tx)

			err := tx.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_Normalized(t *testing.T) {
	tx := validTransaction()
	tx.Category = "  Food  "
	tx.Description = "\tGroceries\n"

	normalized := tx.Normalized()

	assert.Equal(t, "Food", normalized.Category)
	assert.Equal(t, "Groceries", normalized.Description)
	// The receiver is untouched.
	assert.Equal(t, "  Food  ", tx.Category)
}

func TestTransactionFilter_IsZero(t *testing.T) {
	assert.True(t, domain.TransactionFilter{}.IsZero())

	amount := decimal.NewFromInt(100)
	assert.False(t, domain.TransactionFilter{Type: domain.Income}.IsZero())
	assert.False(t, domain.TransactionFilter{Category: "Food"}.IsZero())
	assert.False(t, domain.TransactionFilter{Amount: &amount}.IsZero())
}
