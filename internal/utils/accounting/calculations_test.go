package accounting_test

import (
	"testing"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	"github.com/fintrackr/finance_tracker_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func txn(txnType domain.TransactionType, amount string) domain.Transaction {
	return domain.Transaction{Type: txnType, Amount: decimal.RequireFromString(amount)}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name          string
		transactions  []domain.Transaction
		totalIncome   string
		totalExpenses string
		balance       string
	}{
		{
			name:          "empty input yields all zeros",
			transactions:  nil,
			totalIncome:   "0",
			totalExpenses: "0",
			balance:       "0",
		},
		{
			name: "mixed income and expense",
			transactions: []domain.Transaction{
				txn(domain.Income, "100"),
				txn(domain.Expense, "40"),
			},
			totalIncome:   "100",
			totalExpenses: "40",
			balance:       "60",
		},
		{
			name: "expenses exceeding income yield negative balance",
			transactions: []domain.Transaction{
				txn(domain.Income, "50"),
				txn(domain.Expense, "80"),
			},
			totalIncome:   "50",
			totalExpenses: "80",
			balance:       "-30",
		},
		{
			name: "cent amounts stay exact",
			transactions: []domain.Transaction{
				txn(domain.Income, "0.10"),
				txn(domain.Income, "0.20"),
				txn(domain.Expense, "0.30"),
			},
			totalIncome:   "0.30",
			totalExpenses: "0.30",
			balance:       "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := accounting.Summarize(tt.transactions)

			assert.True(t, summary.TotalIncome.Equal(decimal.RequireFromString(tt.totalIncome)),
				"totalIncome = %s", summary.TotalIncome)
			assert.True(t, summary.TotalExpenses.Equal(decimal.RequireFromString(tt.totalExpenses)),
				"totalExpenses = %s", summary.TotalExpenses)
			assert.True(t, summary.Balance.Equal(decimal.RequireFromString(tt.balance)),
				"balance = %s", summary.Balance)
		})
	}
}

func TestSummarize_OrderIndependent(t *testing.T) {
	forward := []domain.Transaction{
		txn(domain.Income, "1500.25"),
		txn(domain.Expense, "320.10"),
		txn(domain.Income, "99.99"),
		txn(domain.Expense, "15.01"),
	}
	reversed := []domain.Transaction{forward[3], forward[2], forward[1], forward[0]}

	a := accounting.Summarize(forward)
	b := accounting.Summarize(reversed)

	assert.True(t, a.TotalIncome.Equal(b.TotalIncome))
	assert.True(t, a.TotalExpenses.Equal(b.TotalExpenses))
	assert.True(t, a.Balance.Equal(b.Balance))
}
