package accounting

import (
	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Summarize computes total income, total expenses and balance over a set of
// transactions. This is the single aggregation path used by every caller, so
// dashboard cards, charts and the summary endpoint cannot drift apart.
//
// Decimal accumulation keeps the totals exact for currency magnitudes; the
// result does not depend on input order. An empty input yields all zeros.
func Summarize(transactions []domain.Transaction) domain.Summary {
	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero

	for _, txn := range transactions {
		switch txn.Type {
		case domain.Income:
			totalIncome = totalIncome.Add(txn.Amount)
		case domain.Expense:
			totalExpenses = totalExpenses.Add(txn.Amount)
		}
	}

	return domain.Summary{
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		Balance:       totalIncome.Sub(totalExpenses),
	}
}
