package domain

import "github.com/shopspring/decimal"

// Summary holds the aggregate totals the dashboard renders.
type Summary struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Balance       decimal.Decimal `json:"balance"`
}
