package model

import (
	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens/internal/taxonomy"
)

// ExpenseSummary aggregates logged expenses into the totals shown on the
// dashboard.
type ExpenseSummary struct {
	CategoryBreakdown   map[string]decimal.Decimal
	TotalMonthlyExpense decimal.Decimal
	TotalInvestment     decimal.Decimal
	ExpenseCount        int
}

// Summarize computes monthly totals and the per-category monthly breakdown.
// Every taxonomy category appears in the breakdown, zero-valued when unused.
func Summarize(expenses []Expense) ExpenseSummary {
	breakdown := make(map[string]decimal.Decimal, len(taxonomy.Categories()))
	for _, cat := range taxonomy.Categories() {
		breakdown[cat] = decimal.Zero
	}

	summary := ExpenseSummary{
		CategoryBreakdown:   breakdown,
		TotalMonthlyExpense: decimal.Zero,
		TotalInvestment:     decimal.Zero,
		ExpenseCount:        len(expenses),
	}

	for _, e := range expenses {
		summary.TotalMonthlyExpense = summary.TotalMonthlyExpense.Add(e.MonthlyCost)
		summary.TotalInvestment = summary.TotalInvestment.Add(e.TotalCost)
		cat := taxonomy.Normalize(e.Category)
		breakdown[cat] = breakdown[cat].Add(e.MonthlyCost)
	}

	return summary
}
