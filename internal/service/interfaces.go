// Package service defines the interfaces shared by the application's
// transport surfaces.
package service

import (
	"context"

	"github.com/spendlens/spendlens/internal/model"
)

// Storage defines the contract for the expense persistence layer.
type Storage interface {
	SaveExpense(ctx context.Context, expense *model.Expense) error
	GetExpense(ctx context.Context, id string) (*model.Expense, error)
	ListExpenses(ctx context.Context, category string) ([]model.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
	GetSummary(ctx context.Context) (*model.ExpenseSummary, error)
	Migrate(ctx context.Context) error
	Close() error
}

// Categorizer runs the AI-assisted categorization pipeline.
type Categorizer interface {
	Categorize(ctx context.Context, rawName string) (*model.CategorizationResult, error)
}
