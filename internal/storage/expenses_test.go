package storage

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/spendlens/internal/common"
	"github.com/spendlens/spendlens/internal/model"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func testExpense(name, category string, total string, months int) *model.Expense {
	totalCost := decimal.RequireFromString(total)
	return &model.Expense{
		ID:           uuid.NewString(),
		Name:         name,
		Category:     category,
		Subcategory:  "Online Shopping",
		TotalCost:    totalCost,
		MonthlyCost:  model.AmortizedMonthlyCost(totalCost, months),
		UsageMonths:  months,
		BrandColor:   "#FF9900",
		PurchaseDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestSaveAndGetExpense(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	expense := testExpense("MacBook Pro", "Technology & Electronics", "2400", 24)
	require.NoError(t, store.SaveExpense(ctx, expense))

	got, err := store.GetExpense(ctx, expense.ID)
	require.NoError(t, err)

	assert.Equal(t, expense.Name, got.Name)
	assert.Equal(t, expense.Category, got.Category)
	assert.Equal(t, expense.Subcategory, got.Subcategory)
	assert.Equal(t, "#FF9900", got.BrandColor)
	assert.Equal(t, 24, got.UsageMonths)
	assert.True(t, got.TotalCost.Equal(decimal.RequireFromString("2400")))
	assert.True(t, got.MonthlyCost.Equal(decimal.RequireFromString("100")))
	assert.False(t, got.CreatedAt.IsZero())
}

func TestGetExpenseNotFound(t *testing.T) {
	store := newTestStorage(t)

	_, err := store.GetExpense(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSaveExpenseUpsert(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	expense := testExpense("Keyboard", "Technology & Electronics", "120", 12)
	require.NoError(t, store.SaveExpense(ctx, expense))

	expense.Name = "Mechanical Keyboard"
	require.NoError(t, store.SaveExpense(ctx, expense))

	got, err := store.GetExpense(ctx, expense.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mechanical Keyboard", got.Name)

	all, err := store.ListExpenses(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSaveExpenseValidation(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	assert.Error(t, store.SaveExpense(ctx, nil))
	assert.Error(t, store.SaveExpense(ctx, &model.Expense{Name: "no id"}))
	assert.Error(t, store.SaveExpense(ctx, &model.Expense{ID: "x"}))
}

func TestListExpensesByCategory(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveExpense(ctx, testExpense("MacBook", "Technology & Electronics", "2400", 24)))
	require.NoError(t, store.SaveExpense(ctx, testExpense("Desk", "Housing", "300", 36)))
	require.NoError(t, store.SaveExpense(ctx, testExpense("Monitor", "Technology & Electronics", "500", 24)))

	tech, err := store.ListExpenses(ctx, "Technology & Electronics")
	require.NoError(t, err)
	assert.Len(t, tech, 2)

	all, err := store.ListExpenses(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := store.ListExpenses(ctx, "Pets")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeleteExpense(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	expense := testExpense("Couch", "Housing", "900", 48)
	require.NoError(t, store.SaveExpense(ctx, expense))
	require.NoError(t, store.DeleteExpense(ctx, expense.ID))

	_, err := store.GetExpense(ctx, expense.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	assert.ErrorIs(t, store.DeleteExpense(ctx, expense.ID), common.ErrNotFound)
}

func TestGetSummary(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveExpense(ctx, testExpense("MacBook", "Technology & Electronics", "2400", 24)))
	require.NoError(t, store.SaveExpense(ctx, testExpense("Desk", "Housing", "360", 36)))

	summary, err := store.GetSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.ExpenseCount)
	assert.True(t, summary.TotalInvestment.Equal(decimal.RequireFromString("2760")))
	assert.True(t, summary.TotalMonthlyExpense.Equal(decimal.RequireFromString("110")))
	assert.True(t, summary.CategoryBreakdown["Technology & Electronics"].Equal(decimal.RequireFromString("100")))
	assert.True(t, summary.CategoryBreakdown["Housing"].Equal(decimal.RequireFromString("10")))
}

func TestMigrateIsIdempotent(t *testing.T) {
	store := newTestStorage(t)
	assert.NoError(t, store.Migrate(context.Background()))
}
