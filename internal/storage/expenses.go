package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens/internal/common"
	"github.com/spendlens/spendlens/internal/model"
)

// SaveExpense inserts or replaces an expense.
func (s *SQLiteStorage) SaveExpense(ctx context.Context, expense *model.Expense) error {
	if expense == nil {
		return fmt.Errorf("expense cannot be nil")
	}
	if expense.ID == "" {
		return fmt.Errorf("expense ID cannot be empty")
	}
	if expense.Name == "" {
		return fmt.Errorf("expense name cannot be empty")
	}

	now := time.Now().UTC()
	if expense.CreatedAt.IsZero() {
		expense.CreatedAt = now
	}
	expense.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (
			id, name, category, subcategory, total_cost, monthly_cost,
			usage_months, brand_color, brand_accent_color, brand_logo_url,
			image_url, purchase_date, notes, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			category = excluded.category,
			subcategory = excluded.subcategory,
			total_cost = excluded.total_cost,
			monthly_cost = excluded.monthly_cost,
			usage_months = excluded.usage_months,
			brand_color = excluded.brand_color,
			brand_accent_color = excluded.brand_accent_color,
			brand_logo_url = excluded.brand_logo_url,
			image_url = excluded.image_url,
			purchase_date = excluded.purchase_date,
			notes = excluded.notes,
			updated_at = excluded.updated_at
	`,
		expense.ID, expense.Name, expense.Category, expense.Subcategory,
		expense.TotalCost.String(), expense.MonthlyCost.String(),
		expense.UsageMonths, expense.BrandColor, expense.BrandAccentColor,
		expense.BrandLogoURL, expense.ImageURL, expense.PurchaseDate,
		expense.Notes, expense.CreatedAt, expense.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}

	return nil
}

// GetExpense retrieves one expense by ID.
func (s *SQLiteStorage) GetExpense(ctx context.Context, id string) (*model.Expense, error) {
	row := s.db.QueryRowContext(ctx, selectExpenseColumns+` FROM expenses WHERE id = ?`, id)

	expense, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("expense %s: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return expense, nil
}

// ListExpenses returns all expenses, optionally filtered by category, newest
// purchase first.
func (s *SQLiteStorage) ListExpenses(ctx context.Context, category string) ([]model.Expense, error) {
	query := selectExpenseColumns + ` FROM expenses`
	args := []any{}
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY purchase_date DESC, created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var expenses []model.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, *expense)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, nil
}

// DeleteExpense removes an expense by ID.
func (s *SQLiteStorage) DeleteExpense(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("expense %s: %w", id, common.ErrNotFound)
	}

	return nil
}

// GetSummary aggregates all stored expenses.
func (s *SQLiteStorage) GetSummary(ctx context.Context) (*model.ExpenseSummary, error) {
	expenses, err := s.ListExpenses(ctx, "")
	if err != nil {
		return nil, err
	}

	summary := model.Summarize(expenses)
	return &summary, nil
}

const selectExpenseColumns = `SELECT
	id, name, category, subcategory, total_cost, monthly_cost,
	usage_months, brand_color, brand_accent_color, brand_logo_url,
	image_url, purchase_date, notes, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (*model.Expense, error) {
	var expense model.Expense
	var totalCost, monthlyCost string
	var subcategory, brandColor, accentColor, logoURL, imageURL, notes sql.NullString

	err := row.Scan(
		&expense.ID, &expense.Name, &expense.Category, &subcategory,
		&totalCost, &monthlyCost, &expense.UsageMonths,
		&brandColor, &accentColor, &logoURL, &imageURL,
		&expense.PurchaseDate, &notes, &expense.CreatedAt, &expense.UpdatedAt)
	if err != nil {
		return nil, err
	}

	expense.Subcategory = subcategory.String
	expense.BrandColor = brandColor.String
	expense.BrandAccentColor = accentColor.String
	expense.BrandLogoURL = logoURL.String
	expense.ImageURL = imageURL.String
	expense.Notes = notes.String

	expense.TotalCost, err = decimal.NewFromString(totalCost)
	if err != nil {
		return nil, fmt.Errorf("corrupt total_cost %q: %w", totalCost, err)
	}
	expense.MonthlyCost, err = decimal.NewFromString(monthlyCost)
	if err != nil {
		return nil, fmt.Errorf("corrupt monthly_cost %q: %w", monthlyCost, err)
	}

	return &expense, nil
}
