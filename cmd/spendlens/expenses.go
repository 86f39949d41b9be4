package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/spendlens/spendlens/internal/cli"
	"github.com/spendlens/spendlens/internal/model"
	"github.com/spendlens/spendlens/internal/taxonomy"
)

func expensesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Manage logged expenses",
		Long:  `Add, list, and remove tracked expenses.`,
	}

	cmd.AddCommand(addExpenseCmd())
	cmd.AddCommand(listExpensesCmd())
	cmd.AddCommand(removeExpenseCmd())

	return cmd
}

func addExpenseCmd() *cobra.Command {
	var (
		totalCost    string
		usageMonths  int
		purchaseDate string
		notes        string
		skipAI       bool
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new expense",
		Long: `Log a purchase. The name is cleaned and categorized automatically unless
--no-ai is given, in which case it is stored under the catch-all category.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rawName := strings.Join(args, " ")

			cost, err := decimal.NewFromString(totalCost)
			if err != nil {
				return fmt.Errorf("invalid cost %q: %w", totalCost, err)
			}
			if cost.IsNegative() {
				return fmt.Errorf("cost cannot be negative")
			}
			if usageMonths < 1 {
				return fmt.Errorf("usage months must be at least 1")
			}

			parsedDate := time.Now().UTC().Truncate(24 * time.Hour)
			if purchaseDate != "" {
				parsedDate, err = time.Parse("2006-01-02", purchaseDate)
				if err != nil {
					return fmt.Errorf("purchase date must be YYYY-MM-DD: %w", err)
				}
			}

			expense := &model.Expense{
				ID:           uuid.NewString(),
				Name:         rawName,
				Category:     taxonomy.CatchAll,
				TotalCost:    cost,
				MonthlyCost:  model.AmortizedMonthlyCost(cost, usageMonths),
				UsageMonths:  usageMonths,
				PurchaseDate: parsedDate,
				Notes:        notes,
			}

			if !skipAI {
				categorizer, err := initCategorizer()
				if err != nil {
					return err
				}

				result, err := categorizer.Categorize(ctx, rawName)
				if err != nil {
					return fmt.Errorf("failed to categorize %q: %w", rawName, err)
				}

				expense.Name = result.CleanedName
				expense.Category = result.Category
				expense.Subcategory = result.Subcategory
				expense.BrandColor = result.BrandColor
				expense.BrandAccentColor = result.BrandAccentColor
				expense.BrandLogoURL = result.LogoURL
				expense.ImageURL = result.ImageURL
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.SaveExpense(ctx, expense); err != nil {
				return fmt.Errorf("failed to save expense: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %q (%s, %s/month)",
				expense.Name, expense.Category, expense.MonthlyCost.StringFixed(2))))
			return nil
		},
	}

	cmd.Flags().StringVar(&totalCost, "cost", "0", "Total purchase cost")
	cmd.Flags().IntVar(&usageMonths, "months", 1, "Expected usage period in months")
	cmd.Flags().StringVar(&purchaseDate, "date", "", "Purchase date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().BoolVar(&skipAI, "no-ai", false, "Skip AI categorization")

	return cmd
}

func listExpensesCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged expenses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if category != "" && !taxonomy.IsCategory(category) {
				return fmt.Errorf("unknown category %q", category)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			expenses, err := store.ListExpenses(ctx, category)
			if err != nil {
				return fmt.Errorf("failed to list expenses: %w", err)
			}

			if len(expenses) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No expenses found. Use 'spendlens expenses add' to log one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Name"),
				headerStyle.Render("Category"),
				headerStyle.Render("Total"),
				headerStyle.Render("Monthly"),
				headerStyle.Render("Purchased"))

			for _, e := range expenses {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					cli.SubtleStyle.Render(shortID(e.ID)),
					e.Name,
					e.Category,
					e.TotalCost.StringFixed(2),
					e.MonthlyCost.StringFixed(2),
					e.PurchaseDate.Format("2006-01-02"))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category")

	return cmd
}

func removeExpenseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteExpense(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to remove expense: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Removed expense " + args[0]))
			return nil
		},
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
