package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/spendlens/spendlens/internal/cli"
)

func summaryCmd() *cobra.Command {
	var showAll bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show monthly spending summary",
		Long:  `Display total monthly spend, total invested, and the per-category breakdown.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			summary, err := store.GetSummary(ctx)
			if err != nil {
				return fmt.Errorf("failed to compute summary: %w", err)
			}

			var b strings.Builder
			b.WriteString(cli.LabelStyle.Render("Monthly") + summary.TotalMonthlyExpense.StringFixed(2) + "\n")
			b.WriteString(cli.LabelStyle.Render("Invested") + summary.TotalInvestment.StringFixed(2) + "\n")
			b.WriteString(cli.LabelStyle.Render("Expenses") + fmt.Sprintf("%d", summary.ExpenseCount))
			fmt.Println(cli.RenderBox("Spending Summary", b.String()))

			type row struct {
				category string
				monthly  decimal.Decimal
			}
			rows := make([]row, 0, len(summary.CategoryBreakdown))
			for category, monthly := range summary.CategoryBreakdown {
				if !showAll && monthly.IsZero() {
					continue
				}
				rows = append(rows, row{category: category, monthly: monthly})
			}
			sort.Slice(rows, func(i, j int) bool {
				if rows[i].monthly.Equal(rows[j].monthly) {
					return rows[i].category < rows[j].category
				}
				return rows[i].monthly.GreaterThan(rows[j].monthly)
			})

			if len(rows) == 0 {
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%s\n", r.category, r.monthly.StringFixed(2))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&showAll, "all", false, "Include categories with no spending")

	return cmd
}
