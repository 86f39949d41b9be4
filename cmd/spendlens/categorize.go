package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spendlens/spendlens/internal/cli"
	"github.com/spendlens/spendlens/internal/model"
)

func categorizeCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "categorize <name>",
		Short: "Categorize a single expense name",
		Long:  `Clean up a raw purchase name and suggest a category, brand colors, and imagery for it.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawName := strings.Join(args, " ")

			categorizer, err := initCategorizer()
			if err != nil {
				return err
			}

			result, err := categorizer.Categorize(cmd.Context(), rawName)
			if err != nil {
				return fmt.Errorf("failed to categorize %q: %w", rawName, err)
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			fmt.Println(renderResult(result))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output raw JSON")

	return cmd
}

func renderResult(r *model.CategorizationResult) string {
	var b strings.Builder

	row := func(label, value string) {
		if value == "" {
			value = cli.SubtleStyle.Render("-")
		}
		b.WriteString(cli.LabelStyle.Render(label) + value + "\n")
	}

	row("Name", r.CleanedName)
	category := r.Category
	if r.Subcategory != "" {
		category += cli.SubtleStyle.Render(" / " + r.Subcategory)
	}
	row("Category", category)
	row("Confidence", string(r.Confidence))
	row("Brand color", cli.Swatch(r.BrandColor))
	row("Accent color", cli.Swatch(r.BrandAccentColor))
	row("Logo", r.LogoURL)
	row("Image", r.ImageURL)

	return cli.RenderBox("Categorization", strings.TrimRight(b.String(), "\n"))
}
