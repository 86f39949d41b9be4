package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/spendlens/spendlens/internal/cli"
	"github.com/spendlens/spendlens/internal/model"
)

func batchCmd() *cobra.Command {
	var (
		outputPath string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Categorize a file of expense names",
		Long: `Read one raw purchase name per line and categorize each. Blank lines and
lines starting with # are skipped. Names that fail are reported at the end
without stopping the run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := readNames(args[0])
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Println(cli.FormatWarning("No names found in " + args[0]))
				return nil
			}

			categorizer, err := initCategorizer()
			if err != nil {
				return err
			}

			bar := progressbar.NewOptions(len(names),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionShowElapsedTimeOnFinish(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Categorizing expenses..."),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)

			results := make([]*model.CategorizationResult, 0, len(names))
			failures := make(map[string]error)

			for _, name := range names {
				result, err := categorizer.Categorize(cmd.Context(), name)
				if err != nil {
					if cmd.Context().Err() != nil {
						return cmd.Context().Err()
					}
					failures[name] = err
				} else {
					results = append(results, result)
				}
				_ = bar.Add(1)
			}

			if err := writeBatchResults(results, outputPath, asJSON); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Categorized %d of %d names", len(results), len(names))))
			for name, err := range failures {
				fmt.Println(cli.FormatError(fmt.Sprintf("%s: %v", name, err)))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write results to a file instead of stdout")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output results as a JSON array")

	return cmd
}

func readNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open names file: %w", err)
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read names file: %w", err)
	}

	return names, nil
}

func writeBatchResults(results []*model.CategorizationResult, outputPath string, asJSON bool) error {
	if outputPath == "" {
		return renderBatchResults(os.Stdout, results, asJSON)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	// Files always get JSON; the styled rendering is terminal output.
	return renderBatchResults(f, results, true)
}

func renderBatchResults(out io.Writer, results []*model.CategorizationResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		fmt.Fprintln(out, renderResult(r))
	}
	return nil
}
