package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dyluth/nib/internal/printer"
	"github.com/dyluth/nib/internal/report"
	"github.com/dyluth/nib/pkg/notebook"
)

var (
	cellsTag      string
	cellsCode     bool
	cellsMarkdown bool
	cellsJSON     bool
)

var cellsCmd = &cobra.Command{
	Use:   "cells <notebook.json>",
	Short: "List the cells of a notebook",
	Long: `List the cells of a notebook after lenient decoding and id normalization.

For each cell, displays:
  • Normalized cell id
  • Kind (markdown or code)
  • Tags
  • Number of source lines and the first source line

Filters are ANDed together. Use --json for machine-readable JSONL output.`,
	Args: cobra.ExactArgs(1),
	RunE: runCells,
}

func init() {
	cellsCmd.Flags().StringVar(&cellsTag, "tag", "", "Only show cells with a tag matching this glob pattern")
	cellsCmd.Flags().BoolVar(&cellsCode, "code", false, "Only show code cells")
	cellsCmd.Flags().BoolVar(&cellsMarkdown, "markdown", false, "Only show markdown cells")
	cellsCmd.Flags().BoolVar(&cellsJSON, "json", false, "Output in JSONL format")
	rootCmd.AddCommand(cellsCmd)
}

func runCells(cmd *cobra.Command, args []string) error {
	path := args[0]

	if cellsCode && cellsMarkdown {
		return printer.Error(
			"conflicting flags",
			"--code and --markdown exclude every cell when combined; pass at most one.",
			nil,
		)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return printer.Error(
			fmt.Sprintf("cannot read %s", path),
			err.Error(),
			nil,
		)
	}

	nb, err := notebook.Decode(string(raw))
	if err != nil {
		return printer.Error(
			fmt.Sprintf("cannot decode %s", path),
			err.Error(),
			[]string{
				"The file must contain a JSON object at the top level",
				fmt.Sprintf("Check the syntax with: jq . %s", path),
			},
		)
	}

	criteria := report.Criteria{TagGlob: cellsTag}
	if cellsCode {
		criteria.Kind = report.KindCode
	}
	if cellsMarkdown {
		criteria.Kind = report.KindMarkdown
	}

	cells := report.Filter(nb.Cells, criteria)

	if cellsJSON {
		return report.FormatJSONL(cmd.OutOrStdout(), cells)
	}
	report.FormatTable(cmd.OutOrStdout(), cells, path)
	return nil
}
