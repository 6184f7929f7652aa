package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dyluth/nib/internal/printer"
	"github.com/dyluth/nib/pkg/notebook"
)

var (
	convertOutput string
)

var convertCmd = &cobra.Command{
	Use:   "convert <notebook.json>",
	Short: "Convert a notebook to canonical nbformat JSON",
	Long: `Convert a notebook JSON file to canonical, nbformat-compatible output.

The input is decoded leniently:
  • Missing or malformed optional fields fall back to their defaults
  • Cell ids are normalized to the charset [a-z0-9_-], max 64 characters
  • The notebook title is derived from the first cell's first source line

The output is deterministic: fixed key order, 2-space indentation,
nbformat 4.5. By default it is written to stdout; use -o to write a file.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Write output to a file instead of stdout")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	path := args[0]

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

	out := notebook.Encode(nb) + "\n"

	if convertOutput == "" {
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	if err := os.WriteFile(convertOutput, []byte(out), 0644); err != nil {
		return printer.Error(
			fmt.Sprintf("cannot write %s", convertOutput),
			err.Error(),
			nil,
		)
	}

	cellWord := "cells"
	if len(nb.Cells) == 1 {
		cellWord = "cell"
	}
	printer.Success("Wrote %s (%d %s)\n", convertOutput, len(nb.Cells), cellWord)
	return nil
}
