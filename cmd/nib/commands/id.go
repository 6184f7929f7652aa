package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dyluth/nib/pkg/notebook"
)

var idCmd = &cobra.Command{
	Use:   "id <string>...",
	Short: "Normalize strings into valid cell ids",
	Long: `Normalize one or more strings into valid cell ids, one per line.

A normalized id matches ^[a-z0-9_-]{1,64}$: runs of other characters
become single hyphens, leading/trailing separators are stripped, the
result is truncated to 64 characters and lowercased. An empty result
becomes "_". The transform is idempotent, so feeding an id back in
returns it unchanged.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runID,
}

func init() {
	rootCmd.AddCommand(idCmd)
}

func runID(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		fmt.Fprintln(cmd.OutOrStdout(), notebook.NormalizeID(arg))
	}
	return nil
}
