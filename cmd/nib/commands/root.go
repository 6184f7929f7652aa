package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nib",
	Short: "nib - Notebook canonicalizer",
	Long: `nib converts lightweight notebook JSON into canonical, nbformat-compatible
output with stable cell identifiers.

Decoding is lenient: missing or malformed optional fields fall back to
well-defined defaults. Encoding is deterministic: fixed key order, 2-space
indentation, byte-for-byte reproducible. Every cell ends up with a short
URL/filesystem-safe id derived from its content.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}
