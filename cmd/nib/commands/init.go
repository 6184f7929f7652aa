package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dyluth/nib/internal/config"
	"github.com/dyluth/nib/internal/printer"
	"github.com/dyluth/nib/internal/scaffold"
)

var (
	forceInit bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new nib project",
	Long: `Initialize a new nib project in the current directory.

Creates:
  • nib.yml - Project configuration file
  • notebook.json - Starter notebook with a markdown and a code cell

An existing, valid nib.yml steers the starter notebook's kernel and
authors. Use --force to reinitialize (WARNING: overwrites both files).`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Force reinitialization (removes existing nib.yml and notebook.json)")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	// Check for existing files (unless --force)
	if !forceInit {
		if err := scaffold.CheckExisting(); err != nil {
			return err
		}
	}

	// A pre-existing nib.yml (with --force) keeps steering the scaffold;
	// a broken one falls back to defaults rather than blocking init.
	cfg, err := config.LoadOrDefault(config.DefaultPath)
	if err != nil {
		printer.Warning("ignoring existing %s: %v\n", config.DefaultPath, err)
		cfg = config.Default()
	}

	if err := scaffold.Initialize(forceInit, cfg); err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	scaffold.PrintSuccess()
	return nil
}
