package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for exportverifier
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exportverifier",
		Short: "Verifies exported tabular files against reference definitions",
		Long: `Exportverifier compares a directory of exported CSV/XLSX files
against a fixed reference catalog, checking file presence, column headers
and cell-level content, and flagging placeholder values that are
technically non-blank but semantically meaningless.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	// Add subcommands
	cmd.AddCommand(NewVerifyCommand())
	cmd.AddCommand(NewCatalogCommand())

	return cmd
}
