package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCatalogCommand creates and returns the catalog subcommand
func NewCatalogCommand() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the reference definitions the verifier checks against",
		Long: `Print every catalogued file path with its expected column count and
row policy (fixed specification rows, or freeform rows with count bounds).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, path := range cat.Paths() {
				def, _ := cat.Lookup(path)
				policy := fmt.Sprintf("%d spec row(s)", len(def.Rows))
				switch {
				case def.AnyRows && def.RowCount > 0:
					policy = fmt.Sprintf("freeform rows, exactly %d", def.RowCount)
				case def.AnyRows && def.MinRows > 0:
					policy = fmt.Sprintf("freeform rows, at least %d", def.MinRows)
				case def.AnyRows:
					policy = "freeform rows"
				}
				fmt.Fprintf(out, "%s  (%d columns, %s)\n", path, len(def.Headers), policy)
			}
			fmt.Fprintf(out, "\n%d file definition(s)\n", cat.Len())
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "external reference data file (overrides the embedded catalog)")

	return cmd
}
