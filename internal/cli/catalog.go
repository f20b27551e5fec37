package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"StarMap/internal/config"
	"StarMap/internal/mission"
)

// CatalogCmd returns the catalog command
func CatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect mission catalogs",
	}
	cmd.AddCommand(catalogValidateCmd())
	return cmd
}

func catalogValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a catalog file (defaults to the configured catalog)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				cfg, err := config.Load(ConfigPath)
				if err != nil {
					return err
				}
				path = cfg.Catalog.Path
			}

			cat, err := mission.Load(path)
			if err != nil {
				return fmt.Errorf("invalid catalog: %w", err)
			}
			reportCatalog(cmd.OutOrStdout(), path, cat)
			return nil
		},
	}
}

func reportCatalog(w io.Writer, path string, cat *mission.Catalog) {
	if path == "" {
		path = "built-in catalog"
	}
	fmt.Fprintf(w, "%s %s: %d missions, entry %s, %d connections\n",
		completedStyle.Sprint("✓"), path, cat.Len(), cat.Entry(), len(cat.Edges()))

	for _, edge := range cat.DanglingConnections() {
		fmt.Fprintf(w, "%s %s connects to unknown mission %s\n", availableStyle.Sprint("!"), edge.From, edge.To)
	}
}
