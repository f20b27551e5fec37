package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"StarMap/internal/cli"
	"StarMap/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "starmap",
		Short:   "Star map of space-medicine missions",
		Version: version.String(),
		Long: `starmap derives which missions a player has completed, which are
available and which are still locked, and serves the result to the map screen.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&cli.ConfigPath, "config", "", "config file or directory holding starmap.json")

	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.MapCmd())
	rootCmd.AddCommand(cli.CatalogCmd())
	rootCmd.AddCommand(cli.ProgressCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
