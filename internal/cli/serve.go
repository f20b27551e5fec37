package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"StarMap/internal/server"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	var (
		addr     string
		userName string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the star map over HTTP and websocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(os.Stdout)
			if err != nil {
				return err
			}
			defer e.Close()

			store, err := e.openStore()
			if err != nil {
				return err
			}
			if store != nil {
				defer store.Close()
			}

			var overrides server.Overrides
			if cmd.Flags().Changed("addr") {
				overrides.Addr = &addr
			}
			if cmd.Flags().Changed("user-name") {
				overrides.UserName = &userName
			}
			cfg := server.AppConfigFrom(e.cfg).WithOverrides(overrides)

			app, err := server.NewApp(cfg, e.catalog, store, e.log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on (e.g., 127.0.0.1:8080)")
	cmd.Flags().StringVar(&userName, "user-name", "", "name shown on the profile overlay")
	return cmd
}
