package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"StarMap/internal/progress"
)

// ProgressCmd returns the progress command
func ProgressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Manage stored progress snapshots",
	}
	cmd.AddCommand(progressShowCmd(), progressCompleteCmd(), progressResetCmd())
	return cmd
}

func progressShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [user]",
		Short: "Print a user's stored snapshot as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(stderr)
			if err != nil {
				return err
			}
			defer e.Close()

			store, err := e.requireStore()
			if err != nil {
				return err
			}
			defer store.Close()

			snap, err := progress.LoadOrFresh(cmd.Context(), store, args[0], e.defaults())
			if err != nil {
				return err
			}
			data, err := snap.Encode()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func progressCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete [user] [mission-id]",
		Short: "Mark a mission completed for a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(stderr)
			if err != nil {
				return err
			}
			defer e.Close()

			id, err := missionArg(e.catalog, args[1])
			if err != nil {
				return err
			}

			store, err := e.requireStore()
			if err != nil {
				return err
			}
			defer store.Close()

			user := args[0]
			snap, err := progress.LoadOrFresh(cmd.Context(), store, user, e.defaults())
			if err != nil {
				return err
			}
			if snap.HasCompleted(id) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already completed %s\n", user, id)
				return nil
			}
			if err := store.Save(cmd.Context(), user, snap.Complete(id)); err != nil {
				return fmt.Errorf("failed to save progress: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s completed %s\n", completedStyle.Sprint("✓"), user, e.catalog.Get(id).Name)
			return nil
		},
	}
}

func progressResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset [user]",
		Short: "Delete a user's stored snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(stderr)
			if err != nil {
				return err
			}
			defer e.Close()

			store, err := e.requireStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Reset progress for %s\n", completedStyle.Sprint("✓"), args[0])
			return nil
		},
	}
}
