package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"StarMap/internal/mission"
	"StarMap/internal/progress"
	"StarMap/internal/starmap"
)

var (
	completedStyle = color.New(color.FgGreen)
	availableStyle = color.New(color.FgYellow)
	lockedStyle    = color.New(color.FgRed)
	headerStyle    = color.New(color.Bold)
)

// MapCmd returns the map command
func MapCmd() *cobra.Command {
	var (
		progressFile string
		user         string
	)

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Print the star map for a progress snapshot",
		Long: `Print every mission with its state, then the unlocked powers.

Progress comes from a JSON file (--progress), from the store (--user),
or defaults to a fresh snapshot.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if progressFile != "" && user != "" {
				return fmt.Errorf("--progress and --user are mutually exclusive")
			}

			e, err := loadEnv(stderr)
			if err != nil {
				return err
			}
			defer e.Close()

			snap, err := resolveSnapshot(cmd.Context(), e, progressFile, user)
			if err != nil {
				return err
			}

			view := starmap.Build(e.catalog, snap, e.cfg.Profile.UserName)
			renderMap(cmd.OutOrStdout(), view)
			return nil
		},
	}

	cmd.Flags().StringVar(&progressFile, "progress", "", "progress snapshot JSON file")
	cmd.Flags().StringVar(&user, "user", "", "load progress for this user from the store")
	return cmd
}

func resolveSnapshot(ctx context.Context, e *env, progressFile, user string) (progress.Snapshot, error) {
	switch {
	case progressFile != "":
		data, err := os.ReadFile(progressFile)
		if err != nil {
			return progress.Snapshot{}, fmt.Errorf("failed to read progress: %w", err)
		}
		return progress.Decode(data)

	case user != "":
		store, err := e.requireStore()
		if err != nil {
			return progress.Snapshot{}, err
		}
		defer store.Close()
		return progress.LoadOrFresh(ctx, store, user, e.defaults())

	default:
		return progress.Fresh(e.defaults()), nil
	}
}

func styleFor(status starmap.Status) *color.Color {
	switch status {
	case starmap.StatusCompleted:
		return completedStyle
	case starmap.StatusAvailable:
		return availableStyle
	default:
		return lockedStyle
	}
}

func renderMap(w io.Writer, view *starmap.View) {
	p := view.Profile
	fmt.Fprintf(w, "\n%s  level %d  %d xp\n", headerStyle.Sprint(p.UserName), p.Level, p.Experience)
	if view.CurrentMission != "" {
		fmt.Fprintf(w, "Current mission: %s\n", view.CurrentMission)
	}

	fmt.Fprintf(w, "\n%-20s %-10s %s\n", "ID", "STATUS", "NAME")
	fmt.Fprintln(w, "────────────────────────────────────────────────────────────────")
	for _, m := range view.Missions {
		status := m.Status()
		// Pad before coloring so escape codes do not break the columns.
		fmt.Fprintf(w, "%-20s %s %s\n", m.ID, styleFor(status).Sprintf("%-10s", status), m.Name)
	}

	fmt.Fprintf(w, "\n%s (%d)\n", headerStyle.Sprint("Unlocked powers"), len(view.UnlockedPowers))
	if len(view.UnlockedPowers) == 0 {
		fmt.Fprintln(w, "  none yet")
	}
	for _, power := range view.UnlockedPowers {
		fmt.Fprintf(w, "  ✓ %s\n", power)
	}
	fmt.Fprintln(w)
}

// missionArg checks a mission id given on the command line.
func missionArg(cat *mission.Catalog, raw string) (mission.ID, error) {
	id := mission.ID(raw)
	if cat.Get(id) == nil {
		return "", fmt.Errorf("unknown mission %q", raw)
	}
	return id, nil
}
