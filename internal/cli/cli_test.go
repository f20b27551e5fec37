package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setup points the commands at a config in a temp dir with its own SQLite file.
func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cfg := `{
  "logLevel": "error",
  "store": {"driver": "sqlite", "sqlitePath": "` + filepath.ToSlash(filepath.Join(dir, "progress.db")) + `"},
  "profile": {"userName": "Ana"}
}`
	path := filepath.Join(dir, "starmap.json")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))

	prevConfig, prevStderr, prevNoColor := ConfigPath, stderr, color.NoColor
	ConfigPath, stderr, color.NoColor = path, io.Discard, true
	t.Cleanup(func() {
		ConfigPath, stderr, color.NoColor = prevConfig, prevStderr, prevNoColor
	})
	return dir
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func lineFor(out, id string) string {
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, id+" ") {
			return line
		}
	}
	return ""
}

func TestMapFreshSnapshot(t *testing.T) {
	setup(t)

	out, err := run(t, MapCmd())
	require.NoError(t, err)

	assert.Contains(t, out, "Ana  level 5  450 xp")
	assert.Contains(t, lineFor(out, "bone-loss"), "available")
	assert.Contains(t, lineFor(out, "muscle-atrophy"), "locked")
	assert.Contains(t, out, "Unlocked powers (0)")
	assert.Contains(t, out, "none yet")
}

func TestMapFromProgressFile(t *testing.T) {
	dir := setup(t)
	path := filepath.Join(dir, "progress.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"level": 2, "completedMissions": ["bone-loss", "ghost"]}`), 0o644))

	out, err := run(t, MapCmd(), "--progress", path)
	require.NoError(t, err)

	assert.Contains(t, lineFor(out, "bone-loss"), "completed")
	assert.Contains(t, lineFor(out, "muscle-atrophy"), "available")
	assert.Contains(t, lineFor(out, "radiation"), "available")
	assert.Contains(t, lineFor(out, "vision"), "locked")
	assert.Contains(t, out, "Unlocked powers (1)")
	assert.Contains(t, out, "Bone Loss - ")
}

func TestMapRejectsBothSources(t *testing.T) {
	setup(t)
	_, err := run(t, MapCmd(), "--progress", "a.json", "--user", "ana")
	assert.Error(t, err)
}

func TestProgressCompleteShowReset(t *testing.T) {
	setup(t)

	out, err := run(t, ProgressCmd(), "complete", "ana", "bone-loss")
	require.NoError(t, err)
	assert.Contains(t, out, "ana completed Bone Loss")

	out, err = run(t, ProgressCmd(), "complete", "ana", "bone-loss")
	require.NoError(t, err)
	assert.Contains(t, out, "already completed")

	_, err = run(t, ProgressCmd(), "complete", "ana", "ghost")
	assert.ErrorContains(t, err, "unknown mission")

	out, err = run(t, ProgressCmd(), "show", "ana")
	require.NoError(t, err)
	assert.Contains(t, out, `"completedMissions":["bone-loss"]`)
	assert.Contains(t, out, `"totalMissionsCompleted":1`)

	out, err = run(t, MapCmd(), "--user", "ana")
	require.NoError(t, err)
	assert.Contains(t, lineFor(out, "bone-loss"), "completed")
	assert.Contains(t, lineFor(out, "radiation"), "available")

	_, err = run(t, ProgressCmd(), "reset", "ana")
	require.NoError(t, err)

	out, err = run(t, ProgressCmd(), "show", "ana")
	require.NoError(t, err)
	assert.Contains(t, out, `"completedMissions":[]`)
	assert.Contains(t, out, `"level":5`)
}

func TestCatalogValidate(t *testing.T) {
	dir := setup(t)

	out, err := run(t, CatalogCmd(), "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "built-in catalog: 8 missions, entry bone-loss")

	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"missions": [
  {"id": "a", "name": "A", "connections": ["b", "zzz"], "entryPoint": true},
  {"id": "b", "name": "B"}
]}`), 0o644))

	out, err = run(t, CatalogCmd(), "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2 missions, entry a")
	assert.Contains(t, out, "a connects to unknown mission zzz")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"missions": [{"id": "a", "name": "A"}]}`), 0o644))
	_, err = run(t, CatalogCmd(), "validate", bad)
	assert.ErrorContains(t, err, "invalid catalog")
}
