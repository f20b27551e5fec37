package progress

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StarMap/internal/mission"
)

func TestDecodeMissingOptionalFields(t *testing.T) {
	snap, err := Decode([]byte(`{"level": 3, "completedMissions": ["bone-loss"]}`))
	require.NoError(t, err)

	assert.Equal(t, 3, snap.Level)
	assert.Equal(t, []mission.ID{"bone-loss"}, snap.CompletedMissions)
	assert.Equal(t, 0, snap.Experience)
	assert.Equal(t, 0, snap.TotalMissionsCompleted)
	assert.NotNil(t, snap.Badges)
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode([]byte(`{"level": "high"}`))
	assert.Error(t, err)
}

func TestFreshUsesDefaults(t *testing.T) {
	snap := Fresh(DefaultDefaults())
	assert.Equal(t, 5, snap.Level)
	assert.Equal(t, 450, snap.Experience)
	assert.Empty(t, snap.CompletedMissions)
	assert.Empty(t, snap.Badges)
}

func TestComplete(t *testing.T) {
	base := Snapshot{Level: 1, CurrentMission: "bone-loss"}

	next := base.Complete("bone-loss")
	assert.Equal(t, []mission.ID{"bone-loss"}, next.CompletedMissions)
	assert.Equal(t, 1, next.TotalMissionsCompleted)
	assert.Empty(t, next.CurrentMission)
	assert.Empty(t, base.CompletedMissions, "original snapshot must not change")

	again := next.Complete("bone-loss")
	assert.Equal(t, next, again)
}

func TestCompletedSet(t *testing.T) {
	snap := Snapshot{CompletedMissions: []mission.ID{"a", "b", "a"}}
	set := snap.CompletedSet()
	assert.Len(t, set, 2)
	assert.True(t, snap.HasCompleted("b"))
	assert.False(t, snap.HasCompleted("c"))
}

func openTestStore(t *testing.T) Store {
	t.Helper()
	store, err := Open(StoreConfig{
		Driver:     DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "progress.db"),
	}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.Load(ctx, "cadet")
	assert.ErrorIs(t, err, ErrNotFound)

	snap := Snapshot{
		Level:                  7,
		CompletedMissions:      []mission.ID{"bone-loss", "radiation"},
		Badges:                 []string{"shield", "star"},
		CurrentMission:         "vision",
		Experience:             900,
		TotalMissionsCompleted: 2,
	}
	require.NoError(t, store.Save(ctx, "cadet", snap))

	loaded, err := store.Load(ctx, "cadet")
	require.NoError(t, err)
	assert.Equal(t, snap, loaded)

	updated := loaded.Complete("vision")
	require.NoError(t, store.Save(ctx, "cadet", updated))

	loaded, err = store.Load(ctx, "cadet")
	require.NoError(t, err)
	assert.Equal(t, []mission.ID{"bone-loss", "radiation", "vision"}, loaded.CompletedMissions)
	assert.Equal(t, 3, loaded.TotalMissionsCompleted)

	require.NoError(t, store.Delete(ctx, "cadet"))
	_, err = store.Load(ctx, "cadet")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, store.Delete(ctx, "cadet"))
}

func TestLoadOrFresh(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	snap, err := LoadOrFresh(ctx, store, "newbie", Defaults{Level: 2, Experience: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Level)
	assert.Equal(t, 10, snap.Experience)
}

func TestOpenNoneAndUnknownDriver(t *testing.T) {
	store, err := Open(StoreConfig{Driver: DriverNone}, zerolog.Nop())
	require.NoError(t, err)
	assert.Nil(t, store)

	_, err = Open(StoreConfig{Driver: "mongo"}, zerolog.Nop())
	assert.Error(t, err)
}
