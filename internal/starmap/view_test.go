package starmap

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StarMap/internal/mission"
	"StarMap/internal/progress"
)

func TestBuildView(t *testing.T) {
	cat := seedCatalog(t)
	snap := progress.Snapshot{
		Level:             6,
		CompletedMissions: []mission.ID{"bone-loss"},
		Badges:            []string{"shield"},
		CurrentMission:    "radiation",
		Experience:        520,
	}

	v := Build(cat, snap, "Cadete Cósmico")

	assert.Len(t, v.Missions, cat.Len())
	assert.Len(t, v.Active, 2)
	assert.Equal(t, []string{"Bone Loss - Why skeletons thin out in microgravity"}, v.UnlockedPowers)
	assert.Equal(t, Profile{UserName: "Cadete Cósmico", Level: 6, Experience: 520, Badges: []string{"shield"}}, v.Profile)
	assert.Equal(t, mission.ID("radiation"), v.CurrentMission)
}

func TestConnections(t *testing.T) {
	cat := seedCatalog(t)
	v := Build(cat, snapshot("bone-loss"), "Cadet")

	require.Len(t, v.Connections, len(cat.Edges()))
	for _, c := range v.Connections {
		from := cat.Get(c.From)
		to := cat.Get(c.To)
		require.NotNil(t, from)
		require.NotNil(t, to)
		assert.Equal(t, from.Position, c.FromPosition)
		assert.Equal(t, to.Position, c.ToPosition)
		assert.Equal(t, c.From == "bone-loss", c.Active, "%s -> %s", c.From, c.To)
	}
}

func TestConnectionsSkipDangling(t *testing.T) {
	cat, err := mission.NewCatalog([]*mission.Definition{
		{ID: "a", EntryPoint: true, Connections: []mission.ID{"ghost", "b"}},
		{ID: "b"},
	})
	require.NoError(t, err)

	conns := Build(cat, snapshot(), "Cadet").Connections
	require.Len(t, conns, 1)
	assert.Equal(t, mission.ID("b"), conns[0].To)
	assert.False(t, conns[0].Active)
}

func TestViewJSONShape(t *testing.T) {
	v := Build(twoMissionCatalog(t), snapshot("bone-loss"), "Cadet")
	data, err := json.Marshal(v)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	missions := decoded["missions"].([]any)
	first := missions[0].(map[string]any)
	assert.Equal(t, "bone-loss", first["id"])
	assert.Equal(t, true, first["isCompleted"])
	assert.Equal(t, false, first["isLocked"])
	assert.Contains(t, decoded, "activeMissions")
	assert.Contains(t, decoded, "unlockedPowers")
}

func TestFind(t *testing.T) {
	v := Build(twoMissionCatalog(t), snapshot(), "Cadet")
	m, ok := v.Find("muscle-atrophy")
	require.True(t, ok)
	assert.True(t, m.IsLocked)

	_, ok = v.Find("nope")
	assert.False(t, ok)
}
