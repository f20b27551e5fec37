package starmap

import (
	"StarMap/internal/mission"
	"StarMap/internal/progress"
)

// Connection is a line drawn between two missions. It is active once the
// mission it starts from has been completed.
type Connection struct {
	From         mission.ID       `json:"from"`
	To           mission.ID       `json:"to"`
	FromPosition mission.Position `json:"fromPosition"`
	ToPosition   mission.Position `json:"toPosition"`
	Active       bool             `json:"active"`
}

// Profile is the header overlay: who is playing and how far along they are.
type Profile struct {
	UserName   string   `json:"userName"`
	Level      int      `json:"level"`
	Experience int      `json:"experience"`
	Badges     []string `json:"badges"`
}

// View is everything the star map screen draws for one snapshot.
type View struct {
	Missions       []AnnotatedMission `json:"missions"`
	Active         []AnnotatedMission `json:"activeMissions"`
	UnlockedPowers []string           `json:"unlockedPowers"`
	Connections    []Connection       `json:"connections"`
	Profile        Profile            `json:"profile"`
	CurrentMission mission.ID         `json:"currentMission,omitempty"`
}

// Build derives the full view. Every list is recomputed from scratch.
func Build(cat *mission.Catalog, snap progress.Snapshot, userName string) *View {
	missions := Derive(cat, snap)

	badges := snap.Badges
	if badges == nil {
		badges = []string{}
	}

	return &View{
		Missions:       missions,
		Active:         ActiveMissions(missions),
		UnlockedPowers: UnlockedPowers(cat, snap),
		Connections:    Connections(cat, missions),
		Profile: Profile{
			UserName:   userName,
			Level:      snap.Level,
			Experience: snap.Experience,
			Badges:     badges,
		},
		CurrentMission: snap.CurrentMission,
	}
}

// Connections lists the catalog edges with their endpoints' positions.
func Connections(cat *mission.Catalog, missions []AnnotatedMission) []Connection {
	byID := make(map[mission.ID]AnnotatedMission, len(missions))
	for _, m := range missions {
		byID[m.ID] = m
	}

	conns := []Connection{}
	for _, edge := range cat.Edges() {
		from, okFrom := byID[edge.From]
		to, okTo := byID[edge.To]
		if !okFrom || !okTo {
			continue
		}
		conns = append(conns, Connection{
			From:         edge.From,
			To:           edge.To,
			FromPosition: from.Position,
			ToPosition:   to.Position,
			Active:       from.IsCompleted,
		})
	}
	return conns
}

// Find returns the annotated mission with the given id.
func (v *View) Find(id mission.ID) (AnnotatedMission, bool) {
	for _, m := range v.Missions {
		if m.ID == id {
			return m, true
		}
	}
	return AnnotatedMission{}, false
}
