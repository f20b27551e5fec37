// Package progress models the user progress snapshot the star map is derived from,
// and a store standing in for the progress owner.
package progress

import (
	"encoding/json"
	"fmt"

	"StarMap/internal/mission"
)

// Snapshot is a user's completion state at a point in time. It always arrives
// whole; missing optional counters decode to zero.
type Snapshot struct {
	Level                  int          `json:"level"`
	CompletedMissions      []mission.ID `json:"completedMissions"`
	Badges                 []string     `json:"badges"`
	CurrentMission         mission.ID   `json:"currentMission,omitempty"`
	Experience             int          `json:"experience,omitempty"`
	TotalMissionsCompleted int          `json:"totalMissionsCompleted,omitempty"`
}

// Defaults seeds a snapshot for a user with no recorded progress.
type Defaults struct {
	Level      int
	Experience int
}

// DefaultDefaults mirrors the values the star map has always shown new cadets.
func DefaultDefaults() Defaults {
	return Defaults{
		Level:      5,
		Experience: 450,
	}
}

// Fresh returns an empty snapshot carrying the given defaults.
func Fresh(d Defaults) Snapshot {
	return Snapshot{
		Level:             d.Level,
		Experience:        d.Experience,
		CompletedMissions: []mission.ID{},
		Badges:            []string{},
	}
}

// CompletedSet returns the completed ids as a set.
func (s Snapshot) CompletedSet() map[mission.ID]struct{} {
	set := make(map[mission.ID]struct{}, len(s.CompletedMissions))
	for _, id := range s.CompletedMissions {
		set[id] = struct{}{}
	}
	return set
}

// HasCompleted reports whether id is in the completed set.
func (s Snapshot) HasCompleted(id mission.ID) bool {
	for _, done := range s.CompletedMissions {
		if done == id {
			return true
		}
	}
	return false
}

// Complete returns a copy of s with id added to the completed set. Completing an
// already completed mission returns an unchanged copy.
func (s Snapshot) Complete(id mission.ID) Snapshot {
	out := s.Clone()
	if out.HasCompleted(id) {
		return out
	}
	out.CompletedMissions = append(out.CompletedMissions, id)
	out.TotalMissionsCompleted = len(out.CompletedMissions)
	if out.CurrentMission == id {
		out.CurrentMission = ""
	}
	return out
}

// Clone creates a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.CompletedMissions = append([]mission.ID{}, s.CompletedMissions...)
	out.Badges = append([]string{}, s.Badges...)
	return out
}

// Decode parses a JSON snapshot.
func Decode(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode progress snapshot: %w", err)
	}
	return s.normalized(), nil
}

// Encode serializes the snapshot as JSON.
func (s Snapshot) Encode() ([]byte, error) {
	return json.Marshal(s.normalized())
}

// normalized replaces nil lists with empty ones.
func (s Snapshot) normalized() Snapshot {
	if s.CompletedMissions == nil {
		s.CompletedMissions = []mission.ID{}
	}
	if s.Badges == nil {
		s.Badges = []string{}
	}
	return s
}
