// Package starmap derives the star map shown to a user from the mission catalog
// and their progress snapshot, and tracks which mission they have selected.
//
// Derive and Build are pure with respect to (catalog, snapshot): the same inputs
// always produce the same view, and nothing is carried between calls.
package starmap

import (
	"StarMap/internal/mission"
	"StarMap/internal/progress"
)

// AnnotatedMission is a catalog mission with its state for one user.
type AnnotatedMission struct {
	mission.Definition
	IsLocked    bool `json:"isLocked"`
	IsCompleted bool `json:"isCompleted"`
}

// Status collapses the two flags into a single label.
func (m AnnotatedMission) Status() Status {
	switch {
	case m.IsCompleted:
		return StatusCompleted
	case m.IsLocked:
		return StatusLocked
	default:
		return StatusAvailable
	}
}

// Status is the display state of a mission.
type Status string

const (
	// StatusLocked means no predecessor of the mission has been completed.
	StatusLocked Status = "locked"
	// StatusAvailable means the mission can be played.
	StatusAvailable Status = "available"
	// StatusCompleted means the mission is in the completed set.
	StatusCompleted Status = "completed"
)

// Derive annotates every catalog mission, in catalog order.
//
// A mission is completed when its id is in the snapshot's completed set. It is
// locked unless it is the entry point, is completed, or some mission connecting
// to it is completed. Unknown completed ids are ignored.
func Derive(cat *mission.Catalog, snap progress.Snapshot) []AnnotatedMission {
	completed := snap.CompletedSet()
	out := make([]AnnotatedMission, 0, cat.Len())

	for _, def := range cat.Missions() {
		_, isCompleted := completed[def.ID]

		unlockedByPredecessor := false
		for _, pred := range cat.Predecessors(def.ID) {
			if _, done := completed[pred]; done {
				unlockedByPredecessor = true
				break
			}
		}

		out = append(out, AnnotatedMission{
			Definition:  *def,
			IsLocked:    !def.EntryPoint && !unlockedByPredecessor && !isCompleted,
			IsCompleted: isCompleted,
		})
	}

	return out
}

// ActiveMissions returns the missions that are unlocked but not yet completed.
func ActiveMissions(missions []AnnotatedMission) []AnnotatedMission {
	active := []AnnotatedMission{}
	for _, m := range missions {
		if !m.IsLocked && !m.IsCompleted {
			active = append(active, m)
		}
	}
	return active
}

// UnlockedPowers renders "<name> - <description>" for each completed mission, in
// snapshot order. Ids without a catalog entry are skipped and repeats collapse.
func UnlockedPowers(cat *mission.Catalog, snap progress.Snapshot) []string {
	powers := []string{}
	seen := make(map[mission.ID]bool, len(snap.CompletedMissions))
	for _, id := range snap.CompletedMissions {
		if seen[id] {
			continue
		}
		seen[id] = true
		def := cat.Get(id)
		if def == nil {
			continue
		}
		powers = append(powers, def.Name+" - "+def.Description)
	}
	return powers
}
