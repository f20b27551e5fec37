// Package mission holds the static star map catalog: the ordered set of mission
// definitions and the prerequisite graph formed by their connections.
//
// A catalog is built once at startup, validated, and shared read-only afterwards.
package mission

import (
	"errors"
	"fmt"
)

// ID uniquely identifies a mission in the catalog.
type ID string

// Position places a mission on the map, in percent of the map width and height.
type Position struct {
	X float64 `json:"x" mapstructure:"x"`
	Y float64 `json:"y" mapstructure:"y"`
}

// Definition is a single mission of the catalog.
type Definition struct {
	ID          ID       `json:"id" mapstructure:"id"`
	Name        string   `json:"name" mapstructure:"name"`
	Description string   `json:"description" mapstructure:"description"`
	Connections []ID     `json:"connections" mapstructure:"connections"` // Missions this one unlocks
	Position    Position `json:"position" mapstructure:"position"`
	EntryPoint  bool     `json:"entryPoint,omitempty" mapstructure:"entryPoint"` // Always unlocked
}

// Catalog is the validated, indexed mission list.
type Catalog struct {
	missions     []*Definition
	byID         map[ID]*Definition
	predecessors map[ID][]ID // Reverse index: which missions unlock this one
	entry        ID
	dangling     []Edge
}

// Edge is a directed connection between two missions.
type Edge struct {
	From ID
	To   ID
}

var (
	// ErrEmptyID is returned when a definition has no id.
	ErrEmptyID = errors.New("mission: empty id")
	// ErrDuplicateMission is returned when two definitions share an id.
	ErrDuplicateMission = errors.New("mission: duplicate id")
	// ErrEntryPoint is returned when a catalog does not declare exactly one entry point.
	ErrEntryPoint = errors.New("mission: catalog needs exactly one entry point")
)

// NewCatalog indexes and validates the given definitions. Order is preserved.
//
// Connections to ids outside the catalog are kept but never resolve to a mission;
// they are reported by DanglingConnections.
func NewCatalog(defs []*Definition) (*Catalog, error) {
	c := &Catalog{
		missions:     make([]*Definition, 0, len(defs)),
		byID:         make(map[ID]*Definition, len(defs)),
		predecessors: make(map[ID][]ID),
	}

	entries := 0
	for i, def := range defs {
		if def == nil || def.ID == "" {
			return nil, fmt.Errorf("%w: definition %d", ErrEmptyID, i)
		}
		if _, exists := c.byID[def.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateMission, def.ID)
		}
		if def.EntryPoint {
			entries++
			c.entry = def.ID
		}
		c.byID[def.ID] = def
		c.missions = append(c.missions, def)
	}
	if entries != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrEntryPoint, entries)
	}

	for _, def := range c.missions {
		seen := make(map[ID]bool, len(def.Connections))
		for _, to := range def.Connections {
			if seen[to] {
				continue
			}
			seen[to] = true
			if _, exists := c.byID[to]; !exists {
				c.dangling = append(c.dangling, Edge{From: def.ID, To: to})
				continue
			}
			c.predecessors[to] = append(c.predecessors[to], def.ID)
		}
	}

	return c, nil
}

// Missions returns the definitions in catalog order.
func (c *Catalog) Missions() []*Definition {
	return c.missions
}

// Len returns the number of missions.
func (c *Catalog) Len() int {
	return len(c.missions)
}

// Get returns a mission by id, or nil if not found.
func (c *Catalog) Get(id ID) *Definition {
	return c.byID[id]
}

// Entry returns the id of the entry point mission.
func (c *Catalog) Entry() ID {
	return c.entry
}

// Predecessors returns the ids of the missions whose connections include id,
// in catalog order.
func (c *Catalog) Predecessors(id ID) []ID {
	return c.predecessors[id]
}

// Edges returns every connection whose endpoints both exist, in catalog order.
func (c *Catalog) Edges() []Edge {
	var edges []Edge
	for _, def := range c.missions {
		seen := make(map[ID]bool, len(def.Connections))
		for _, to := range def.Connections {
			if seen[to] || c.byID[to] == nil {
				continue
			}
			seen[to] = true
			edges = append(edges, Edge{From: def.ID, To: to})
		}
	}
	return edges
}

// DanglingConnections returns connections pointing at ids outside the catalog.
func (c *Catalog) DanglingConnections() []Edge {
	return c.dangling
}
