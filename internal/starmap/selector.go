package starmap

import (
	"StarMap/internal/mission"
)

// Observer receives selection and navigation events.
// Embed NoOpObserver to implement only the events you care about.
type Observer interface {
	// MissionSelected is called once per successful selection.
	MissionSelected(id mission.ID)
	// MissionLocked is called when a locked mission is selected. Informational only.
	MissionLocked(id mission.ID, name string)
	// NavigationRequested is called with the route exactly as requested.
	NavigationRequested(route string)
}

// NoOpObserver ignores every event.
type NoOpObserver struct{}

func (NoOpObserver) MissionSelected(id mission.ID)            {}
func (NoOpObserver) MissionLocked(id mission.ID, name string) {}
func (NoOpObserver) NavigationRequested(route string)         {}

// Outcome reports what a Select call did.
type Outcome int

const (
	// OutcomeSelected means the selection changed and the observer was notified.
	OutcomeSelected Outcome = iota
	// OutcomeLocked means the mission exists but is locked; selection unchanged.
	OutcomeLocked
	// OutcomeUnknown means no mission has that id; selection unchanged.
	OutcomeUnknown
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSelected:
		return "selected"
	case OutcomeLocked:
		return "locked"
	default:
		return "unknown"
	}
}

// Selector holds the mission a user has selected on the current view.
//
// A Selector is not safe for concurrent use; it belongs to the single goroutine
// handling one user's events.
type Selector struct {
	view     *View
	selected mission.ID
	observer Observer
}

// NewSelector creates a selector over view with no selection and no observer.
func NewSelector(view *View) *Selector {
	return &Selector{view: view, observer: NoOpObserver{}}
}

// Observe registers the observer, replacing any previous one. Nil clears it.
func (s *Selector) Observe(o Observer) {
	if o == nil {
		o = NoOpObserver{}
	}
	s.observer = o
}

// View returns the view selections are checked against.
func (s *Selector) View() *View {
	return s.view
}

// Update swaps in a view derived from a newer snapshot. The selection is kept.
func (s *Selector) Update(view *View) {
	s.view = view
}

// Selected returns the selected mission id, if any.
func (s *Selector) Selected() (mission.ID, bool) {
	return s.selected, s.selected != ""
}

// Select makes id the selected mission if it exists and is unlocked.
func (s *Selector) Select(id mission.ID) Outcome {
	if s.view == nil {
		return OutcomeUnknown
	}
	m, ok := s.view.Find(id)
	if !ok {
		return OutcomeUnknown
	}
	if m.IsLocked {
		s.observer.MissionLocked(id, m.Name)
		return OutcomeLocked
	}

	s.selected = id
	s.observer.MissionSelected(id)
	return OutcomeSelected
}

// Navigate forwards route to the observer unchanged.
func (s *Selector) Navigate(route string) {
	s.observer.NavigationRequested(route)
}
