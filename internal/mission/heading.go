package mission

// UnknownMissionName is shown for ids that are not in the catalog.
const UnknownMissionName = "UNKNOWN MISSION"

// Heading is the title block shown above a mission article.
type Heading struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Known       bool   `json:"known"`
}

// Heading looks a mission up for display. Unknown ids get UnknownMissionName and
// an empty description.
func (c *Catalog) Heading(id ID) Heading {
	def := c.Get(id)
	if def == nil {
		return Heading{ID: id, Name: UnknownMissionName}
	}
	return Heading{
		ID:          id,
		Name:        def.Name,
		Description: def.Description,
		Known:       true,
	}
}
