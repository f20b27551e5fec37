package server

import (
	"encoding/json"

	"StarMap/internal/mission"
	"StarMap/internal/starmap"
)

// Inbound websocket message types.
const (
	msgProgress = "progress"
	msgSelect   = "select"
	msgNavigate = "navigate"
)

// Outbound websocket message types.
const (
	msgState           = "state"
	msgMissionSelected = "mission_selected"
	msgMissionLocked   = "mission_locked"
	msgError           = "error"
)

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// outboundMessage packages queued websocket events.
type outboundMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type selectDTO struct {
	MissionID mission.ID `json:"missionId"`
}

type navigateDTO struct {
	Route string `json:"route"`
}

type missionLockedDTO struct {
	MissionID mission.ID `json:"missionId"`
	Name      string     `json:"name"`
}

type errorDTO struct {
	Message string `json:"message"`
}

// stateDTO is the full star map plus the session's selection.
type stateDTO struct {
	*starmap.View
	SelectedMission mission.ID `json:"selectedMission,omitempty"`
}

// catalogDTO lists the catalog for clients drawing the static map.
type catalogDTO struct {
	Entry    mission.ID            `json:"entry"`
	Missions []*mission.Definition `json:"missions"`
}
