package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"StarMap/internal/mission"
	"StarMap/internal/progress"
	"StarMap/internal/starmap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

const maxFrameBytes = 1 << 20

// session is one client's star map. All of its state is touched only by the
// goroutine running run, so the selector needs no locking.
type session struct {
	app      *App
	conn     *websocket.Conn
	log      zerolog.Logger
	user     string
	selector *starmap.Selector
	writeErr error
	ctx      context.Context
}

func (a *App) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		a.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	user := r.URL.Query().Get("user")
	s := &session{
		app:      a,
		conn:     conn,
		log:      a.log.With().Str("user", user).Str("remote", r.RemoteAddr).Logger(),
		user:     user,
		selector: starmap.NewSelector(nil),
		ctx:      r.Context(),
	}
	s.selector.Observe(s)

	a.metrics.sessionOpened(s.ctx)
	defer a.metrics.sessionClosed(s.ctx)

	s.log.Debug().Msg("session opened")
	s.run()
	s.log.Debug().Msg("session closed")
}

func (s *session) run() {
	s.conn.SetReadLimit(maxFrameBytes)

	if s.user != "" && s.app.store != nil {
		snap, err := progress.LoadOrFresh(s.ctx, s.app.store, s.user, s.app.cfg.Defaults)
		if err != nil {
			s.log.Error().Err(err).Msg("Failed to load progress")
			s.send(msgError, errorDTO{Message: "failed to load progress"})
		} else {
			s.applySnapshot(snap, "store")
		}
	}

	for s.writeErr == nil {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Debug().Err(err).Msg("websocket read ended")
			}
			return
		}
		s.handle(data)
	}
	s.log.Debug().Err(s.writeErr).Msg("websocket write failed")
}

func (s *session) handle(data []byte) {
	var msg inboundMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		s.send(msgError, errorDTO{Message: "malformed message"})
		return
	}

	switch msg.Type {
	case msgProgress:
		snap, err := progress.Decode(msg.Payload)
		if err != nil {
			s.send(msgError, errorDTO{Message: err.Error()})
			return
		}
		s.applySnapshot(snap, "ws")

	case msgSelect:
		var req selectDTO
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			s.send(msgError, errorDTO{Message: "malformed select payload"})
			return
		}
		outcome := s.selector.Select(req.MissionID)
		s.app.metrics.selected(s.ctx, outcome)
		if outcome == starmap.OutcomeUnknown {
			s.log.Debug().Str("mission", string(req.MissionID)).Msg("select ignored: unknown mission")
		}

	case msgNavigate:
		var req navigateDTO
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			s.send(msgError, errorDTO{Message: "malformed navigate payload"})
			return
		}
		s.selector.Navigate(req.Route)

	default:
		s.send(msgError, errorDTO{Message: fmt.Sprintf("unknown message type %q", msg.Type)})
	}
}

// applySnapshot recomputes the whole view and pushes it.
func (s *session) applySnapshot(snap progress.Snapshot, source string) {
	s.selector.Update(s.app.build(s.ctx, snap, source))
	s.sendState()
}

func (s *session) sendState() {
	selected, _ := s.selector.Selected()
	s.send(msgState, stateDTO{View: s.selector.View(), SelectedMission: selected})
}

func (s *session) send(msgType string, payload any) {
	if s.writeErr != nil {
		return
	}
	if err := s.conn.WriteJSON(outboundMessage{Type: msgType, Payload: payload}); err != nil {
		s.writeErr = err
	}
}

/* ----------------------------- Observer ----------------------------- */

func (s *session) MissionSelected(id mission.ID) {
	s.log.Debug().Str("mission", string(id)).Msg("mission selected")
	s.send(msgMissionSelected, selectDTO{MissionID: id})
}

func (s *session) MissionLocked(id mission.ID, name string) {
	s.log.Info().Str("mission", string(id)).Msgf("Mission %s is locked", name)
	s.send(msgMissionLocked, missionLockedDTO{MissionID: id, Name: name})
}

func (s *session) NavigationRequested(route string) {
	s.app.metrics.navigated(s.ctx)
	s.send(msgNavigate, navigateDTO{Route: route})
}
