package server

import (
	"encoding/json"
	"io"
	"net/http"

	"StarMap/internal/mission"
	"StarMap/internal/progress"
)

const maxSnapshotBytes = 1 << 20

/* ------------------------------- HTTP ------------------------------- */

// Handler returns the HTTP routes.
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /api/catalog", a.handleCatalog)
	mux.HandleFunc("POST /api/starmap", a.handleStarMap)
	mux.HandleFunc("GET /api/users/{user}/starmap", a.handleUserStarMap)
	mux.HandleFunc("GET /api/missions/{id}/header", a.handleHeading)
	mux.HandleFunc("GET /ws", a.serveWS)
	return mux
}

func (a *App) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalogDTO{
		Entry:    a.catalog.Entry(),
		Missions: a.catalog.Missions(),
	})
}

func (a *App) handleStarMap(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSnapshotBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "snapshot too large")
		return
	}
	snap, err := progress.Decode(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, a.build(r.Context(), snap, "http"))
}

func (a *App) handleUserStarMap(w http.ResponseWriter, r *http.Request) {
	if a.store == nil {
		writeError(w, http.StatusServiceUnavailable, "progress store disabled")
		return
	}
	user := r.PathValue("user")
	snap, err := progress.LoadOrFresh(r.Context(), a.store, user, a.cfg.Defaults)
	if err != nil {
		a.log.Error().Err(err).Str("user", user).Msg("Failed to load progress")
		writeError(w, http.StatusInternalServerError, "failed to load progress")
		return
	}
	writeJSON(w, http.StatusOK, a.build(r.Context(), snap, "store"))
}

func (a *App) handleHeading(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.catalog.Heading(mission.ID(r.PathValue("id"))))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorDTO{Message: msg})
}

