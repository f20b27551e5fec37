package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"StarMap/internal/mission"
	"StarMap/internal/progress"
	"StarMap/internal/starmap"
)

// App serves the star map over HTTP and websocket.
type App struct {
	cfg     AppConfig
	catalog *mission.Catalog
	store   progress.Store // May be nil
	log     zerolog.Logger
	metrics *metrics
}

// NewApp wires the server. store may be nil, which disables per-user endpoints.
func NewApp(cfg AppConfig, catalog *mission.Catalog, store progress.Store, log zerolog.Logger) (*App, error) {
	m, err := newMetrics()
	if err != nil {
		return nil, fmt.Errorf("create metrics: %w", err)
	}
	return &App{
		cfg:     cfg,
		catalog: catalog,
		store:   store,
		log:     log,
		metrics: m,
	}, nil
}

// build derives the view for snap and counts it.
func (a *App) build(ctx context.Context, snap progress.Snapshot, source string) *starmap.View {
	a.metrics.derived(ctx, source)
	return starmap.Build(a.catalog, snap, a.cfg.UserName)
}

// Run listens on the configured address until ctx is cancelled, then shuts down
// gracefully.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    a.cfg.Addr,
		Handler: a.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info().
			Str("addr", a.cfg.Addr).
			Int("missions", a.catalog.Len()).
			Str("entry", string(a.catalog.Entry())).
			Bool("store", a.store != nil).
			Msg("Starting star map server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	a.log.Info().Msg("Shutting down star map server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
