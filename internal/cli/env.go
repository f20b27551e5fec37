// Package cli implements the starmap subcommands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"StarMap/internal/config"
	"StarMap/internal/logging"
	"StarMap/internal/mission"
	"StarMap/internal/progress"
)

// ConfigPath is bound to the root --config flag.
var ConfigPath string

// env is what every subcommand starts from.
type env struct {
	cfg     *config.Config
	log     zerolog.Logger
	closer  io.Closer
	catalog *mission.Catalog
}

// loadEnv reads config, sets up logging and loads the catalog. Logs go to
// console (stdout for the server, stderr for one-shot commands).
func loadEnv(console io.Writer) (*env, error) {
	cfg, err := config.Load(ConfigPath)
	if err != nil {
		return nil, err
	}

	log, closer, err := logging.Setup(logging.Options{
		Level:          cfg.LogLevel,
		LogsDir:        cfg.LogsDir,
		GraylogEnabled: cfg.Graylog.Enabled,
		GraylogAddress: cfg.Graylog.Address,
		Console:        console,
	})
	if err != nil {
		return nil, err
	}

	cat, err := mission.Load(cfg.Catalog.Path)
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	for _, edge := range cat.DanglingConnections() {
		log.Warn().Str("from", string(edge.From)).Str("to", string(edge.To)).Msg("Connection to unknown mission")
	}

	return &env{cfg: cfg, log: log, closer: closer, catalog: cat}, nil
}

// openStore opens the configured progress store; nil when the driver is "none".
func (e *env) openStore() (progress.Store, error) {
	return progress.Open(progress.StoreConfig{
		Driver:      e.cfg.Store.Driver,
		SQLitePath:  e.cfg.Store.SQLitePath,
		PostgresDSN: e.cfg.Store.PostgresDSN,
	}, e.log)
}

// requireStore opens the store and fails when it is disabled.
func (e *env) requireStore() (progress.Store, error) {
	store, err := e.openStore()
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, fmt.Errorf("progress store is disabled (store.driver = %q)", e.cfg.Store.Driver)
	}
	return store, nil
}

func (e *env) defaults() progress.Defaults {
	return progress.Defaults{
		Level:      e.cfg.Progress.DefaultLevel,
		Experience: e.cfg.Progress.DefaultExperience,
	}
}

func (e *env) Close() error {
	return e.closer.Close()
}

// stderr is where one-shot commands log.
var stderr io.Writer = os.Stderr
