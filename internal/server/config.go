package server

import (
	"time"

	"StarMap/internal/config"
	"StarMap/internal/progress"
)

// AppConfig holds what the server needs beyond its collaborators.
type AppConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
	UserName        string
	Defaults        progress.Defaults
}

// DefaultAppConfig returns the settings used when nothing is configured.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Addr:            ":8080",
		ShutdownTimeout: 5 * time.Second,
		UserName:        "Cadete Cósmico",
		Defaults:        progress.DefaultDefaults(),
	}
}

// AppConfigFrom maps the loaded configuration onto AppConfig.
func AppConfigFrom(cfg *config.Config) AppConfig {
	out := DefaultAppConfig()
	if cfg == nil {
		return out
	}
	if cfg.Server.Addr != "" {
		out.Addr = cfg.Server.Addr
	}
	if cfg.Server.ShutdownTimeout > 0 {
		out.ShutdownTimeout = cfg.Server.ShutdownTimeout
	}
	if cfg.Profile.UserName != "" {
		out.UserName = cfg.Profile.UserName
	}
	out.Defaults = progress.Defaults{
		Level:      cfg.Progress.DefaultLevel,
		Experience: cfg.Progress.DefaultExperience,
	}
	return out
}

// Overrides represents optional command-line overrides.
type Overrides struct {
	Addr     *string
	UserName *string
}

func (o Overrides) apply(base AppConfig) AppConfig {
	if o.Addr != nil {
		base.Addr = *o.Addr
	}
	if o.UserName != nil {
		base.UserName = *o.UserName
	}
	return base
}

// WithOverrides returns cfg with the set overrides applied.
func (cfg AppConfig) WithOverrides(o Overrides) AppConfig {
	return o.apply(cfg)
}
