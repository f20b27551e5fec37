package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory.
const FileName = "starmap.json"

// Config is the resolved application configuration.
type Config struct {
	LogLevel string         `mapstructure:"logLevel"`
	LogsDir  string         `mapstructure:"logsDir"`
	Graylog  GraylogConfig  `mapstructure:"graylog"`
	Server   ServerConfig   `mapstructure:"server"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Store    StoreConfig    `mapstructure:"store"`
	Progress ProgressConfig `mapstructure:"progress"`
	Profile  ProfileConfig  `mapstructure:"profile"`
}

// GraylogConfig holds the optional GELF log sink settings.
type GraylogConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
}

// CatalogConfig points at the mission catalog file. Empty = built-in seed.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// StoreConfig selects the progress store backend.
type StoreConfig struct {
	Driver      string `mapstructure:"driver"`
	SQLitePath  string `mapstructure:"sqlitePath"`
	PostgresDSN string `mapstructure:"postgresDSN"`
}

// ProgressConfig holds the values used for users with no recorded progress.
type ProgressConfig struct {
	DefaultLevel      int `mapstructure:"defaultLevel"`
	DefaultExperience int `mapstructure:"defaultExperience"`
}

// ProfileConfig holds profile overlay settings.
type ProfileConfig struct {
	UserName string `mapstructure:"userName"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logsDir", "")

	v.SetDefault("graylog.enabled", false)
	v.SetDefault("graylog.address", "localhost:12201")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdownTimeout", "5s")

	v.SetDefault("catalog.path", "")

	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.sqlitePath", "starmap.db")
	v.SetDefault("store.postgresDSN", "")

	v.SetDefault("progress.defaultLevel", 5)
	v.SetDefault("progress.defaultExperience", 450)

	v.SetDefault("profile.userName", "Cadete Cósmico")
}

// Load reads configuration. path may be a config file, a directory holding
// FileName, or empty for the current directory. A missing file leaves the
// defaults in place; STARMAP_* environment variables override both.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("STARMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicitFile := path != "" && filepath.Ext(path) != ""
	if explicitFile {
		v.SetConfigFile(path)
	} else {
		dir := path
		if dir == "" {
			dir = "."
		}
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		v.SetConfigType("json")
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicitFile || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	return &cfg, nil
}
