package mission

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

type catalogFile struct {
	Missions []*Definition `mapstructure:"missions"`
}

// LoadFile reads a catalog file and validates it. The format (JSON, YAML, TOML)
// follows the file extension. The file holds a single "missions" list.
func LoadFile(path string) (*Catalog, error) {
	cleanPath := filepath.Clean(path)

	v := viper.New()
	v.SetConfigFile(cleanPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read catalog %q: %w", cleanPath, err)
	}

	var f catalogFile
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("parse catalog %q: %w", cleanPath, err)
	}

	cat, err := NewCatalog(f.Missions)
	if err != nil {
		return nil, fmt.Errorf("catalog %q: %w", cleanPath, err)
	}
	return cat, nil
}

// Load returns the catalog at path, or the built-in seed when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return SeedCatalog()
	}
	return LoadFile(path)
}
