// Package config loads toolkit configuration from a TOML file.
//
// Configuration is optional: every field has a working default, and a missing
// config file is not an error unless the user named one explicitly.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/Kaper156/pygedcom/pkg/errors"
)

// appName is the directory name used under the XDG config/cache homes.
const appName = "gedcom"

// Config holds all toolkit settings.
type Config struct {
	Export ExportConfig `toml:"export"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
	Mongo  MongoConfig  `toml:"mongo"`
}

// ExportConfig controls export defaults.
type ExportConfig struct {
	Format      string `toml:"format"`       // "json" or "gedcom"
	EmptyFields bool   `toml:"empty_fields"` // include empty placeholders
}

// CacheConfig selects and tunes the export artifact cache.
type CacheConfig struct {
	Backend  string `toml:"backend"` // "file", "redis", or "none"
	Dir      string `toml:"dir"`     // file backend directory (default XDG cache)
	RedisURL string `toml:"redis_url"`
	TTLHours int    `toml:"ttl_hours"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// MongoConfig configures the snapshot archive.
type MongoConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Export: ExportConfig{Format: "json", EmptyFields: true},
		Cache:  CacheConfig{Backend: "file", TTLHours: 24},
		Server: ServerConfig{Addr: ":8080"},
		Mongo:  MongoConfig{URI: "mongodb://localhost:27017", Database: appName},
	}
}

// Load reads configuration from path. When path is empty, the default
// location is tried and a missing file silently yields [Default]; an
// explicitly named file must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultPath(); err != nil {
			return Default(), nil
		}
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load config %s", path)
	}
	return cfg, nil
}

// DefaultPath returns the XDG location of the config file
// (~/.config/gedcom/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// CacheDir returns the file cache directory: the configured one, or the XDG
// default (~/.cache/gedcom/).
func (c CacheConfig) CacheDir() (string, error) {
	if c.Dir != "" {
		return c.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
