// Package config loads server configuration from TOML files.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/pmeier/crossgrid/pkg/errors"
)

// Config holds the crossgrid server configuration.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `toml:"addr"`

	// MaxAttempts is the default generation attempt budget for API
	// requests that do not specify one.
	MaxAttempts int `toml:"max_attempts"`

	Store StoreConfig `toml:"store"`
	Cache CacheConfig `toml:"cache"`
}

// StoreConfig selects and configures the puzzle store backend.
type StoreConfig struct {
	// Backend is "memory" or "mongo".
	Backend string `toml:"backend"`

	// URI is the MongoDB connection string (mongo backend only).
	URI string `toml:"uri"`

	// Database is the MongoDB database name (mongo backend only).
	Database string `toml:"database"`
}

// CacheConfig selects and configures the artifact cache backend.
type CacheConfig struct {
	// Backend is "null", "file", or "redis".
	Backend string `toml:"backend"`

	// Dir is the cache directory (file backend only).
	Dir string `toml:"dir"`

	// URL is the Redis connection URL (redis backend only).
	URL string `toml:"url"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Addr:        ":8080",
		MaxAttempts: 50,
		Store:       StoreConfig{Backend: "memory"},
		Cache:       CacheConfig{Backend: "null"},
	}
}

// Load reads a TOML configuration file. Missing keys keep their
// defaults from [Default].
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Store.Backend {
	case "memory":
	case "mongo":
		if c.Store.URI == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "mongo store requires a uri")
		}
		if c.Store.Database == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "mongo store requires a database")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown store backend %q", c.Store.Backend)
	}

	switch c.Cache.Backend {
	case "null":
	case "file":
		if c.Cache.Dir == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "file cache requires a dir")
		}
	case "redis":
		if c.Cache.URL == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "redis cache requires a url")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Cache.Backend)
	}

	if c.MaxAttempts < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_attempts must be at least 1")
	}
	return nil
}
