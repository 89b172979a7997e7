// Package config provides application configuration management with support for
// TOML files, environment variable overrides, and configuration overlays.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/antique-feed/pkg/logging"
	"github.com/JaimeStill/antique-feed/pkg/metrics"
	"github.com/JaimeStill/antique-feed/pkg/storage"
	"github.com/JaimeStill/antique-feed/pkg/supabase"
)

const (
	// BaseConfigFile is the primary configuration file name. It is optional.
	BaseConfigFile = "config.toml"

	// OverlayConfigPattern is the file name pattern for environment-specific overlays.
	OverlayConfigPattern = "config.%s.toml"

	// EnvServiceEnv specifies the environment name for configuration overlays.
	EnvServiceEnv = "SERVICE_ENV"

	EnvServiceVersion         = "SERVICE_VERSION"
	EnvServiceDomain          = "SERVICE_DOMAIN"
	EnvServiceShutdownTimeout = "SERVICE_SHUTDOWN_TIMEOUT"
)

// Config represents the root service configuration.
type Config struct {
	Version         string          `toml:"version"`
	Domain          string          `toml:"domain"`
	ShutdownTimeout string          `toml:"shutdown_timeout"`
	Server          ServerConfig    `toml:"server"`
	Logging         logging.Config  `toml:"logging"`
	Supabase        supabase.Config `toml:"supabase"`
	Storage         storage.Config  `toml:"storage"`
	API             APIConfig       `toml:"api"`
	Metrics         metrics.Config  `toml:"metrics"`
}

// Env returns the overlay environment name.
func (c *Config) Env() string {
	return os.Getenv(EnvServiceEnv)
}

// ShutdownTimeoutDuration parses and returns the shutdown timeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads configuration from the working directory.
func Load() (*Config, error) {
	return LoadDir(".")
}

// LoadDir reads the base configuration file in dir, if present, and applies
// any environment-specific overlay.
func LoadDir(dir string) (*Config, error) {
	cfg, err := load(filepath.Join(dir, BaseConfigFile))
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	if path := overlayPath(dir); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}
	return cfg, nil
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Logging.Finalize(loggingEnv); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Supabase.Finalize(supabaseEnv); err != nil {
		return fmt.Errorf("supabase: %w", err)
	}
	if err := c.Storage.Finalize(storageEnv); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Metrics.Finalize(metricsEnv); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	if overlay.Domain != "" {
		c.Domain = overlay.Domain
	}
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	c.Server.Merge(&overlay.Server)
	c.Logging.Merge(&overlay.Logging)
	c.Supabase.Merge(&overlay.Supabase)
	c.Storage.Merge(&overlay.Storage)
	c.API.Merge(&overlay.API)
	c.Metrics.Merge(&overlay.Metrics)
}

func (c *Config) loadDefaults() {
	if c.Version == "" {
		c.Version = "0.1.0"
	}
	if c.Domain == "" {
		c.Domain = "http://localhost:8080"
	}
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvServiceVersion); v != "" {
		c.Version = v
	}
	if v := os.Getenv(EnvServiceDomain); v != "" {
		c.Domain = v
	}
	if v := os.Getenv(EnvServiceShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &cfg, nil
}

func overlayPath(dir string) string {
	if env := os.Getenv(EnvServiceEnv); env != "" {
		path := filepath.Join(dir, fmt.Sprintf(OverlayConfigPattern, env))
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
