package metrics

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Env maps environment variable names for metrics configuration.
type Env struct {
	Enabled   string
	Path      string
	Namespace string
}

// Config controls Prometheus instrumentation.
type Config struct {
	Enabled   *bool  `toml:"enabled"`
	Path      string `toml:"path"`
	Namespace string `toml:"namespace"`
}

// IsEnabled reports whether metrics are collected and exposed.
func (c *Config) IsEnabled() bool {
	return c.Enabled != nil && *c.Enabled
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies non-zero values from the overlay configuration.
func (c *Config) Merge(overlay *Config) {
	if overlay.Enabled != nil {
		enabled := *overlay.Enabled
		c.Enabled = &enabled
	}
	if overlay.Path != "" {
		c.Path = overlay.Path
	}
	if overlay.Namespace != "" {
		c.Namespace = overlay.Namespace
	}
}

func (c *Config) loadDefaults() {
	if c.Enabled == nil {
		enabled := true
		c.Enabled = &enabled
	}
	if c.Path == "" {
		c.Path = "/metrics"
	}
	if c.Namespace == "" {
		c.Namespace = "antique_feed"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Enabled != "" {
		if v := os.Getenv(env.Enabled); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				c.Enabled = &b
			}
		}
	}
	if env.Path != "" {
		if v := os.Getenv(env.Path); v != "" {
			c.Path = v
		}
	}
	if env.Namespace != "" {
		if v := os.Getenv(env.Namespace); v != "" {
			c.Namespace = v
		}
	}
}

func (c *Config) validate() error {
	if !strings.HasPrefix(c.Path, "/") {
		return fmt.Errorf("path must start with /")
	}
	return nil
}
