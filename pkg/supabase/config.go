package supabase

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds connection settings for the remote platform.
type Config struct {
	URL          string `toml:"url"`
	Key          string `toml:"key"`
	Timeout      string `toml:"timeout"`
	MaxConns     int    `toml:"max_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// Env maps environment variable names for platform configuration.
type Env struct {
	URL          string
	Key          string
	Timeout      string
	MaxConns     string
	MaxIdleConns string
}

// TimeoutDuration parses and returns the request timeout as a time.Duration.
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
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
	if overlay.URL != "" {
		c.URL = overlay.URL
	}
	if overlay.Key != "" {
		c.Key = overlay.Key
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
	if overlay.MaxConns != 0 {
		c.MaxConns = overlay.MaxConns
	}
	if overlay.MaxIdleConns != 0 {
		c.MaxIdleConns = overlay.MaxIdleConns
	}
}

func (c *Config) loadDefaults() {
	if c.Timeout == "" {
		c.Timeout = "30s"
	}
	if c.MaxConns <= 0 {
		c.MaxConns = 100
	}
	if c.MaxIdleConns <= 0 {
		c.MaxIdleConns = 20
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.URL != "" {
		if v := os.Getenv(env.URL); v != "" {
			c.URL = v
		}
	}
	if env.Key != "" {
		if v := os.Getenv(env.Key); v != "" {
			c.Key = v
		}
	}
	if env.Timeout != "" {
		if v := os.Getenv(env.Timeout); v != "" {
			c.Timeout = v
		}
	}
	if env.MaxConns != "" {
		if v := os.Getenv(env.MaxConns); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				c.MaxConns = n
			}
		}
	}
	if env.MaxIdleConns != "" {
		if v := os.Getenv(env.MaxIdleConns); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				c.MaxIdleConns = n
			}
		}
	}
}

func (c *Config) validate() error {
	if c.URL == "" {
		return fmt.Errorf("url required")
	}
	if c.Key == "" {
		return fmt.Errorf("key required")
	}

	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url must use http or https")
	}
	if u.Host == "" {
		return fmt.Errorf("url host required")
	}
	c.URL = strings.TrimRight(c.URL, "/")

	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	if c.MaxIdleConns > c.MaxConns {
		return fmt.Errorf("max_idle_conns cannot exceed max_conns")
	}
	return nil
}
