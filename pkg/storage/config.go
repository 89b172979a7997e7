// Package storage holds object upload settings for the platform storage bucket.
package storage

import (
	"fmt"
	"os"
	"strconv"

	"github.com/docker/go-units"
)

// Config contains object upload configuration.
type Config struct {
	// Bucket is the platform storage bucket receiving uploads.
	// Default: "product_images"
	Bucket           string `toml:"bucket"`
	MaxUploadSize    string `toml:"max_upload_size"`
	UniqueNames      bool   `toml:"unique_names"`
	maxUploadSizeVal int64
}

// Env maps environment variable names for storage configuration.
type Env struct {
	Bucket        string
	MaxUploadSize string
	UniqueNames   string
}

func (c *Config) MaxUploadSizeBytes() int64 {
	return c.maxUploadSizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the storage configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.Bucket != "" {
		c.Bucket = overlay.Bucket
	}
	if size, err := units.FromHumanSize(overlay.MaxUploadSize); err == nil {
		c.MaxUploadSize = overlay.MaxUploadSize
		c.maxUploadSizeVal = size
	}
	if overlay.UniqueNames {
		c.UniqueNames = true
	}
}

func (c *Config) loadDefaults() {
	if c.Bucket == "" {
		c.Bucket = "product_images"
	}
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "10MB"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Bucket != "" {
		if v := os.Getenv(env.Bucket); v != "" {
			c.Bucket = v
		}
	}
	if env.MaxUploadSize != "" {
		if v := os.Getenv(env.MaxUploadSize); v != "" {
			c.MaxUploadSize = v
		}
	}
	if env.UniqueNames != "" {
		if v := os.Getenv(env.UniqueNames); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				c.UniqueNames = b
			}
		}
	}
}

func (c *Config) validate() error {
	if c.Bucket == "" {
		return fmt.Errorf("bucket required")
	}

	size, err := units.FromHumanSize(c.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("invalid max_upload_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_upload_size must be positive")
	}
	c.maxUploadSizeVal = size

	return nil
}
