package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/JaimeStill/antique-feed/pkg/middleware"
	"github.com/JaimeStill/antique-feed/pkg/openapi"
)

// APIConfig configures the API module mount point and its middleware.
type APIConfig struct {
	BasePath  string                     `toml:"base_path"`
	CORS      middleware.CORSConfig      `toml:"cors"`
	RateLimit middleware.RateLimitConfig `toml:"rate_limit"`
	OpenAPI   openapi.Config             `toml:"openapi"`
}

func (c *APIConfig) Finalize() error {
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.RateLimit.Finalize(rateLimitEnv); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}
	if err := c.OpenAPI.Finalize(openAPIEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	c.CORS.Merge(&overlay.CORS)
	c.RateLimit.Merge(&overlay.RateLimit)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadEnv() {
	if v, ok := os.LookupEnv("API_BASE_PATH"); ok {
		c.BasePath = v
	}
}

// validate normalizes the base path to "" or a single segment such as "/api".
func (c *APIConfig) validate() error {
	c.BasePath = strings.TrimRight(strings.TrimSpace(c.BasePath), "/")
	if c.BasePath == "" {
		return nil
	}
	if !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("base_path %q must start with /", c.BasePath)
	}
	if strings.Contains(c.BasePath[1:], "/") {
		return fmt.Errorf("base_path %q must be a single path segment", c.BasePath)
	}
	return nil
}
