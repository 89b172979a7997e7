package openapi

import "os"

// Config holds metadata for the generated document.
// When Output is set the document is also written to that path at startup.
type Config struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Output      string `toml:"output"`
}

// ConfigEnv maps environment variable names for OpenAPI configuration.
type ConfigEnv struct {
	Title       string
	Description string
	Output      string
}

func (c *Config) Finalize(env *ConfigEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return nil
}

func (c *Config) Merge(overlay *Config) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Description != "" {
		c.Description = overlay.Description
	}
	if overlay.Output != "" {
		c.Output = overlay.Output
	}
}

func (c *Config) loadDefaults() {
	if c.Title == "" {
		c.Title = "Antique Feed API"
	}
	if c.Description == "" {
		c.Description = "Routing layer for live antique sales: accounts, live sessions, products, chat, images and reservations."
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	for target, name := range map[*string]string{
		&c.Title:       env.Title,
		&c.Description: env.Description,
		&c.Output:      env.Output,
	} {
		if name == "" {
			continue
		}
		if v := os.Getenv(name); v != "" {
			*target = v
		}
	}
}
