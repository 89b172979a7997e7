package api

import (
	"github.com/JaimeStill/antique-feed/internal/config"
	"github.com/JaimeStill/antique-feed/internal/infrastructure"
	"github.com/JaimeStill/antique-feed/pkg/storage"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Storage storage.Config
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Platform:  infra.Platform,
			Metrics:   infra.Metrics,
		},
		Storage: cfg.Storage,
	}
}
