// Package infrastructure provides core service initialization for application startup.
// It assembles the dependencies every resource system requires: lifecycle
// coordination, logging, the platform client and metrics.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/antique-feed/internal/config"
	"github.com/JaimeStill/antique-feed/pkg/lifecycle"
	"github.com/JaimeStill/antique-feed/pkg/logging"
	"github.com/JaimeStill/antique-feed/pkg/metrics"
	"github.com/JaimeStill/antique-feed/pkg/supabase"
)

// Infrastructure holds the core systems required by all domain modules.
// Metrics is nil when metrics are disabled.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Platform  *supabase.Client
	Metrics   *metrics.Metrics
}

// New creates an Infrastructure from a finalized configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	platform, err := supabase.New(&cfg.Supabase, logger)
	if err != nil {
		return nil, fmt.Errorf("platform init failed: %w", err)
	}

	var m *metrics.Metrics
	if cfg.Metrics.IsEnabled() {
		m = metrics.New(cfg.Metrics.Namespace)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Platform:  platform,
		Metrics:   m,
	}, nil
}

// Start registers infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Platform.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("platform start failed: %w", err)
	}
	return nil
}
