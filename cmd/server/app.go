package main

import (
	"context"
	"time"

	"github.com/JaimeStill/antique-feed/internal/config"
	"github.com/JaimeStill/antique-feed/internal/infrastructure"
	"github.com/JaimeStill/antique-feed/internal/server"
)

// app owns the infrastructure and the HTTP listener for one process.
type app struct {
	infra   *infrastructure.Infrastructure
	http    server.System
	timeout time.Duration
}

func newApp(cfg *config.Config) (*app, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	router, err := buildRouter(infra, cfg)
	if err != nil {
		return nil, err
	}

	infra.Logger.Info(
		"app initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"base_path", cfg.API.BasePath,
	)

	return &app{
		infra:   infra,
		http:    server.New(&cfg.Server, router, infra.Logger),
		timeout: cfg.ShutdownTimeoutDuration(),
	}, nil
}

// start returns once the listener is bound. Readiness is logged when every
// startup hook has finished.
func (a *app) start() error {
	if err := a.infra.Start(); err != nil {
		return err
	}
	if err := a.http.Start(a.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		a.infra.Lifecycle.WaitForStartup()
		a.infra.Logger.Info("ready", "addr", a.http.Addr())
	}()
	return nil
}

func (a *app) stop() error {
	a.infra.Logger.Info("shutting down", "timeout", a.timeout)
	return a.infra.Lifecycle.Shutdown(a.timeout)
}

// run starts the app and blocks until ctx is cancelled.
func (a *app) run(ctx context.Context) error {
	if err := a.start(); err != nil {
		return err
	}
	<-ctx.Done()
	return a.stop()
}
