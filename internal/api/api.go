// Package api assembles the resource handlers into a single module with its
// own middleware stack, generated OpenAPI document and reference page.
package api

import (
	"net/http"

	"github.com/JaimeStill/antique-feed/internal/config"
	"github.com/JaimeStill/antique-feed/internal/infrastructure"
	"github.com/JaimeStill/antique-feed/pkg/middleware"
	"github.com/JaimeStill/antique-feed/pkg/module"
	"github.com/JaimeStill/antique-feed/pkg/openapi"
	"github.com/JaimeStill/antique-feed/pkg/routes"
	"github.com/JaimeStill/antique-feed/web/docs"
)

// NewModule builds the API module. It is mounted at the configured base path,
// or at the root when none is set.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.Domain)

	mux := http.NewServeMux()
	if err := registerRoutes(mux, spec, runtime, domain, cfg); err != nil {
		return nil, err
	}

	if out := cfg.API.OpenAPI.Output; out != "" {
		if err := openapi.WriteJSON(spec, out); err != nil {
			return nil, err
		}
		runtime.Logger.Info("openapi document written", "path", out)
	}

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	docsHandler, err := docs.NewHandler(cfg.API.OpenAPI.Title, cfg.API.BasePath+"/openapi.json")
	if err != nil {
		return nil, err
	}
	if err := routes.Register(mux, cfg.API.BasePath, nil, docsHandler.Routes()); err != nil {
		return nil, err
	}

	limiter := middleware.NewRateLimiter(&cfg.API.RateLimit, runtime.Logger)
	limiter.Start(runtime.Lifecycle)

	prefix := cfg.API.BasePath
	if prefix == "" {
		prefix = module.Root
	}

	m := module.New(prefix, mux)
	m.Use(middleware.Recover(runtime.Logger))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(limiter.Handler)
	m.Use(middleware.TrimSlash())
	if runtime.Metrics != nil {
		m.Use(runtime.Metrics.Middleware)
	}

	return m, nil
}
