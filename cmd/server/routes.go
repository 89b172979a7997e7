package main

import (
	"net/http"

	"github.com/JaimeStill/antique-feed/internal/api"
	"github.com/JaimeStill/antique-feed/internal/config"
	"github.com/JaimeStill/antique-feed/internal/infrastructure"
	"github.com/JaimeStill/antique-feed/pkg/lifecycle"
	"github.com/JaimeStill/antique-feed/pkg/module"
)

const greeting = "Hello, World! This is the Antique Feed Backend."

// buildRouter registers the process-level endpoints and mounts the API module.
func buildRouter(infra *infrastructure.Infrastructure, cfg *config.Config) (*module.Router, error) {
	router := module.NewRouter()

	router.HandleNative("GET /{$}", plainText(greeting))
	router.HandleNative("GET /healthz", plainText("OK"))
	router.HandleNative("GET /readyz", readiness(infra.Lifecycle))

	if infra.Metrics != nil {
		router.HandleNative("GET "+cfg.Metrics.Path, infra.Metrics.Handler().ServeHTTP)
	}

	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}
	router.Mount(apiModule)

	return router, nil
}

func plainText(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	}
}

func readiness(ready lifecycle.ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if !ready.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	}
}
