package api

import (
	"net/http"

	"github.com/JaimeStill/antique-feed/internal/auth"
	"github.com/JaimeStill/antique-feed/internal/config"
	"github.com/JaimeStill/antique-feed/internal/images"
	"github.com/JaimeStill/antique-feed/internal/messages"
	"github.com/JaimeStill/antique-feed/internal/products"
	"github.com/JaimeStill/antique-feed/internal/reservations"
	"github.com/JaimeStill/antique-feed/internal/sessions"
	"github.com/JaimeStill/antique-feed/pkg/openapi"
	"github.com/JaimeStill/antique-feed/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	spec *openapi.Spec,
	runtime *Runtime,
	domain *Domain,
	cfg *config.Config,
) error {
	authHandler := auth.NewHandler(domain.Auth, runtime.Logger)
	sessionsHandler := sessions.NewHandler(domain.Sessions, runtime.Logger)
	productsHandler := products.NewHandler(domain.Products, runtime.Logger)
	messagesHandler := messages.NewHandler(domain.Messages, runtime.Logger)
	imagesHandler := images.NewHandler(domain.Images, runtime.Logger, runtime.Storage.MaxUploadSizeBytes())
	reservationsHandler := reservations.NewHandler(domain.Reservations, runtime.Logger)

	return routes.Register(
		mux,
		cfg.API.BasePath,
		spec,
		authHandler.Routes(),
		sessionsHandler.Routes(),
		productsHandler.Routes(),
		messagesHandler.Routes(),
		imagesHandler.Routes(),
		reservationsHandler.Routes(),
	)
}
