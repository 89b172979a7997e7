package api

import (
	"github.com/JaimeStill/antique-feed/internal/auth"
	"github.com/JaimeStill/antique-feed/internal/images"
	"github.com/JaimeStill/antique-feed/internal/messages"
	"github.com/JaimeStill/antique-feed/internal/products"
	"github.com/JaimeStill/antique-feed/internal/reservations"
	"github.com/JaimeStill/antique-feed/internal/sessions"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Auth         auth.System
	Sessions     sessions.System
	Products     products.System
	Messages     messages.System
	Images       images.System
	Reservations reservations.System
}

// NewDomain creates all domain systems over the shared platform client.
func NewDomain(runtime *Runtime) *Domain {
	platform := runtime.Platform

	return &Domain{
		Auth:         auth.New(platform, platform, runtime.Logger),
		Sessions:     sessions.New(platform, runtime.Logger),
		Products:     products.New(platform, runtime.Logger),
		Messages:     messages.New(platform, runtime.Logger),
		Images:       images.New(platform, &runtime.Storage, runtime.Logger),
		Reservations: reservations.New(platform, runtime.Logger),
	}
}
