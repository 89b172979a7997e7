// Package routes describes HTTP route groups and registers them on a ServeMux
// together with their OpenAPI operations.
package routes

import (
	"net/http"

	"github.com/JaimeStill/antique-feed/pkg/openapi"
)

// Group is a resource's routes under one prefix. Tags and Description label
// the group in the OpenAPI document; Children nest below Prefix.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
	Schemas     map[string]*openapi.Schema
}

// Route binds Method and Pattern, relative to its group, to Handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}
