package routes

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/antique-feed/pkg/openapi"
)

// Register adds every route in groups to mux and documents it in spec.
// Patterns are registered relative to the mux; basePath only prefixes the
// documented paths. A nil spec skips documentation.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) error {
	for _, group := range groups {
		if err := registerGroup(mux, basePath, "", spec, group); err != nil {
			return err
		}
	}
	return nil
}

func registerGroup(mux *http.ServeMux, basePath, parentPrefix string, spec *openapi.Spec, group Group) error {
	prefix := parentPrefix + group.Prefix

	if spec != nil {
		if len(group.Schemas) > 0 {
			spec.Components.AddSchemas(group.Schemas)
		}
		for _, tag := range group.Tags {
			spec.AddTag(tag, group.Description)
		}
	}

	for _, route := range group.Routes {
		pattern := prefix + route.Pattern
		if pattern == "" {
			pattern = "/"
		}
		mux.HandleFunc(route.Method+" "+pattern, route.Handler)

		if spec == nil || route.OpenAPI == nil {
			continue
		}
		if len(route.OpenAPI.Tags) == 0 {
			route.OpenAPI.Tags = group.Tags
		}
		if err := spec.AddOperation(route.Method, basePath+pattern, route.OpenAPI); err != nil {
			return fmt.Errorf("document %s %s: %w", route.Method, pattern, err)
		}
	}

	for _, child := range group.Children {
		if err := registerGroup(mux, basePath, prefix, spec, child); err != nil {
			return err
		}
	}
	return nil
}
