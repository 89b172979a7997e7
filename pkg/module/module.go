// Package module mounts self-contained HTTP handlers under a single-level
// path prefix, each with its own middleware stack.
package module

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/JaimeStill/antique-feed/pkg/middleware"
)

// Root is the prefix of a module that serves every path not claimed by
// another module or a native route.
const Root = "/"

// Module is a handler mounted under a prefix.
type Module struct {
	prefix     string
	handler    http.Handler
	middleware middleware.System
}

// New creates a module. The prefix must be Root or a single path segment
// with a leading slash, such as "/api"; anything else panics.
func New(prefix string, handler http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix:     prefix,
		handler:    handler,
		middleware: middleware.New(),
	}
}

func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware to the module stack. The first registered middleware is the outermost.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware.Use(mw)
}

// Handler returns the module handler wrapped in its middleware.
func (m *Module) Handler() http.Handler {
	return m.middleware.Apply(m.handler)
}

// Serve strips the module prefix from the request path and serves it.
func (m *Module) Serve(w http.ResponseWriter, r *http.Request) {
	if m.prefix == Root {
		m.Handler().ServeHTTP(w, r)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, m.prefix)
	if path == "" {
		path = "/"
	}

	r2 := r.Clone(r.Context())
	r2.URL.Path = path
	r2.URL.RawPath = ""
	m.Handler().ServeHTTP(w, r2)
}

func validatePrefix(prefix string) error {
	if prefix == Root {
		return nil
	}
	if prefix == "" {
		return fmt.Errorf("module prefix required")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module prefix %q must start with /", prefix)
	}
	if strings.Contains(prefix[1:], "/") {
		return fmt.Errorf("module prefix %q must be a single path segment", prefix)
	}
	return nil
}
