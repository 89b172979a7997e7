package module

import (
	"net/http"
	"strings"
)

// Router dispatches requests to mounted modules by first path segment and
// falls back to natively registered routes, then to the root module.
type Router struct {
	native  *http.ServeMux
	modules map[string]*Module
	root    *Module
}

func NewRouter() *Router {
	return &Router{
		native:  http.NewServeMux(),
		modules: make(map[string]*Module),
	}
}

// HandleNative registers a route served outside any module.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.native.HandleFunc(pattern, handler)
}

// Mount attaches m under its prefix. Mounting a second module on the same prefix replaces the first.
func (r *Router) Mount(m *Module) {
	if m.Prefix() == Root {
		r.root = m
		return
	}
	r.modules[m.Prefix()] = m
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if m, ok := r.modules[firstSegment(req.URL.Path)]; ok {
		m.Serve(w, req)
		return
	}

	if r.root != nil {
		if _, pattern := r.native.Handler(req); pattern == "" {
			r.root.Serve(w, req)
			return
		}
	}

	r.native.ServeHTTP(w, req)
}

func firstSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		path = path[:i]
	}
	return "/" + path
}
