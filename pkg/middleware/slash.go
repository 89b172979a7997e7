package middleware

import (
	"net/http"
	"strings"
)

// TrimSlash returns middleware that strips a trailing slash from the request
// path before routing. The root path "/" is preserved. The request is rewritten
// in place rather than redirected so that request bodies are not lost.
func TrimSlash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path) > 1 && strings.HasSuffix(r.URL.Path, "/") {
				r2 := r.Clone(r.Context())
				r2.URL.Path = strings.TrimRight(r.URL.Path, "/")
				if r2.URL.Path == "" {
					r2.URL.Path = "/"
				}
				r2.URL.RawPath = ""
				r2.RequestURI = r2.URL.RequestURI()
				next.ServeHTTP(w, r2)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
