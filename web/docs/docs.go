// Package docs serves the interactive API reference powered by Scalar.
package docs

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/JaimeStill/antique-feed/pkg/routes"
)

//go:embed index.html
var indexTemplate string

var index = template.Must(template.New("index").Parse(indexTemplate))

// Handler serves the documentation page for a generated OpenAPI document.
type Handler struct {
	page []byte
}

// NewHandler renders the documentation page once. specURL is the absolute
// path of the OpenAPI document, including any API base path.
func NewHandler(title, specURL string) (*Handler, error) {
	var buf bytes.Buffer
	err := index.Execute(&buf, struct {
		Title   string
		SpecURL string
	}{title, specURL})
	if err != nil {
		return nil, err
	}
	return &Handler{page: buf.Bytes()}, nil
}

// Routes returns the documentation route group. It is not itself documented.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/docs",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.serveIndex},
		},
	}
}

func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(h.page)
}
