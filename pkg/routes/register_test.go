package routes_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/antique-feed/pkg/openapi"
	"github.com/JaimeStill/antique-feed/pkg/routes"
)

func write(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, body+":"+r.PathValue("id"))
	}
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	spec := openapi.NewSpec("t", "1")

	group := routes.Group{
		Prefix:      "/products",
		Tags:        []string{"Products"},
		Description: "Catalog items",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: write("list"), OpenAPI: &openapi.Operation{Summary: "List"}},
			{Method: "POST", Pattern: "/reserve/{id}", Handler: write("reserve"), OpenAPI: &openapi.Operation{Summary: "Reserve", Tags: []string{"Custom"}}},
		},
		Children: []routes.Group{
			{
				Prefix: "/status",
				Routes: []routes.Route{
					{Method: "PUT", Pattern: "/{id}", Handler: write("status")},
				},
			},
		},
		Schemas: map[string]*openapi.Schema{"Product": {Type: "object"}},
	}

	require.NoError(t, routes.Register(mux, "/api", spec, group))

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodGet, "/products", "list:"},
		{http.MethodPost, "/products/reserve/9", "reserve:9"},
		{http.MethodPut, "/products/status/4", "status:4"},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, tt.want, rec.Body.String(), tt.method+" "+tt.path)
	}

	require.Contains(t, spec.Paths, "/api/products")
	assert.Equal(t, []string{"Products"}, spec.Paths["/api/products"].Get.Tags)
	assert.Equal(t, []string{"Custom"}, spec.Paths["/api/products/reserve/{id}"].Post.Tags)
	assert.NotContains(t, spec.Paths, "/api/products/status/{id}")
	assert.Contains(t, spec.Components.Schemas, "Product")

	require.Len(t, spec.Tags, 1)
	assert.Equal(t, "Products", spec.Tags[0].Name)
	assert.Equal(t, "Catalog items", spec.Tags[0].Description)
}

func TestRegister_NilSpec(t *testing.T) {
	mux := http.NewServeMux()
	err := routes.Register(mux, "", nil, routes.Group{
		Prefix: "/messages",
		Routes: []routes.Route{{Method: "GET", Pattern: "/{id}", Handler: write("m"), OpenAPI: &openapi.Operation{}}},
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/messages/s1", nil))
	assert.Equal(t, "m:s1", rec.Body.String())
}
