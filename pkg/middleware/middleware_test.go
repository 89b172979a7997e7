package middleware_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/antique-feed/pkg/middleware"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSystem_ApplyOrder(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	mw := middleware.New()
	mw.Use(tag("first"))
	mw.Use(tag("second"))

	handler := mw.Apply(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestTrimSlash(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantPath string
	}{
		{"root preserved", "/", "/"},
		{"no slash", "/products", "/products"},
		{"trailing slash", "/products/", "/products"},
		{"nested trailing slash", "/products/status/4/", "/products/status/4"},
		{"query kept", "/live_sessions/?limit=5", "/live_sessions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotQuery, gotBody string
			handler := middleware.TrimSlash()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotQuery = r.URL.RawQuery
				b, _ := io.ReadAll(r.Body)
				gotBody = string(b)
			}))

			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(`{"a":1}`))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantPath, gotPath)
			assert.Equal(t, req.URL.RawQuery, gotQuery)
			assert.Equal(t, `{"a":1}`, gotBody)
		})
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := middleware.Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Zero(t, buf.Len(), "log written before handler completed")
		w.WriteHeader(http.StatusCreated)
	}))

	t.Run("generates request id", func(t *testing.T) {
		buf.Reset()
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products?limit=2", nil))

		id := rec.Header().Get(middleware.RequestIDHeader)
		assert.Len(t, id, 36)

		out := buf.String()
		assert.Contains(t, out, "msg=request")
		assert.Contains(t, out, "method=POST")
		assert.Contains(t, out, "/products?limit=2")
		assert.Contains(t, out, "status=201")
		assert.Contains(t, out, "duration=")
		assert.Contains(t, out, id)
	})

	t.Run("propagates request id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(middleware.RequestIDHeader))
		assert.Contains(t, buf.String(), "request_id=abc-123")
	})
}

func TestRecover(t *testing.T) {
	t.Run("panic becomes 500", func(t *testing.T) {
		handler := middleware.Recover(discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
	})

	t.Run("no panic passes through", func(t *testing.T) {
		handler := middleware.Recover(discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})
}

func boolPtr(b bool) *bool { return &b }

func TestCORS(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		cfg        middleware.CORSConfig
		origin     string
		wantOrigin string
	}{
		{"wildcard default", middleware.CORSConfig{}, "http://shop.example", "*"},
		{"listed origin", middleware.CORSConfig{Origins: []string{"http://a.example"}}, "http://a.example", "http://a.example"},
		{"unlisted origin", middleware.CORSConfig{Origins: []string{"http://a.example"}}, "http://evil.example", ""},
		{"wildcard with credentials echoes", middleware.CORSConfig{AllowCredentials: true}, "http://b.example", "http://b.example"},
		{"disabled", middleware.CORSConfig{Enabled: boolPtr(false)}, "http://a.example", ""},
		{"no origin header", middleware.CORSConfig{}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			require.NoError(t, cfg.Finalize(nil))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			middleware.CORS(&cfg)(ok).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	cfg := middleware.CORSConfig{MaxAge: 7200}
	require.NoError(t, cfg.Finalize(nil))

	called := false
	handler := middleware.CORS(&cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/products", nil)
	req.Header.Set("Origin", "http://shop.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, called)
	assert.Equal(t, "7200", rec.Header().Get("Access-Control-Max-Age"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PUT")
}

func TestCORSConfig_EnvOverrides(t *testing.T) {
	t.Setenv("TEST_CORS_ENABLED", "true")
	t.Setenv("TEST_CORS_ORIGINS", "http://localhost:3000, http://localhost:8080")
	t.Setenv("TEST_CORS_METHODS", "GET, POST")
	t.Setenv("TEST_CORS_CREDENTIALS", "true")
	t.Setenv("TEST_CORS_MAX_AGE", "60")

	cfg := &middleware.CORSConfig{}
	err := cfg.Finalize(&middleware.CORSEnv{
		Enabled:          "TEST_CORS_ENABLED",
		Origins:          "TEST_CORS_ORIGINS",
		AllowedMethods:   "TEST_CORS_METHODS",
		AllowCredentials: "TEST_CORS_CREDENTIALS",
		MaxAge:           "TEST_CORS_MAX_AGE",
	})
	require.NoError(t, err)

	assert.True(t, cfg.IsEnabled())
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:8080"}, cfg.Origins)
	assert.Equal(t, []string{"GET", "POST"}, cfg.AllowedMethods)
	assert.True(t, cfg.AllowCredentials)
	assert.Equal(t, 60, cfg.MaxAge)
}

func TestCORSConfig_Merge(t *testing.T) {
	base := middleware.CORSConfig{Origins: []string{"http://a.example"}, AllowedMethods: []string{"GET"}}
	base.Merge(&middleware.CORSConfig{Enabled: boolPtr(false), AllowedMethods: []string{"GET", "POST"}})

	require.NotNil(t, base.Enabled)
	assert.False(t, base.IsEnabled())
	assert.Equal(t, []string{"http://a.example"}, base.Origins)
	assert.Equal(t, []string{"GET", "POST"}, base.AllowedMethods)
}
