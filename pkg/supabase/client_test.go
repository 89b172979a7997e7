package supabase_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/antique-feed/pkg/supabase"
)

const testKey = "service-key"

func newTestClient(t *testing.T, handler http.HandlerFunc) *supabase.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &supabase.Config{URL: srv.URL, Key: testKey}
	require.NoError(t, cfg.Finalize(nil))

	client, err := supabase.New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return client
}

func assertKeyHeaders(t *testing.T, r *http.Request) {
	t.Helper()
	assert.Equal(t, testKey, r.Header.Get("apikey"))
	assert.Equal(t, "Bearer "+testKey, r.Header.Get("Authorization"))
}

func TestClient_Select(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assertKeyHeaders(t, r)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/live_sessions", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "*", q.Get("select"))
		assert.Equal(t, "eq.active", q.Get("status"))
		assert.Equal(t, "created_at.desc", q.Get("order"))
		assert.Equal(t, "5", q.Get("limit"))

		w.Write([]byte(`[{"id":1,"status":"active"},{"id":2,"status":"active"}]`))
	})

	q := supabase.From("live_sessions").Eq("status", "active").Order("created_at", false).Limit(5)
	rows, err := client.Select(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, float64(1), rows[0]["id"])
}

func TestClient_Insert(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assertKeyHeaders(t, r)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/reservations", r.URL.Path)
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "buyer-1", body["buyer_id"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[{"id":7,"buyer_id":"buyer-1"}]`))
	})

	rows, err := client.Insert(context.Background(), "reservations", supabase.Record{"buyer_id": "buyer-1"})
	require.NoError(t, err)

	row, err := supabase.First(rows)
	require.NoError(t, err)
	assert.Equal(t, float64(7), row["id"])
}

func TestClient_Update(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/rest/v1/profiles", r.URL.Path)
		assert.Equal(t, "eq.user-1", r.URL.Query().Get("user_id"))
		assert.Empty(t, r.URL.Query().Get("select"))

		w.Write([]byte(`[]`))
	})

	rows, err := client.Update(
		context.Background(),
		supabase.From("profiles").Eq("user_id", "user-1"),
		supabase.Record{"full_name": "Ada"},
	)
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = supabase.First(rows)
	assert.ErrorIs(t, err, supabase.ErrNoRows)
}

func TestClient_RPC(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"object result", `{"ok":true}`, `{"ok":true}`},
		{"scalar result", `true`, `true`},
		{"empty result", ``, `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/rest/v1/rpc/reserve_product", r.URL.Path)

				var params map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
				assert.Equal(t, "42", params["product_id"])

				w.Write([]byte(tt.body))
			})

			raw, err := client.RPC(context.Background(), "reserve_product", supabase.Record{"product_id": "42"})
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(raw))
		})
	}
}

func TestClient_ErrorMessages(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"postgrest message", http.StatusBadRequest, `{"code":"23505","message":"duplicate key value"}`, "duplicate key value"},
		{"gotrue msg", http.StatusUnprocessableEntity, `{"code":422,"msg":"User already registered"}`, "User already registered"},
		{"oauth description", http.StatusBadRequest, `{"error":"invalid_grant","error_description":"Invalid login credentials"}`, "Invalid login credentials"},
		{"storage error", http.StatusNotFound, `{"statusCode":"404","error":"Bucket not found"}`, "Bucket not found"},
		{"no body", http.StatusBadGateway, ``, "supabase error 502: Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := client.Select(context.Background(), supabase.From("products"))
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
			assert.Equal(t, tt.status, supabase.StatusOf(err))
		})
	}
}

func TestClient_SignUp(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantToken string
	}{
		{
			"confirmation pending",
			`{"id":"u-1","email":"a@example.com"}`,
			"",
		},
		{
			"session issued",
			`{"access_token":"tok","token_type":"bearer","expires_in":3600,"refresh_token":"ref","user":{"id":"u-1","email":"a@example.com"}}`,
			"tok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/auth/v1/signup", r.URL.Path)

				var creds supabase.Credentials
				require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
				assert.Equal(t, "a@example.com", creds.Email)
				assert.Equal(t, "secret", creds.Password)

				w.Write([]byte(tt.body))
			})

			session, err := client.SignUp(context.Background(), supabase.Credentials{Email: "a@example.com", Password: "secret"})
			require.NoError(t, err)
			assert.Equal(t, "u-1", session.User["id"])
			assert.Equal(t, tt.wantToken, session.AccessToken)
		})
	}
}

func TestClient_SignIn(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		w.Write([]byte(`{"access_token":"tok","user":{"id":"u-2"}}`))
	})

	session, err := client.SignIn(context.Background(), supabase.Credentials{Email: "b@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "u-2", session.User["id"])
}

func TestClient_SignOut(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/logout", r.URL.Path)
		assert.Equal(t, testKey, r.Header.Get("apikey"))
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.SignOut(context.Background(), "user-token"))
	assert.Error(t, client.SignOut(context.Background(), ""))
}

func TestClient_Upload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assertKeyHeaders(t, r)
		assert.Equal(t, "/storage/v1/object/product_images/lamp%20one.png", r.URL.EscapedPath())
		assert.Equal(t, "image/png", r.Header.Get("Content-Type"))

		data, _ := io.ReadAll(r.Body)
		assert.Equal(t, "png-bytes", string(data))

		w.Write([]byte(`{"Id":"obj-1","Key":"product_images/lamp one.png"}`))
	})

	obj, err := client.Upload(context.Background(), "product_images", "lamp one.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "lamp one.png", obj.Path)
	assert.Equal(t, "product_images/lamp one.png", obj.FullPath)
	assert.Equal(t, "obj-1", obj.ID)

	assert.True(t, strings.HasSuffix(
		client.PublicURL("product_images", "lamp one.png"),
		"/storage/v1/object/public/product_images/lamp%20one.png",
	))
}

func TestClient_Cancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Select(ctx, supabase.From("products"))
	assert.ErrorIs(t, err, context.Canceled)
}
