package sessions_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/antique-feed/internal/sessions"
	"github.com/JaimeStill/antique-feed/pkg/routes"
	"github.com/JaimeStill/antique-feed/pkg/supabase"
	"github.com/JaimeStill/antique-feed/pkg/supabase/supabasetest"
)

func newMux(t *testing.T, db *supabasetest.Database) *http.ServeMux {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := sessions.NewHandler(sessions.New(db, logger), logger)

	mux := http.NewServeMux()
	require.NoError(t, routes.Register(mux, "", nil, h.Routes()))
	return mux
}

func serve(mux http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Create(t *testing.T) {
	db := &supabasetest.Database{Rows: []supabase.Record{{"id": float64(3), "title": "Estate sale"}}}
	mux := newMux(t, db)

	rec := serve(mux, http.MethodPost, "/live_sessions", `{"title":"Estate sale","seller_id":"s-1"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":3,"title":"Estate sale"}`, rec.Body.String())

	call := db.LastCall()
	assert.Equal(t, "insert", call.Op)
	assert.Equal(t, "live_sessions", call.Table)
	assert.Equal(t, "s-1", call.Record["seller_id"])
}

func TestHandler_Create_Errors(t *testing.T) {
	tests := []struct {
		name string
		db   *supabasetest.Database
		body string
		want string
	}{
		{"empty body", &supabasetest.Database{}, "", "request body is empty"},
		{"no representation", &supabasetest.Database{}, `{"title":"x"}`, "create live session: no rows returned"},
		{"platform error", &supabasetest.Database{Err: &supabase.Error{Status: 409, Message: "duplicate key value"}}, `{"title":"x"}`, "duplicate key value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(newMux(t, tt.db), http.MethodPost, "/live_sessions", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"`+tt.want+`"}`, rec.Body.String())
		})
	}
}

func TestHandler_List(t *testing.T) {
	db := &supabasetest.Database{Rows: []supabase.Record{{"id": float64(1)}, {"id": float64(2)}}}
	mux := newMux(t, db)

	rec := serve(mux, http.MethodGet, "/live_sessions?status=active&seller_id=&order_by=created_at&order_direction=DESC&limit=2", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	assert.Len(t, rows, 2)

	params := db.LastCall().Params
	assert.Equal(t, "eq.active", params.Get("status"))
	assert.False(t, params.Has("seller_id"))
	assert.False(t, params.Has("id"))
	assert.Equal(t, "created_at.desc", params.Get("order"))
	assert.Equal(t, "2", params.Get("limit"))
}

func TestHandler_List_Empty(t *testing.T) {
	rec := serve(newMux(t, &supabasetest.Database{}), http.MethodGet, "/live_sessions", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandler_List_InvalidOptions(t *testing.T) {
	for _, target := range []string{
		"/live_sessions?order_direction=sideways",
		"/live_sessions?limit=0",
		"/live_sessions?limit=ten",
	} {
		t.Run(target, func(t *testing.T) {
			db := &supabasetest.Database{}
			rec := serve(newMux(t, db), http.MethodGet, target, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, db.Calls())
		})
	}
}

func TestHandler_End(t *testing.T) {
	db := &supabasetest.Database{RPCResult: json.RawMessage(`{"ended":true}`)}
	mux := newMux(t, db)

	rec := serve(mux, http.MethodPost, "/live_sessions/end/17", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ended":true}`, rec.Body.String())

	call := db.LastCall()
	assert.Equal(t, "end_live_session", call.Fn)
	assert.Equal(t, "17", call.Record["session_id"])
}

func TestHandler_End_PlatformError(t *testing.T) {
	db := &supabasetest.Database{Err: &supabase.Error{Status: 404, Message: "Could not find the function"}}

	rec := serve(newMux(t, db), http.MethodPost, "/live_sessions/end/17", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Could not find the function"}`, rec.Body.String())
}
