package reservations_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/antique-feed/internal/reservations"
	"github.com/JaimeStill/antique-feed/pkg/routes"
	"github.com/JaimeStill/antique-feed/pkg/supabase"
	"github.com/JaimeStill/antique-feed/pkg/supabase/supabasetest"
)

func newMux(t *testing.T, db *supabasetest.Database) *http.ServeMux {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := reservations.NewHandler(reservations.New(db, logger), logger)

	mux := http.NewServeMux()
	require.NoError(t, routes.Register(mux, "", nil, h.Routes()))
	return mux
}

func TestHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		db         *supabasetest.Database
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "created",
			db:         &supabasetest.Database{Rows: []supabase.Record{{"id": float64(1), "product_id": float64(42)}}},
			body:       `{"product_id":42,"buyer_id":"b-1"}`,
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":1,"product_id":42}`,
		},
		{
			name:       "no representation",
			db:         &supabasetest.Database{},
			body:       `{"product_id":42}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"create reservation: no rows returned"}`,
		},
		{
			name:       "foreign key violation",
			db:         &supabasetest.Database{Err: &supabase.Error{Status: 409, Message: "violates foreign key constraint"}},
			body:       `{"product_id":99}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"violates foreign key constraint"}`,
		},
		{
			name:       "empty body",
			db:         &supabasetest.Database{},
			body:       ``,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"request body is empty"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			newMux(t, tt.db).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
