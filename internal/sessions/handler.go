package sessions

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/antique-feed/pkg/decode"
	"github.com/JaimeStill/antique-feed/pkg/handlers"
	"github.com/JaimeStill/antique-feed/pkg/query"
	"github.com/JaimeStill/antique-feed/pkg/routes"
)

// Handler provides HTTP endpoints for live sessions.
type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "sessions"),
	}
}

// Routes returns the live session route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/live_sessions",
		Tags:        []string{"Live Sessions"},
		Description: "Seller broadcast sessions",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: Spec.Create},
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "POST", Pattern: "/end/{id}", Handler: h.End, OpenAPI: Spec.End},
		},
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	data, err := decode.Object(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	session, err := h.sys.Create(r.Context(), data)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, session)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	opts, err := query.OptionsFromQuery(values)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	rows, err := h.sys.List(r.Context(), FiltersFromQuery(values), opts)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, rows)
}

func (h *Handler) End(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.End(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	handlers.RespondRaw(w, http.StatusOK, result)
}
