package products

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/antique-feed/pkg/decode"
	"github.com/JaimeStill/antique-feed/pkg/handlers"
	"github.com/JaimeStill/antique-feed/pkg/query"
	"github.com/JaimeStill/antique-feed/pkg/routes"
)

// Handler provides HTTP endpoints for products.
type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "products"),
	}
}

// Routes returns the product route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/products",
		Tags:        []string{"Products"},
		Description: "Items offered during live sessions",
		Schemas:     Spec.Schemas(),
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: Spec.Create},
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "POST", Pattern: "/reserve/{id}", Handler: h.Reserve, OpenAPI: Spec.Reserve},
			{Method: "PUT", Pattern: "/status/{id}", Handler: h.UpdateStatus, OpenAPI: Spec.UpdateStatus},
		},
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	data, err := decode.Object(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	product, err := h.sys.Create(r.Context(), data)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, product)
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

func (h *Handler) Reserve(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.Reserve(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	handlers.RespondRaw(w, http.StatusOK, result)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	data, err := decode.Object(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	status, _ := data["status"].(string)

	result, err := h.sys.UpdateStatus(r.Context(), r.PathValue("id"), status)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	handlers.RespondRaw(w, http.StatusOK, result)
}
