package reservations

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/antique-feed/pkg/decode"
	"github.com/JaimeStill/antique-feed/pkg/handlers"
	"github.com/JaimeStill/antique-feed/pkg/openapi"
	"github.com/JaimeStill/antique-feed/pkg/routes"
)

type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "reservations"),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/reservations",
		Tags:        []string{"Reservations"},
		Description: "Buyer holds on products",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: createOp},
		},
	}
}

var createOp = &openapi.Operation{
	Summary:     "Create reservation",
	RequestBody: openapi.RequestBodyObject("Reservation columns"),
	Responses: map[int]*openapi.Response{
		201: openapi.ResponseJSON("Created reservation", "Record"),
		400: openapi.ResponseRef("BadRequest"),
	},
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	data, err := decode.Object(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	reservation, err := h.sys.Create(r.Context(), data)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, reservation)
}
