package messages

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/antique-feed/pkg/decode"
	"github.com/JaimeStill/antique-feed/pkg/handlers"
	"github.com/JaimeStill/antique-feed/pkg/query"
	"github.com/JaimeStill/antique-feed/pkg/routes"
)

type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "messages"),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/messages",
		Tags:        []string{"Messages"},
		Description: "Chat messages posted during live sessions",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{session_id}", Handler: h.List, OpenAPI: Spec.List},
			{Method: "POST", Pattern: "", Handler: h.Send, OpenAPI: Spec.Send},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	opts, err := query.OptionsFromQuery(r.URL.Query())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	rows, err := h.sys.List(r.Context(), r.PathValue("session_id"), opts)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, rows)
}

func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	data, err := decode.Object(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	msg, err := h.sys.Send(r.Context(), data)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, msg)
}
