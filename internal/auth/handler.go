package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/JaimeStill/antique-feed/pkg/decode"
	"github.com/JaimeStill/antique-feed/pkg/handlers"
	"github.com/JaimeStill/antique-feed/pkg/routes"
)

// Handler provides HTTP endpoints for account and profile operations.
type Handler struct {
	sys      System
	logger   *slog.Logger
	validate *validator.Validate
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:      sys,
		logger:   logger.With("handler", "auth"),
		validate: newValidator(),
	}
}

// Routes returns the auth endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/auth",
		Tags:        []string{"Auth"},
		Description: "Accounts, sessions and user profiles",
		Schemas:     Spec.Schemas(),
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/signup", Handler: h.SignUp, OpenAPI: Spec.SignUp},
			{Method: "POST", Pattern: "/login", Handler: h.Login, OpenAPI: Spec.Login},
			{Method: "POST", Pattern: "/logout", Handler: h.Logout, OpenAPI: Spec.Logout},
			{Method: "GET", Pattern: "/profile/{id}", Handler: h.GetProfile, OpenAPI: Spec.GetProfile},
			{Method: "PUT", Pattern: "/profile/{id}", Handler: h.UpdateProfile, OpenAPI: Spec.UpdateProfile},
			{Method: "POST", Pattern: "/fix-auth-domains", Handler: h.FixAuthDomains, OpenAPI: Spec.FixAuthDomains},
		},
	}
}

func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	creds, ok := h.credentials(w, r)
	if !ok {
		return
	}

	user, err := h.sys.SignUp(r.Context(), creds)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, user)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	creds, ok := h.credentials(w, r)
	if !ok {
		return
	}

	user, err := h.sys.SignIn(r.Context(), creds)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, user)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sys.SignOut(r.Context(), bearerToken(r)); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondMessage(w, http.StatusOK, "Successfully logged out")
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	profile, err := h.sys.Profile(r.Context(), id)
	if errors.Is(err, ErrProfileNotFound) {
		h.logger.Info("profile not found", "user_id", id)
		handlers.RespondMessage(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, profile)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	data, err := decode.Object(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	profile, err := h.sys.UpdateProfile(r.Context(), r.PathValue("id"), data)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, profile)
}

// FixAuthDomains is reserved for auth domain repair and performs no platform call.
func (h *Handler) FixAuthDomains(w http.ResponseWriter, r *http.Request) {
	handlers.RespondMessage(w, http.StatusOK, "fix-auth-domains endpoint placeholder")
}

func (h *Handler) credentials(w http.ResponseWriter, r *http.Request) (Credentials, bool) {
	data, err := decode.Object(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return Credentials{}, false
	}

	creds, err := decode.FromMap[Credentials](data)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidBody)
		return Credentials{}, false
	}

	if err := h.validate.Struct(creds); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, validationError(err))
		return Credentials{}, false
	}

	return creds, true
}

func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
