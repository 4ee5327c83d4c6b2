package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wordparty/wordparty/internal/api/request"
	"github.com/wordparty/wordparty/internal/api/response"
	"github.com/wordparty/wordparty/internal/services/profile"
	"github.com/wordparty/wordparty/internal/ws"
)

// AdminHandler serves the admin endpoints. Every route here sits
// behind the admin key middleware.
type AdminHandler struct {
	router   *ws.Router
	profiles *profile.Service
	logger   *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(router *ws.Router, profiles *profile.Service, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		router:   router,
		profiles: profiles,
		logger:   logger,
	}
}

// DeleteRoom handles DELETE /api/v1/admin/rooms/{room}
// The room may be addressed by id or by name.
func (h *AdminHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	idOrName := mux.Vars(r)["room"]

	if err := h.router.DeleteRoom(idOrName); err != nil {
		WriteError(w, err)
		return
	}

	h.logger.Info("room deleted by admin", slog.String("room", idOrName))
	response.NoContent(w)
}

// SetBan handles PUT /api/v1/admin/users/{username}/ban
func (h *AdminHandler) SetBan(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	var req request.SetBanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.profiles.SetBanned(r.Context(), username, req.Banned); err != nil {
		WriteError(w, err)
		return
	}

	h.logger.Info("user ban updated",
		slog.String("username", username),
		slog.Bool("banned", req.Banned))

	p, err := h.profiles.Get(r.Context(), username)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.ProfileFromModel(p))
}

// SetMaintenance handles PUT /api/v1/admin/maintenance
func (h *AdminHandler) SetMaintenance(w http.ResponseWriter, r *http.Request) {
	var req request.SetMaintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.profiles.SetMaintenanceMode(r.Context(), req.Enabled); err != nil {
		WriteError(w, err)
		return
	}

	h.logger.Info("maintenance mode updated", slog.Bool("enabled", req.Enabled))
	response.NoContent(w)
}

// ListProfiles handles GET /api/v1/admin/users
func (h *AdminHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profiles.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.Profile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, response.ProfileFromModel(p))
	}
	response.OK(w, response.ProfileList{Profiles: out})
}

// GetProfile handles GET /api/v1/admin/users/{username}
func (h *AdminHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	p, err := h.profiles.Get(r.Context(), username)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.ProfileFromModel(p))
}
