package handler

import (
	"net/http"

	"github.com/wordparty/wordparty/internal/api/response"
	"github.com/wordparty/wordparty/internal/model"
	"github.com/wordparty/wordparty/internal/services/profile"
	"github.com/wordparty/wordparty/internal/services/registry"
	"github.com/wordparty/wordparty/internal/ws"
)

// RoomsHandler serves the public read-only endpoints.
type RoomsHandler struct {
	router   *ws.Router
	registry *registry.Registry
	profiles *profile.Service
}

// NewRoomsHandler creates a new rooms handler
func NewRoomsHandler(router *ws.Router, reg *registry.Registry, profiles *profile.Service) *RoomsHandler {
	return &RoomsHandler{
		router:   router,
		registry: reg,
		profiles: profiles,
	}
}

// List handles GET /api/v1/rooms
func (h *RoomsHandler) List(w http.ResponseWriter, r *http.Request) {
	rooms := h.router.ListRooms()
	if rooms == nil {
		rooms = []model.RoomSummary{}
	}
	response.OK(w, response.RoomList{Rooms: rooms})
}

// Status handles GET /api/v1/status
func (h *RoomsHandler) Status(w http.ResponseWriter, r *http.Request) {
	maintenance, err := h.profiles.MaintenanceMode(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.OK(w, response.Status{
		OnlineCount:     h.router.OnlineCount(),
		RoomCount:       h.registry.Count(),
		MaintenanceMode: maintenance,
	})
}
