package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wordparty/wordparty/internal/api/handler"
	"github.com/wordparty/wordparty/internal/api/middleware"
	"github.com/wordparty/wordparty/internal/services/profile"
	"github.com/wordparty/wordparty/internal/services/registry"
	"github.com/wordparty/wordparty/internal/ws"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	Hub            *ws.Hub
	EventRouter    *ws.Router
	Registry       *registry.Registry
	ProfileService *profile.Service
	AdminKey       string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	wsHandler := handler.NewWSHandler(cfg.Hub, cfg.EventRouter, cfg.Logger)
	roomsHandler := handler.NewRoomsHandler(cfg.EventRouter, cfg.Registry, cfg.ProfileService)
	adminHandler := handler.NewAdminHandler(cfg.EventRouter, cfg.ProfileService, cfg.Logger)

	// Create middleware
	adminAuthMiddleware := middleware.AdminAuth(cfg.AdminKey)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// Websocket endpoint; all gameplay flows over this connection
	r.HandleFunc("/ws", wsHandler.Serve).Methods(http.MethodGet)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Public read-only routes
	api.HandleFunc("/rooms", roomsHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/status", roomsHandler.Status).Methods(http.MethodGet)

	// Admin routes (all require the admin key)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(adminAuthMiddleware)
	admin.HandleFunc("/rooms/{room}", adminHandler.DeleteRoom).Methods(http.MethodDelete)
	admin.HandleFunc("/users", adminHandler.ListProfiles).Methods(http.MethodGet)
	admin.HandleFunc("/users/{username}", adminHandler.GetProfile).Methods(http.MethodGet)
	admin.HandleFunc("/users/{username}/ban", adminHandler.SetBan).Methods(http.MethodPut)
	admin.HandleFunc("/maintenance", adminHandler.SetMaintenance).Methods(http.MethodPut)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
