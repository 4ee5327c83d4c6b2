package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/wordparty/wordparty/internal/model"
	"github.com/wordparty/wordparty/internal/ws"
)

// WSHandler upgrades HTTP requests to websocket connections and hands
// them to the hub and event router.
type WSHandler struct {
	hub      *ws.Hub
	router   *ws.Router
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewWSHandler creates a new websocket handler
func NewWSHandler(hub *ws.Hub, router *ws.Router, logger *slog.Logger) *WSHandler {
	return &WSHandler{
		hub:    hub,
		router: router,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Game clients connect from arbitrary origins
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Serve handles GET /ws
func (h *WSHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	connID := model.PlayerID(uuid.NewString())
	client := ws.NewClient(connID, conn, h.router, h.logger)
	h.hub.Register(client)

	go client.WritePump()
	go func() {
		client.ReadPump()
		h.hub.Unregister(connID)
	}()

	h.router.Connected(connID)
}
