package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/wordparty/wordparty/internal/model"
)

// Sender delivers events to connections. The router depends on this
// interface so tests can record outbound traffic instead of opening
// sockets.
type Sender interface {
	Send(id model.PlayerID, event model.EventType, payload any)
	SendMany(ids []model.PlayerID, event model.EventType, payload any)
	Broadcast(event model.EventType, payload any)
}

// Hub tracks every live connection and fans events out to their send
// buffers. Messages to a client with a full buffer are dropped rather
// than blocking the router.
type Hub struct {
	mu      sync.RWMutex
	clients map[model.PlayerID]*Client
	logger  *slog.Logger
}

var _ Sender = (*Hub)(nil)

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[model.PlayerID]*Client),
		logger:  logger.With(slog.String("component", "ws")),
	}
}

// Register adds a connection to the hub.
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	h.clients[client.id] = client
	count := len(h.clients)
	h.mu.Unlock()
	h.logger.Info("client registered",
		slog.String("conn_id", string(client.id)),
		slog.Int("total_clients", count))
}

// Unregister removes a connection and closes its send buffer.
func (h *Hub) Unregister(id model.PlayerID) {
	h.mu.Lock()
	client, ok := h.clients[id]
	if ok {
		delete(h.clients, id)
		close(client.send)
	}
	count := len(h.clients)
	h.mu.Unlock()
	if ok {
		h.logger.Info("client unregistered",
			slog.String("conn_id", string(id)),
			slog.Int("total_clients", count))
	}
}

// ClientCount returns the number of live connections.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Send delivers an event to a single connection.
func (h *Hub) Send(id model.PlayerID, event model.EventType, payload any) {
	msg, err := encodeEnvelope(event, payload)
	if err != nil {
		h.logger.Error("failed to encode event",
			slog.String("event", string(event)),
			slog.String("error", err.Error()))
		return
	}
	h.mu.RLock()
	client := h.clients[id]
	h.mu.RUnlock()
	if client != nil {
		h.deliver(client, msg)
	}
}

// SendMany delivers an event to the given connections.
func (h *Hub) SendMany(ids []model.PlayerID, event model.EventType, payload any) {
	msg, err := encodeEnvelope(event, payload)
	if err != nil {
		h.logger.Error("failed to encode event",
			slog.String("event", string(event)),
			slog.String("error", err.Error()))
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, id := range ids {
		if client := h.clients[id]; client != nil {
			h.deliver(client, msg)
		}
	}
}

// Broadcast delivers an event to every connection.
func (h *Hub) Broadcast(event model.EventType, payload any) {
	msg, err := encodeEnvelope(event, payload)
	if err != nil {
		h.logger.Error("failed to encode event",
			slog.String("event", string(event)),
			slog.String("error", err.Error()))
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		h.deliver(client, msg)
	}
}

func (h *Hub) deliver(client *Client, msg []byte) {
	select {
	case client.send <- msg:
	default:
		h.logger.Warn("message dropped - client buffer full",
			slog.String("conn_id", string(client.id)))
	}
}

// encodeEnvelope wraps a payload in the wire envelope.
func encodeEnvelope(event model.EventType, payload any) ([]byte, error) {
	env := model.Envelope{Type: event}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		env.Payload = raw
	}
	return json.Marshal(env)
}
