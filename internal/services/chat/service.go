package chat

import (
	"sync"

	"github.com/wordparty/wordparty/internal/model"
)

// HistoryCap bounds the retained messages per room; older entries are
// dropped.
const HistoryCap = 200

// Relay keeps per-room chat history. The game core only ever asks it
// to clear a room's history at game boundaries; message fan-out goes
// through the event router like any other event.
type Relay struct {
	mu      sync.RWMutex
	history map[model.RoomID][]model.ChatEntry
}

// NewRelay creates an empty chat relay.
func NewRelay() *Relay {
	return &Relay{
		history: make(map[model.RoomID][]model.ChatEntry),
	}
}

// Append records a message in a room's history.
func (r *Relay) Append(roomID model.RoomID, entry model.ChatEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	msgs := append(r.history[roomID], entry)
	if len(msgs) > HistoryCap {
		msgs = msgs[len(msgs)-HistoryCap:]
	}
	r.history[roomID] = msgs
}

// History returns a copy of a room's message history.
func (r *Relay) History(roomID model.RoomID) []model.ChatEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	msgs := r.history[roomID]
	out := make([]model.ChatEntry, len(msgs))
	copy(out, msgs)
	return out
}

// Clear wipes a room's history. Called on game start and game end.
func (r *Relay) Clear(roomID model.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.history, roomID)
}
