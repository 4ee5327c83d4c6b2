package session

import (
	"strings"
	"sync"
	"time"

	"github.com/wordparty/wordparty/internal/model"
)

// Session is the identity bound to one live connection.
type Session struct {
	PlayerID    model.PlayerID
	Username    string
	Avatar      string
	IsAdmin     bool
	RoomID      model.RoomID // empty when not in a room
	ConnectedAt time.Time
}

// Directory maps live connections to their identity and current room.
// It is the source of truth for turn attribution and presence
// counting.
type Directory struct {
	mu       sync.RWMutex
	sessions map[model.PlayerID]*Session
}

// NewDirectory creates an empty session directory.
func NewDirectory() *Directory {
	return &Directory{
		sessions: make(map[model.PlayerID]*Session),
	}
}

// Add registers an authenticated connection.
func (d *Directory) Add(s *Session) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sessions[s.PlayerID] = s
}

// Remove drops the session for a closed connection.
func (d *Directory) Remove(id model.PlayerID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.sessions, id)
}

// Get returns the session for a connection, or nil.
func (d *Directory) Get(id model.PlayerID) *Session {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.sessions[id]
}

// BindRoom records which room a connection is in.
func (d *Directory) BindRoom(id model.PlayerID, roomID model.RoomID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if s, ok := d.sessions[id]; ok {
		s.RoomID = roomID
	}
}

// UnbindRoom clears a connection's room binding.
func (d *Directory) UnbindRoom(id model.PlayerID) {
	d.BindRoom(id, "")
}

// InRoom returns the ids of all connections bound to the given room.
func (d *Directory) InRoom(roomID model.RoomID) []model.PlayerID {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var ids []model.PlayerID
	for id, s := range d.sessions {
		if s.RoomID == roomID {
			ids = append(ids, id)
		}
	}
	return ids
}

// Count returns the number of authenticated connections.
func (d *Directory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.sessions)
}

// UsernameOnline reports whether a connection with the given username
// (case-insensitive) is already present.
func (d *Directory) UsernameOnline(username string) bool {
	folded := strings.ToLower(username)
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, s := range d.sessions {
		if strings.ToLower(s.Username) == folded {
			return true
		}
	}
	return false
}
