package registry

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/wordparty/wordparty/internal/dependencies/clock"
	"github.com/wordparty/wordparty/internal/model"
	"github.com/wordparty/wordparty/internal/services/session"
)

// DefaultHintCount is used when a custom game is created without a
// valid hint budget.
const DefaultHintCount = 5

// Registry is the in-memory directory of all active rooms. It owns
// room-name uniqueness and produces the public listing. Room state is
// process-local and never persisted.
type Registry struct {
	clock    clock.Clock
	sessions *session.Directory
	logger   *slog.Logger

	mu    sync.RWMutex
	rooms map[model.RoomID]*model.Room
	names map[string]model.RoomID // normalized name -> id
	order []model.RoomID          // insertion order for listing
}

// NewRegistry creates an empty room registry.
func NewRegistry(clk clock.Clock, sessions *session.Directory, logger *slog.Logger) *Registry {
	return &Registry{
		clock:    clk,
		sessions: sessions,
		logger:   logger,
		rooms:    make(map[model.RoomID]*model.Room),
		names:    make(map[string]model.RoomID),
	}
}

// Create adds a new room. The creator is not added to the roster;
// joining is a separate operation.
func (r *Registry) Create(name string, mode model.RoomMode, password string, difficulty model.Difficulty, hintCount int) (*model.Room, error) {
	if mode.MaxPlayers() == 0 {
		return nil, model.ErrInvalidRoomMode
	}

	normalized := model.NormalizeRoomName(name)
	if normalized == "" {
		return nil, model.ErrRoomNameTaken
	}

	var passwordHash string
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		passwordHash = string(hash)
	}

	if hintCount != 5 && hintCount != 7 {
		hintCount = DefaultHintCount
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.names[normalized]; taken {
		return nil, model.ErrRoomNameTaken
	}

	now := r.clock.Now()
	room := &model.Room{
		ID:           model.RoomID(uuid.NewString()),
		Name:         name,
		Mode:         mode,
		PasswordHash: passwordHash,
		Status:       model.RoomStatusWaiting,
		Difficulty:   difficulty,
		HintCount:    hintCount,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	r.rooms[room.ID] = room
	r.names[normalized] = room.ID
	r.order = append(r.order, room.ID)

	r.logger.Info("room created",
		slog.String("room_id", string(room.ID)),
		slog.String("name", room.Name),
		slog.String("mode", string(room.Mode)),
	)

	return room, nil
}

// Get returns the room with the given id.
func (r *Registry) Get(id model.RoomID) (*model.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[id]
	if !ok {
		return nil, model.ErrRoomNotFound
	}
	return room, nil
}

// Find returns the room matching the given id or (case-insensitive)
// name. Used by admin room deletion.
func (r *Registry) Find(idOrName string) (*model.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if room, ok := r.rooms[model.RoomID(idOrName)]; ok {
		return room, nil
	}
	if id, ok := r.names[model.NormalizeRoomName(idOrName)]; ok {
		return r.rooms[id], nil
	}
	return nil, model.ErrRoomNotFound
}

// List returns summaries of all current rooms in insertion order.
func (r *Registry) List() []model.RoomSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()
	summaries := make([]model.RoomSummary, 0, len(r.rooms))
	for _, id := range r.order {
		if room, ok := r.rooms[id]; ok {
			summaries = append(summaries, room.Summary())
		}
	}
	return summaries
}

// Delete removes a room and detaches every member's session-to-room
// binding. Used on empty-room cleanup and admin deletion.
func (r *Registry) Delete(id model.RoomID) error {
	r.mu.Lock()
	room, ok := r.rooms[id]
	if !ok {
		r.mu.Unlock()
		return model.ErrRoomNotFound
	}
	delete(r.rooms, id)
	delete(r.names, model.NormalizeRoomName(room.Name))
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.mu.Unlock()

	for _, pid := range r.sessions.InRoom(id) {
		r.sessions.UnbindRoom(pid)
	}

	r.logger.Info("room deleted",
		slog.String("room_id", string(id)),
		slog.String("name", room.Name),
	)

	return nil
}

// CheckPassword verifies a join attempt against the room's password.
func (r *Registry) CheckPassword(room *model.Room, password string) error {
	if !room.HasPassword() {
		return nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(room.PasswordHash), []byte(password)); err != nil {
		return model.ErrWrongPassword
	}
	return nil
}

// Count returns the number of active rooms.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}
