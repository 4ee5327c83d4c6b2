package model

import (
	"strings"
	"time"
)

// RoomID uniquely identifies a room.
type RoomID string

// RoomMode fixes the player capacity and team layout of a room.
type RoomMode string

const (
	ModeSolo RoomMode = "solo"
	Mode1v1  RoomMode = "1v1"
	Mode2v2  RoomMode = "2v2"
	Mode3v3  RoomMode = "3v3"
	Mode4v4  RoomMode = "4v4"
)

// MaxPlayers returns the roster capacity for a mode, or 0 for an
// unknown mode.
func (m RoomMode) MaxPlayers() int {
	switch m {
	case ModeSolo:
		return 1
	case Mode1v1:
		return 2
	case Mode2v2:
		return 4
	case Mode3v3:
		return 6
	case Mode4v4:
		return 8
	default:
		return 0
	}
}

// HasTeams reports whether the mode splits players into two teams.
func (m RoomMode) HasTeams() bool {
	return m == Mode2v2 || m == Mode3v3 || m == Mode4v4
}

// TeamCap returns the per-team capacity for team modes, 0 otherwise.
func (m RoomMode) TeamCap() int {
	if !m.HasTeams() {
		return 0
	}
	return m.MaxPlayers() / 2
}

// RoomStatus represents the lifecycle state of a room.
type RoomStatus string

const (
	RoomStatusWaiting  RoomStatus = "waiting"
	RoomStatusPlaying  RoomStatus = "playing"
	RoomStatusFinished RoomStatus = "finished"
)

// Difficulty selects the word source for a game.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyCustom Difficulty = "custom"
)

// Room is one multiplayer session: roster, team assignment, host
// pointer and the current game. Players is ordered; insertion order
// is join order and defines turn rotation.
type Room struct {
	ID           RoomID
	Name         string
	Mode         RoomMode
	PasswordHash string // empty for open rooms
	Status       RoomStatus
	Players      []Player
	HostID       PlayerID
	Difficulty   Difficulty
	HintCount    int // 5 or 7, meaningful only for custom games
	Game         *Game
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeRoomName returns the canonical form used for uniqueness
// checks: trimmed and case-folded.
func NormalizeRoomName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// GetPlayer returns the player with the given ID, or nil.
func (r *Room) GetPlayer(id PlayerID) *Player {
	for i := range r.Players {
		if r.Players[i].ID == id {
			return &r.Players[i]
		}
	}
	return nil
}

// PlayerIndex returns the roster index of the given player, or -1.
func (r *Room) PlayerIndex(id PlayerID) int {
	for i := range r.Players {
		if r.Players[i].ID == id {
			return i
		}
	}
	return -1
}

// TeamMembers returns the players carrying the given team tag, in
// roster order.
func (r *Room) TeamMembers(team Team) []Player {
	var members []Player
	for _, p := range r.Players {
		if p.Team == team && team != TeamNone {
			members = append(members, p)
		}
	}
	return members
}

// FirstOfTeam returns the first roster member of the given team, or
// nil if the team is empty.
func (r *Room) FirstOfTeam(team Team) *Player {
	for i := range r.Players {
		if r.Players[i].Team == team && team != TeamNone {
			return &r.Players[i]
		}
	}
	return nil
}

// IsFull reports whether the roster is at capacity.
func (r *Room) IsFull() bool {
	return len(r.Players) >= r.Mode.MaxPlayers()
}

// HasPassword reports whether joining requires a password.
func (r *Room) HasPassword() bool {
	return r.PasswordHash != ""
}

// RoomSummary is the public projection used in the room listing.
type RoomSummary struct {
	ID          RoomID     `json:"id"`
	Name        string     `json:"name"`
	Mode        RoomMode   `json:"mode"`
	Status      RoomStatus `json:"status"`
	PlayerCount int        `json:"playerCount"`
	MaxPlayers  int        `json:"maxPlayers"`
	HasPassword bool       `json:"hasPassword"`
	Difficulty  Difficulty `json:"difficulty"`
}

// Summary returns the public projection of the room.
func (r *Room) Summary() RoomSummary {
	return RoomSummary{
		ID:          r.ID,
		Name:        r.Name,
		Mode:        r.Mode,
		Status:      r.Status,
		PlayerCount: len(r.Players),
		MaxPlayers:  r.Mode.MaxPlayers(),
		HasPassword: r.HasPassword(),
		Difficulty:  r.Difficulty,
	}
}
