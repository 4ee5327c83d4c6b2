package model

import "time"

// PlayerID is the stable identifier of a player's connection for the
// life of its socket.
type PlayerID string

// Team names a side within a room. Empty for solo/1v1 rooms.
type Team string

const (
	TeamNone Team = ""
	Team1    Team = "team1"
	Team2    Team = "team2"
)

// Opposing returns the other team, or TeamNone for TeamNone.
func (t Team) Opposing() Team {
	switch t {
	case Team1:
		return Team2
	case Team2:
		return Team1
	default:
		return TeamNone
	}
}

// Player represents a room member. Username is the display string;
// cross-session identity is keyed by the case-folded username in the
// user-profile store, not here.
type Player struct {
	ID       PlayerID
	Username string
	Avatar   string
	Team     Team
	IsAdmin  bool
	JoinedAt time.Time
}

// UserProfile is the persisted record for a username in the external
// user store. The key is the case-folded username.
type UserProfile struct {
	Username    string
	Wins        int
	Losses      int
	GamesPlayed int
	Avatar      string
	Banned      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
