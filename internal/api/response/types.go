package response

import (
	"time"

	"github.com/wordparty/wordparty/internal/model"
)

// Status is the response for the status endpoint
type Status struct {
	OnlineCount     int  `json:"online_count"`
	RoomCount       int  `json:"room_count"`
	MaintenanceMode bool `json:"maintenance_mode"`
}

// RoomList is the response for the room listing endpoint
type RoomList struct {
	Rooms []model.RoomSummary `json:"rooms"`
}

// Profile represents a user profile in API responses
type Profile struct {
	Username    string    `json:"username"`
	Avatar      string    `json:"avatar,omitempty"`
	Wins        int       `json:"wins"`
	Losses      int       `json:"losses"`
	GamesPlayed int       `json:"games_played"`
	Banned      bool      `json:"banned"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProfileFromModel converts a model.UserProfile to a response Profile
func ProfileFromModel(p *model.UserProfile) Profile {
	return Profile{
		Username:    p.Username,
		Avatar:      p.Avatar,
		Wins:        p.Wins,
		Losses:      p.Losses,
		GamesPlayed: p.GamesPlayed,
		Banned:      p.Banned,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ProfileList is the response for the profile listing endpoint
type ProfileList struct {
	Profiles []Profile `json:"profiles"`
}
