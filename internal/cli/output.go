package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case RoomList:
		o.printRoomList(v)
	case Profile:
		o.printProfile(v)
	case ProfileList:
		o.printProfileList(v)
	case ServerStatus:
		o.printServerStatus(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// RoomSummary response type (matches API)
type RoomSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Mode        string `json:"mode"`
	Status      string `json:"status"`
	PlayerCount int    `json:"playerCount"`
	MaxPlayers  int    `json:"maxPlayers"`
	HasPassword bool   `json:"hasPassword"`
	Difficulty  string `json:"difficulty"`
}

// RoomList response type
type RoomList struct {
	Rooms []RoomSummary `json:"rooms"`
}

// Profile response type
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

// ProfileList response type
type ProfileList struct {
	Profiles []Profile `json:"profiles"`
}

// ServerStatus response type
type ServerStatus struct {
	OnlineCount     int  `json:"online_count"`
	RoomCount       int  `json:"room_count"`
	MaintenanceMode bool `json:"maintenance_mode"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printRoomList(l RoomList) {
	if len(l.Rooms) == 0 {
		fmt.Println("No rooms")
		return
	}

	fmt.Printf("Rooms (%d):\n", len(l.Rooms))
	for _, r := range l.Rooms {
		lockStr := ""
		if r.HasPassword {
			lockStr = " [locked]"
		}
		fmt.Printf("  - %s (%s) %s %d/%d %s %s%s\n",
			r.Name, r.ID, r.Mode, r.PlayerCount, r.MaxPlayers, r.Status, r.Difficulty, lockStr)
	}
}

func (o *Output) printProfile(p Profile) {
	bannedStr := "no"
	if p.Banned {
		bannedStr = "yes"
	}
	fmt.Printf("User: %s\n", p.Username)
	if p.Avatar != "" {
		fmt.Printf("Avatar: %s\n", p.Avatar)
	}
	fmt.Printf("Record: %d wins / %d losses (%d played)\n", p.Wins, p.Losses, p.GamesPlayed)
	fmt.Printf("Banned: %s\n", bannedStr)
}

func (o *Output) printProfileList(l ProfileList) {
	if len(l.Profiles) == 0 {
		fmt.Println("No users")
		return
	}

	fmt.Printf("Users (%d):\n", len(l.Profiles))
	for _, p := range l.Profiles {
		bannedStr := ""
		if p.Banned {
			bannedStr = " [banned]"
		}
		fmt.Printf("  - %s: %dW/%dL%s\n", p.Username, p.Wins, p.Losses, bannedStr)
	}
}

func (o *Output) printServerStatus(s ServerStatus) {
	maintStr := "off"
	if s.MaintenanceMode {
		maintStr = "on"
	}
	fmt.Printf("Online: %d\n", s.OnlineCount)
	fmt.Printf("Rooms: %d\n", s.RoomCount)
	fmt.Printf("Maintenance: %s\n", maintStr)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
