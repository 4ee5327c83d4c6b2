package room

import (
	"log/slog"

	"github.com/wordparty/wordparty/internal/dependencies/clock"
	"github.com/wordparty/wordparty/internal/model"
	"github.com/wordparty/wordparty/internal/services/registry"
)

// Controller manages room rosters, team assignment, host migration
// and the turn engine. All mutation happens on the event router's
// goroutine.
type Controller struct {
	registry *registry.Registry
	clock    clock.Clock
	logger   *slog.Logger
}

// NewController creates a new room controller.
func NewController(reg *registry.Registry, clk clock.Clock, logger *slog.Logger) *Controller {
	return &Controller{
		registry: reg,
		clock:    clk,
		logger:   logger,
	}
}

// Join adds a player to a room's roster. The first player to join
// becomes host. In team modes the player is auto-assigned to the team
// with fewer members, ties going to team1.
func (c *Controller) Join(room *model.Room, player model.Player, password string) error {
	if room.Status != model.RoomStatusWaiting {
		return model.ErrRoomNotWaiting
	}
	if room.IsFull() {
		return model.ErrRoomFull
	}
	if err := c.registry.CheckPassword(room, password); err != nil {
		return err
	}

	if room.Mode.HasTeams() {
		if len(room.TeamMembers(model.Team2)) < len(room.TeamMembers(model.Team1)) {
			player.Team = model.Team2
		} else {
			player.Team = model.Team1
		}
	} else {
		player.Team = model.TeamNone
	}
	player.JoinedAt = c.clock.Now()

	room.Players = append(room.Players, player)
	if len(room.Players) == 1 {
		room.HostID = player.ID
	}
	room.UpdatedAt = c.clock.Now()

	return nil
}

// LeaveResult reports what happened when a player left.
type LeaveResult struct {
	Removed     model.Player
	RoomDeleted bool
	NewHostID   model.PlayerID // set when host migration occurred
}

// Leave removes a player from the roster and both team lists,
// preserving the relative order of the remainder. An emptied room is
// destroyed; if the host left, the new first roster member becomes
// host.
func (c *Controller) Leave(room *model.Room, playerID model.PlayerID) (LeaveResult, error) {
	idx := room.PlayerIndex(playerID)
	if idx < 0 {
		return LeaveResult{}, model.ErrNotInRoom
	}

	result := LeaveResult{Removed: room.Players[idx]}
	room.Players = append(room.Players[:idx], room.Players[idx+1:]...)
	room.UpdatedAt = c.clock.Now()

	if len(room.Players) == 0 {
		if err := c.registry.Delete(room.ID); err != nil {
			return result, err
		}
		result.RoomDeleted = true
		return result, nil
	}

	if room.HostID == playerID {
		room.HostID = room.Players[0].ID
		result.NewHostID = room.HostID
	}

	c.realignTurn(room, idx)

	return result, nil
}

// realignTurn keeps the turn pointer valid after the roster entry at
// removedIdx was deleted mid-game.
func (c *Controller) realignTurn(room *model.Room, removedIdx int) {
	g := room.Game
	if g == nil || g.Phase != model.PhasePlaying {
		return
	}
	if removedIdx < g.CurrentTurn {
		g.CurrentTurn--
		return
	}
	if removedIdx == g.CurrentTurn {
		if g.CurrentTurn >= len(room.Players) {
			g.CurrentTurn = 0
		}
		g.CurrentTurn = c.eligibleFrom(room, g.CurrentTurn)
	}
}

// ChangeTeam moves a player to the target team. Fails with TeamFull
// when the target is at capacity.
func (c *Controller) ChangeTeam(room *model.Room, playerID model.PlayerID, team model.Team) error {
	if room.Status != model.RoomStatusWaiting {
		return model.ErrRoomNotWaiting
	}
	if !room.Mode.HasTeams() || (team != model.Team1 && team != model.Team2) {
		return model.ErrInvalidTeam
	}

	player := room.GetPlayer(playerID)
	if player == nil {
		return model.ErrNotInRoom
	}
	if player.Team == team {
		return nil
	}
	if len(room.TeamMembers(team)) >= room.Mode.TeamCap() {
		return model.ErrTeamFull
	}

	player.Team = team
	room.UpdatedAt = c.clock.Now()
	return nil
}

// CanPlayerGuess reports whether a player is eligible to guess. For
// built-in-word games every player is eligible; in custom games the
// word setter's team (team modes) or the word setter (1v1) is
// excluded.
func (c *Controller) CanPlayerGuess(room *model.Room, playerID model.PlayerID) bool {
	g := room.Game
	if g == nil || !g.IsCustomWord {
		return true
	}
	if g.WordSetterTeam != model.TeamNone {
		if p := room.GetPlayer(playerID); p != nil && p.Team == g.WordSetterTeam {
			return false
		}
		return true
	}
	return playerID != g.WordSetter
}

// IsPlayerTurn reports whether the turn pointer currently designates
// the given player.
func (c *Controller) IsPlayerTurn(room *model.Room, playerID model.PlayerID) bool {
	g := room.Game
	if g == nil || g.CurrentTurn < 0 || g.CurrentTurn >= len(room.Players) {
		return false
	}
	return room.Players[g.CurrentTurn].ID == playerID
}

// NextTurn advances the turn pointer cyclically by one, then skips
// past ineligible players (custom games only) up to one full lap.
// This is the single mutation path for CurrentTurn during play.
func (c *Controller) NextTurn(room *model.Room) int {
	g := room.Game
	if g == nil || len(room.Players) == 0 {
		return 0
	}
	next := (g.CurrentTurn + 1) % len(room.Players)
	g.CurrentTurn = c.eligibleFrom(room, next)
	return g.CurrentTurn
}

// FirstEligibleIndex returns the first roster index whose player may
// guess; used to initialize the opening turn after word acceptance.
func (c *Controller) FirstEligibleIndex(room *model.Room) int {
	return c.eligibleFrom(room, 0)
}

// eligibleFrom scans forward (wrapping) from start for an eligible
// player. A full fruitless lap indicates a broken invariant; it is
// logged and index 0 returned rather than crashing.
func (c *Controller) eligibleFrom(room *model.Room, start int) int {
	n := len(room.Players)
	if n == 0 {
		return 0
	}
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		if c.CanPlayerGuess(room, room.Players[idx].ID) {
			return idx
		}
	}
	c.logger.Error("no eligible player for turn, defaulting to 0",
		slog.String("room_id", string(room.ID)),
	)
	return 0
}

// CurrentTurnPlayer returns the player designated by the turn
// pointer, or nil when the pointer is out of range.
func (c *Controller) CurrentTurnPlayer(room *model.Room) *model.Player {
	g := room.Game
	if g == nil || g.CurrentTurn < 0 || g.CurrentTurn >= len(room.Players) {
		return nil
	}
	return &room.Players[g.CurrentTurn]
}
