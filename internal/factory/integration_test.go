package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/wordparty/wordparty/internal/model"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *IntegrationSuite) addPlayer(r *model.Room, id, username string) {
	err := s.app.RoomController.Join(r, model.Player{
		ID:       model.PlayerID(id),
		Username: username,
		JoinedAt: s.app.MockClock.Now(),
	}, "")
	s.Require().NoError(err)
}

// distinctLetters returns the word's letters in first-seen order.
func distinctLetters(word string) []string {
	seen := map[rune]bool{}
	var out []string
	for _, ch := range word {
		if !seen[ch] {
			seen[ch] = true
			out = append(out, string(ch))
		}
	}
	return out
}

// Test: complete built-in-word game from room creation to stats
func (s *IntegrationSuite) TestBuiltinGameLifecycle() {
	r, err := s.app.Registry.Create("Friday Night", model.Mode1v1, "", model.DifficultyEasy, 0)
	s.Require().NoError(err)

	s.addPlayer(r, "c1", "alice")
	s.addPlayer(r, "c2", "bob")
	s.Equal(model.PlayerID("c1"), r.HostID)

	// Word pick draws from the easy dictionary
	s.app.MockRandom.QueueIntn(0)
	s.Require().NoError(s.app.GameController.Start(s.ctx, r, "c1"))
	s.Require().NotNil(r.Game)
	s.Equal(model.PhasePlaying, r.Game.Phase)
	s.Equal(model.RoomStatusPlaying, r.Status)

	// Guess every letter of the word in turn order
	word := r.Game.Word
	var last struct {
		won  bool
		over bool
	}
	for _, letter := range distinctLetters(word) {
		cur := s.app.RoomController.CurrentTurnPlayer(r)
		s.Require().NotNil(cur)
		res, err := s.app.GameController.Guess(s.ctx, r, cur.ID, letter)
		s.Require().NoError(err)
		s.True(res.Correct)
		last.won = res.Won
		last.over = res.Over
	}

	s.True(last.over)
	s.True(last.won)
	s.Equal(model.RoomStatusFinished, r.Status)

	// Both guessers win, stats land in the profile store
	for _, username := range []string{"alice", "bob"} {
		p, err := s.app.ProfileService.Get(s.ctx, username)
		s.Require().NoError(err)
		s.Equal(1, p.Wins)
		s.Equal(0, p.Losses)
		s.Equal(1, p.GamesPlayed)
	}

	// Room resets for the next round
	s.app.GameController.Reset(r)
	s.Nil(r.Game)
	s.Equal(model.RoomStatusWaiting, r.Status)
}

// Test: custom-word game through coin flip, word submission and loss
func (s *IntegrationSuite) TestCustomWordGameFlow() {
	r, err := s.app.Registry.Create("Grudge Match", model.Mode2v2, "", model.DifficultyCustom, 5)
	s.Require().NoError(err)

	s.addPlayer(r, "c1", "alice")
	s.addPlayer(r, "c2", "bob")
	s.addPlayer(r, "c3", "carol")
	s.addPlayer(r, "c4", "dave")

	// Auto-balance alternates teams
	s.Equal(model.Team1, r.GetPlayer("c1").Team)
	s.Equal(model.Team2, r.GetPlayer("c2").Team)

	s.Require().NoError(s.app.GameController.Start(s.ctx, r, "c1"))
	s.Require().NotNil(r.Game)
	s.Equal(model.PhaseCoinFlip, r.Game.Phase)
	s.Equal(model.PlayerID("c1"), r.Game.CoinFlip.Player1ID)
	s.Equal(model.PlayerID("c2"), r.Game.CoinFlip.Player2ID)

	// First chooser fixes both sides
	s.Require().NoError(s.app.GameController.ChooseSide(r, "c1", model.SideHeads))

	// Heads comes up, team1 sets the word
	s.app.MockRandom.QueueIntn(0)
	flip, err := s.app.GameController.ResolveCoinFlip(r)
	s.Require().NoError(err)
	s.Equal(model.SideHeads, flip.Result)
	s.Equal(model.PlayerID("c1"), r.Game.WordSetter)
	s.Equal(model.Team1, r.Game.WordSetterTeam)

	s.Require().NoError(s.app.GameController.OpenWordSelection(r))
	s.Require().NoError(s.app.GameController.SubmitWord(r, "c1", "banjo"))
	s.Equal(model.PhasePlaying, r.Game.Phase)
	s.Equal(5, r.Game.HintsRemaining)

	// Setter's team sits out, bob guesses first
	cur := s.app.RoomController.CurrentTurnPlayer(r)
	s.Require().NotNil(cur)
	s.Equal(model.PlayerID("c2"), cur.ID)

	// Six wrong guesses lose the game
	for i, letter := range []string{"X", "Y", "Z", "Q", "W", "K"} {
		cur := s.app.RoomController.CurrentTurnPlayer(r)
		res, err := s.app.GameController.Guess(s.ctx, r, cur.ID, letter)
		s.Require().NoError(err)
		s.False(res.Correct)
		if i < 5 {
			s.False(res.Over)
		} else {
			s.True(res.Over)
			s.False(res.Won)
		}
	}

	// Guessers lose, the setter's team records the win
	for username, wins := range map[string]int{"alice": 1, "carol": 1, "bob": 0, "dave": 0} {
		p, err := s.app.ProfileService.Get(s.ctx, username)
		s.Require().NoError(err)
		s.Equal(wins, p.Wins, username)
		s.Equal(1-wins, p.Losses, username)
	}
}

// Test: the turn pointer survives the current guesser leaving
func (s *IntegrationSuite) TestLeaverRealignsTurn() {
	r, err := s.app.Registry.Create("Dropouts", model.Mode2v2, "", model.DifficultyMedium, 0)
	s.Require().NoError(err)

	s.addPlayer(r, "c1", "alice")
	s.addPlayer(r, "c2", "bob")
	s.addPlayer(r, "c3", "carol")
	s.addPlayer(r, "c4", "dave")

	s.app.MockRandom.QueueIntn(0)
	s.Require().NoError(s.app.GameController.Start(s.ctx, r, "c1"))
	s.Equal(0, r.Game.CurrentTurn)

	// The player whose turn it is leaves mid-game
	result, err := s.app.RoomController.Leave(r, "c1")
	s.Require().NoError(err)
	s.False(result.RoomDeleted)
	s.Equal(model.PlayerID("c2"), result.NewHostID)

	cur := s.app.RoomController.CurrentTurnPlayer(r)
	s.Require().NotNil(cur)
	s.Equal(model.PlayerID("c2"), cur.ID)
}

// Test: host migration hands start rights to the next joiner
func (s *IntegrationSuite) TestHostMigration() {
	r, err := s.app.Registry.Create("Musical Chairs", model.Mode1v1, "", model.DifficultyEasy, 0)
	s.Require().NoError(err)

	s.addPlayer(r, "c1", "alice")
	s.addPlayer(r, "c2", "bob")

	result, err := s.app.RoomController.Leave(r, "c1")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("c2"), result.NewHostID)

	s.app.MockRandom.QueueIntn(0)
	s.Require().NoError(s.app.GameController.Start(s.ctx, r, "c2"))
	s.Equal(model.RoomStatusPlaying, r.Status)
}

// Test: ban flag and maintenance gate persist through the store
func (s *IntegrationSuite) TestModerationStatePersists() {
	_, err := s.app.ProfileService.Touch(s.ctx, "mallory", "")
	s.Require().NoError(err)

	s.Require().NoError(s.app.ProfileService.SetBanned(s.ctx, "mallory", true))
	banned, err := s.app.ProfileService.IsBanned(s.ctx, "MALLORY")
	s.Require().NoError(err)
	s.True(banned)

	s.Require().NoError(s.app.ProfileService.SetMaintenanceMode(s.ctx, true))
	enabled, err := s.app.ProfileService.MaintenanceMode(s.ctx)
	s.Require().NoError(err)
	s.True(enabled)
}
