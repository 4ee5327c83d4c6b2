package game

import (
	"context"
	"log/slog"
	"strings"

	"github.com/wordparty/wordparty/internal/dependencies/clock"
	"github.com/wordparty/wordparty/internal/dependencies/random"
	"github.com/wordparty/wordparty/internal/model"
	"github.com/wordparty/wordparty/internal/services/chat"
	"github.com/wordparty/wordparty/internal/services/profile"
	"github.com/wordparty/wordparty/internal/services/room"
	"github.com/wordparty/wordparty/internal/services/words"
)

const scorePerCorrectGuess = 10

// Controller drives the game state machine within a room: word
// acquisition, the coin-flip arbitration for custom words, turn and
// guess evaluation, and the hint ledger. It mutates room state only;
// broadcasting and timer scheduling belong to the event router.
type Controller struct {
	words    *words.Service
	rooms    *room.Controller
	profiles *profile.Service
	chat     *chat.Relay
	clock    clock.Clock
	random   random.Random
	logger   *slog.Logger
}

// NewController creates a new game controller.
func NewController(
	wordService *words.Service,
	roomController *room.Controller,
	profileService *profile.Service,
	chatRelay *chat.Relay,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		words:    wordService,
		rooms:    roomController,
		profiles: profileService,
		chat:     chatRelay,
		clock:    clk,
		random:   rnd,
		logger:   logger,
	}
}

// Start creates a fresh game for the room. Built-in-word games (and
// solo games, which always draw from the dictionary) go straight to
// playing; custom-word games enter the coin-flip phase with the first
// member of each team (or the two 1v1 players) as representatives.
func (c *Controller) Start(ctx context.Context, r *model.Room, requesterID model.PlayerID) error {
	if r.HostID != requesterID {
		return model.ErrNotHost
	}
	if r.Status == model.RoomStatusPlaying {
		return model.ErrGameInProgress
	}
	if len(r.Players) == 0 {
		return model.ErrInsufficientPlayers
	}

	c.chat.Clear(r.ID)

	game := &model.Game{
		Scores:    make(map[model.PlayerID]int),
		StartedAt: c.clock.Now(),
	}
	for _, p := range r.Players {
		game.Scores[p.ID] = 0
	}

	customWord := r.Difficulty == model.DifficultyCustom && r.Mode != model.ModeSolo
	if customWord {
		flip, err := c.pickRepresentatives(r)
		if err != nil {
			return err
		}
		game.Phase = model.PhaseCoinFlip
		game.IsCustomWord = true
		game.HintsRemaining = r.HintCount
		game.CoinFlip = flip
	} else {
		entry := c.words.Pick(r.Difficulty)
		game.Phase = model.PhasePlaying
		game.Word = entry.Word
		game.WordHint = entry.Hint
		game.CurrentTurn = 0
	}

	r.Game = game
	r.Status = model.RoomStatusPlaying
	r.UpdatedAt = c.clock.Now()

	c.logger.Info("game started",
		slog.String("room_id", string(r.ID)),
		slog.String("phase", string(game.Phase)),
		slog.Bool("custom_word", game.IsCustomWord),
	)

	return nil
}

// pickRepresentatives identifies the two coin-flip participants: the
// first roster member of each team, or the two players in 1v1.
func (c *Controller) pickRepresentatives(r *model.Room) (*model.CoinFlip, error) {
	if r.Mode.HasTeams() {
		p1 := r.FirstOfTeam(model.Team1)
		p2 := r.FirstOfTeam(model.Team2)
		if p1 == nil || p2 == nil {
			return nil, model.ErrInsufficientPlayers
		}
		return &model.CoinFlip{Player1ID: p1.ID, Player2ID: p2.ID}, nil
	}
	if len(r.Players) < 2 {
		return nil, model.ErrInsufficientPlayers
	}
	return &model.CoinFlip{Player1ID: r.Players[0].ID, Player2ID: r.Players[1].ID}, nil
}

// ChooseSide records a representative's coin-side choice. The first
// chooser fixes both sides; the opposite side is assigned to the other
// representative, whose own attempt is then rejected.
func (c *Controller) ChooseSide(r *model.Room, playerID model.PlayerID, side model.CoinSide) error {
	g := r.Game
	if g == nil || g.Phase != model.PhaseCoinFlip || g.CoinFlip == nil {
		return model.ErrWrongPhase
	}
	if side != model.SideHeads && side != model.SideTails {
		return model.ErrInvalidSide
	}
	flip := g.CoinFlip
	if !flip.Representative(playerID) {
		return model.ErrNotRepresentative
	}
	if flip.BothChosen() {
		return model.ErrSideAlreadyChosen
	}

	if playerID == flip.Player1ID {
		flip.Player1Choice = side
		flip.Player2Choice = side.Opposite()
	} else {
		flip.Player2Choice = side
		flip.Player1Choice = side.Opposite()
	}
	r.UpdatedAt = c.clock.Now()

	return nil
}

// ResolveCoinFlip draws the coin and declares the winner, whose side
// becomes the word setter. Called by the router after the settle
// delay.
func (c *Controller) ResolveCoinFlip(r *model.Room) (*model.CoinFlip, error) {
	g := r.Game
	if g == nil || g.Phase != model.PhaseCoinFlip || g.CoinFlip == nil {
		return nil, model.ErrWrongPhase
	}
	flip := g.CoinFlip
	if !flip.BothChosen() {
		return nil, model.ErrWrongPhase
	}

	if c.random.Intn(2) == 0 {
		flip.Result = model.SideHeads
	} else {
		flip.Result = model.SideTails
	}
	if flip.Player1Choice == flip.Result {
		flip.Winner = flip.Player1ID
	} else {
		flip.Winner = flip.Player2ID
	}

	g.WordSetter = flip.Winner
	if winner := r.GetPlayer(flip.Winner); winner != nil {
		g.WordSetterTeam = winner.Team
	}
	r.UpdatedAt = c.clock.Now()

	c.logger.Info("coin flip resolved",
		slog.String("room_id", string(r.ID)),
		slog.String("result", string(flip.Result)),
		slog.String("winner", string(flip.Winner)),
	)

	return flip, nil
}

// OpenWordSelection moves a resolved coin flip into the word_selection
// phase. Called by the router after the reveal delay.
func (c *Controller) OpenWordSelection(r *model.Room) error {
	g := r.Game
	if g == nil || g.Phase != model.PhaseCoinFlip || g.CoinFlip == nil || g.CoinFlip.Winner == "" {
		return model.ErrWrongPhase
	}
	g.Phase = model.PhaseWordSelection
	g.CoinFlip = nil
	r.UpdatedAt = c.clock.Now()
	return nil
}

// SubmitWord accepts the word setter's word and opens play. The
// opening turn goes to the first roster member eligible to guess.
func (c *Controller) SubmitWord(r *model.Room, playerID model.PlayerID, word string) error {
	g := r.Game
	if g == nil || g.Phase != model.PhaseWordSelection {
		return model.ErrWrongPhase
	}
	if playerID != g.WordSetter {
		return model.ErrNotWordSetter
	}

	normalized, err := words.ValidateCustomWord(word)
	if err != nil {
		return err
	}

	g.Word = normalized
	g.Phase = model.PhasePlaying
	g.CurrentTurn = c.rooms.FirstEligibleIndex(r)
	r.UpdatedAt = c.clock.Now()

	return nil
}

// GuessResult reports what a guess did.
type GuessResult struct {
	Letter  string
	Correct bool
	Ignored bool // repeated letter, nothing happened
	Over    bool
	Won     bool // guessers revealed the word
}

// Guess evaluates one letter. A repeated letter is a silent no-op.
// Correct guesses score +10 for the guesser's whole team (or just the
// guesser in solo/1v1); the turn passes either way. A revealed word or
// an exhausted wrong-guess budget ends the game.
func (c *Controller) Guess(ctx context.Context, r *model.Room, playerID model.PlayerID, letter string) (GuessResult, error) {
	g := r.Game
	if g == nil || g.Phase != model.PhasePlaying {
		return GuessResult{}, model.ErrNoGameInProgress
	}
	if !c.rooms.CanPlayerGuess(r, playerID) {
		return GuessResult{}, model.ErrTeamExcluded
	}
	if !c.rooms.IsPlayerTurn(r, playerID) {
		return GuessResult{}, model.ErrNotYourTurn
	}

	l := strings.ToUpper(strings.TrimSpace(letter))
	if len(l) != 1 || l[0] < 'A' || l[0] > 'Z' {
		return GuessResult{}, model.ErrInvalidLetter
	}

	if g.HasGuessed(l) {
		return GuessResult{Letter: l, Ignored: true}, nil
	}

	result := GuessResult{Letter: l}
	if g.WordContains(l) {
		result.Correct = true
		g.GuessedLetters = append(g.GuessedLetters, l)
		c.awardScore(r, playerID)
	} else {
		g.WrongLetters = append(g.WrongLetters, l)
	}
	r.UpdatedAt = c.clock.Now()

	switch {
	case g.IsWordRevealed():
		result.Over = true
		result.Won = true
		c.finish(ctx, r, true)
	case g.IsLost():
		result.Over = true
		c.finish(ctx, r, false)
	default:
		c.rooms.NextTurn(r)
	}

	return result, nil
}

// awardScore credits a correct guess: the guesser's whole team in team
// modes, the guesser alone otherwise.
func (c *Controller) awardScore(r *model.Room, guesserID model.PlayerID) {
	g := r.Game
	guesser := r.GetPlayer(guesserID)
	if guesser == nil {
		return
	}
	if r.Mode.HasTeams() {
		for _, p := range r.TeamMembers(guesser.Team) {
			g.Scores[p.ID] += scorePerCorrectGuess
		}
		return
	}
	g.Scores[guesserID] += scorePerCorrectGuess
}

// finish closes the game, clears the room's chat and records win/loss
// stats. Players eligible to guess share the guessers' outcome; in
// custom games the word setter's side gets the inverse.
func (c *Controller) finish(ctx context.Context, r *model.Room, guessersWon bool) {
	g := r.Game
	g.Phase = model.PhaseFinished
	r.Status = model.RoomStatusFinished
	r.UpdatedAt = c.clock.Now()

	c.chat.Clear(r.ID)

	for _, p := range r.Players {
		if p.IsAdmin {
			continue
		}
		won := guessersWon
		if g.IsCustomWord && !c.rooms.CanPlayerGuess(r, p.ID) {
			won = !guessersWon
		}
		if err := c.profiles.RecordResult(ctx, p.Username, won); err != nil {
			c.logger.Error("failed to record game outcome",
				slog.String("room_id", string(r.ID)),
				slog.String("username", p.Username),
				slog.String("error", err.Error()),
			)
		}
	}

	c.logger.Info("game finished",
		slog.String("room_id", string(r.ID)),
		slog.String("word", g.Word),
		slog.Bool("guessers_won", guessersWon),
	)
}

// Winner returns the id of the highest-scoring player, ties broken by
// roster order.
func (c *Controller) Winner(r *model.Room) model.PlayerID {
	g := r.Game
	if g == nil || len(r.Players) == 0 {
		return ""
	}
	winner := r.Players[0].ID
	best := g.Scores[winner]
	for _, p := range r.Players[1:] {
		if g.Scores[p.ID] > best {
			winner = p.ID
			best = g.Scores[p.ID]
		}
	}
	return winner
}

// Abort cancels an unfinished game and returns the room to waiting.
// Used when a coin-flip representative or the word setter disconnects
// before play opens.
func (c *Controller) Abort(r *model.Room) error {
	if r.Game == nil || r.Game.Phase == model.PhaseFinished {
		return model.ErrNoGameInProgress
	}
	r.Game = nil
	r.Status = model.RoomStatusWaiting
	r.UpdatedAt = c.clock.Now()
	c.chat.Clear(r.ID)
	return nil
}

// Reset clears a finished game so the room can accept players again.
func (c *Controller) Reset(r *model.Room) {
	r.Game = nil
	r.Status = model.RoomStatusWaiting
	r.UpdatedAt = c.clock.Now()
}

// RequestHint validates a guesser's hint request; the router forwards
// it to the word setter only. A request by itself consumes no budget.
func (c *Controller) RequestHint(r *model.Room, playerID model.PlayerID, question string) error {
	g := r.Game
	if g == nil || g.Phase != model.PhasePlaying || !g.IsCustomWord {
		return model.ErrWrongPhase
	}
	if !c.rooms.CanPlayerGuess(r, playerID) {
		return model.ErrTeamExcluded
	}
	if g.HintsRemaining <= 0 {
		return model.ErrNoHintsLeft
	}

	g.LastHintRequester = playerID
	g.LastQuestion = question
	r.UpdatedAt = c.clock.Now()

	return nil
}

// ProvideHint records the host's answer and consumes one hint. It
// returns the ledger entry and its 1-based sequence number.
//
// Answering is gated on the host rather than the word setter, even
// though the request was forwarded to the setter. Kept as is; in most
// rooms the setter question lands with the host via out-of-band chat.
func (c *Controller) ProvideHint(r *model.Room, playerID model.PlayerID, answer string) (model.Hint, int, error) {
	g := r.Game
	if g == nil || g.Phase != model.PhasePlaying || !g.IsCustomWord {
		return model.Hint{}, 0, model.ErrWrongPhase
	}
	if playerID != r.HostID {
		return model.Hint{}, 0, model.ErrNotHost
	}

	hint := model.Hint{Question: g.LastQuestion, Answer: answer}
	g.Hints = append(g.Hints, hint)
	if g.HintsRemaining > 0 {
		g.HintsRemaining--
	}
	g.LastHintRequester = ""
	g.LastQuestion = ""
	r.UpdatedAt = c.clock.Now()

	return hint, len(g.Hints), nil
}

// DismissHint drops the pending request without consuming a hint and
// returns the requester to notify.
func (c *Controller) DismissHint(r *model.Room, playerID model.PlayerID) (model.PlayerID, error) {
	g := r.Game
	if g == nil || !g.IsCustomWord {
		return "", model.ErrWrongPhase
	}
	if playerID != r.HostID {
		return "", model.ErrNotHost
	}

	requester := g.LastHintRequester
	g.LastHintRequester = ""
	g.LastQuestion = ""
	r.UpdatedAt = c.clock.Now()

	return requester, nil
}
