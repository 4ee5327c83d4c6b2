package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/wordparty/wordparty/internal/dependencies/mocks"
	"github.com/wordparty/wordparty/internal/model"
	"github.com/wordparty/wordparty/internal/services/chat"
	"github.com/wordparty/wordparty/internal/services/game"
	"github.com/wordparty/wordparty/internal/services/profile"
	"github.com/wordparty/wordparty/internal/services/registry"
	"github.com/wordparty/wordparty/internal/services/room"
	"github.com/wordparty/wordparty/internal/services/session"
	"github.com/wordparty/wordparty/internal/services/words"
	"github.com/wordparty/wordparty/internal/storage/memory"
	"github.com/wordparty/wordparty/internal/testutil"
)

// sentEvent is one recorded outbound delivery. Target "*" marks a
// broadcast.
type sentEvent struct {
	to      model.PlayerID
	event   model.EventType
	payload any
}

// recordingSender captures outbound traffic instead of writing to
// sockets.
type recordingSender struct {
	events []sentEvent
}

var _ Sender = (*recordingSender)(nil)

func (s *recordingSender) Send(id model.PlayerID, event model.EventType, payload any) {
	s.events = append(s.events, sentEvent{to: id, event: event, payload: payload})
}

func (s *recordingSender) SendMany(ids []model.PlayerID, event model.EventType, payload any) {
	for _, id := range ids {
		s.events = append(s.events, sentEvent{to: id, event: event, payload: payload})
	}
}

func (s *recordingSender) Broadcast(event model.EventType, payload any) {
	s.events = append(s.events, sentEvent{to: "*", event: event, payload: payload})
}

func (s *recordingSender) reset() {
	s.events = nil
}

// lastTo returns the most recent event of the given type delivered to
// the given target, or nil.
func (s *recordingSender) lastTo(id model.PlayerID, event model.EventType) *sentEvent {
	for i := len(s.events) - 1; i >= 0; i-- {
		if s.events[i].to == id && s.events[i].event == event {
			return &s.events[i]
		}
	}
	return nil
}

// countTo returns the number of events of the given type delivered to
// the given target.
func (s *recordingSender) countTo(id model.PlayerID, event model.EventType) int {
	n := 0
	for _, e := range s.events {
		if e.to == id && e.event == event {
			n++
		}
	}
	return n
}

type RouterSuite struct {
	suite.Suite
	clock    *mocks.MockClock
	random   *mocks.MockRandom
	storage  *memory.Storage
	sessions *session.Directory
	registry *registry.Registry
	profiles *profile.Service
	sender   *recordingSender
	router   *Router
	ctx      context.Context
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.storage = memory.New()
	s.sessions = session.NewDirectory()
	s.sender = &recordingSender{}
	logger := testutil.NopLogger()

	s.registry = registry.NewRegistry(s.clock, s.sessions, logger)
	rooms := room.NewController(s.registry, s.clock, logger)
	s.profiles = profile.New(s.storage, s.clock, logger)
	chatRelay := chat.NewRelay()
	wordService := words.NewWithDictionaries(map[model.Difficulty][]words.Entry{
		model.DifficultyEasy:   {{Word: "CAT", Hint: "A small pet"}},
		model.DifficultyMedium: {{Word: "GUITAR", Hint: "An instrument"}},
	}, s.random)
	games := game.NewController(wordService, rooms, s.profiles, chatRelay, s.clock, s.random, logger)

	s.router = NewRouter(s.sender, s.sessions, s.registry, rooms, games, s.profiles, chatRelay, s.clock, "admin-secret", logger)
	s.ctx = context.Background()
}

// drain runs every queued command on the test goroutine, standing in
// for the Run loop.
func (s *RouterSuite) drain() {
	for {
		select {
		case fn := <-s.router.commands:
			fn()
		default:
			return
		}
	}
}

// fireTimers fires pending clock timers and drains the continuations
// they enqueue, repeating until the sequence settles.
func (s *RouterSuite) fireTimers() {
	for s.clock.PendingTimers() > 0 {
		s.clock.FireAll()
		s.drain()
	}
}

// send pushes one client event through the router.
func (s *RouterSuite) send(connID model.PlayerID, event model.EventType, payload any) {
	var raw []byte
	if payload != nil {
		var err error
		raw, err = json.Marshal(payload)
		s.Require().NoError(err)
	}
	env, err := json.Marshal(model.Envelope{Type: event, Payload: raw})
	s.Require().NoError(err)
	s.router.HandleMessage(connID, env)
	s.drain()
}

func (s *RouterSuite) authenticate(connID model.PlayerID, username string) {
	s.send(connID, model.EventAuthenticate, model.AuthenticatePayload{Username: username})
	s.Require().NotNil(s.sessions.Get(connID), "authentication should create a session")
}

// createAndFill creates a room and joins the given connections, which
// must already be authenticated. Returns the room.
func (s *RouterSuite) createAndFill(mode model.RoomMode, difficulty model.Difficulty, hintCount int, conns ...model.PlayerID) *model.Room {
	s.send(conns[0], model.EventCreateRoom, model.CreateRoomPayload{
		Name:       "Test",
		Mode:       mode,
		Difficulty: difficulty,
		HintCount:  hintCount,
	})
	created := s.sender.lastTo(conns[0], model.EventRoomCreated)
	s.Require().NotNil(created)
	roomID := created.payload.(model.RoomCreatedPayload).Room.ID

	for _, c := range conns {
		s.send(c, model.EventJoinRoom, model.JoinRoomPayload{RoomID: roomID})
	}
	target, err := s.registry.Get(roomID)
	s.Require().NoError(err)
	s.Require().Len(target.Players, len(conns))
	return target
}

// Authentication tests

func (s *RouterSuite) TestAuthenticateCreatesSessionAndProfile() {
	s.authenticate("c1", "alice")

	last := s.sender.lastTo("c1", model.EventAuthenticated)
	s.Require().NotNil(last)
	s.Equal("alice", last.payload.(model.AuthenticatedPayload).Username)
	s.False(last.payload.(model.AuthenticatedPayload).IsAdmin)

	// Room list sync and presence broadcast follow
	s.NotNil(s.sender.lastTo("c1", model.EventRoomList))
	count := s.sender.lastTo("*", model.EventOnlineCount)
	s.Require().NotNil(count)
	s.Equal(1, count.payload.(model.OnlineCountPayload).Count)

	p, err := s.profiles.Get(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(0, p.GamesPlayed)
}

func (s *RouterSuite) TestAuthenticateWithAdminKey() {
	s.send("c1", model.EventAuthenticate, model.AuthenticatePayload{Username: "op", AdminKey: "admin-secret"})

	last := s.sender.lastTo("c1", model.EventAuthenticated)
	s.Require().NotNil(last)
	s.True(last.payload.(model.AuthenticatedPayload).IsAdmin)
}

func (s *RouterSuite) TestAuthenticateRejectsBannedUser() {
	_, err := s.profiles.Touch(s.ctx, "mallory", "")
	s.Require().NoError(err)
	s.Require().NoError(s.profiles.SetBanned(s.ctx, "mallory", true))

	s.send("c1", model.EventAuthenticate, model.AuthenticatePayload{Username: "mallory"})

	errEvt := s.sender.lastTo("c1", model.EventError)
	s.Require().NotNil(errEvt)
	s.Equal(CodeBanned, errEvt.payload.(model.ErrorPayload).Code)
	s.Nil(s.sessions.Get("c1"))
}

func (s *RouterSuite) TestAuthenticateRejectedDuringMaintenance() {
	s.Require().NoError(s.profiles.SetMaintenanceMode(s.ctx, true))

	s.send("c1", model.EventAuthenticate, model.AuthenticatePayload{Username: "alice"})
	errEvt := s.sender.lastTo("c1", model.EventError)
	s.Require().NotNil(errEvt)
	s.Equal(CodeMaintenanceMode, errEvt.payload.(model.ErrorPayload).Code)

	// Admins bypass the gate
	s.send("c2", model.EventAuthenticate, model.AuthenticatePayload{Username: "op", AdminKey: "admin-secret"})
	s.NotNil(s.sender.lastTo("c2", model.EventAuthenticated))
}

func (s *RouterSuite) TestUnauthenticatedEventsAreRejected() {
	s.send("c1", model.EventCreateRoom, model.CreateRoomPayload{Name: "X", Mode: model.Mode1v1})

	errEvt := s.sender.lastTo("c1", model.EventError)
	s.Require().NotNil(errEvt)
	s.Equal(CodeNotAuthenticated, errEvt.payload.(model.ErrorPayload).Code)
}

// Room flow tests

func (s *RouterSuite) TestJoinRoomSyncsRosterToEveryone() {
	s.authenticate("c1", "alice")
	s.authenticate("c2", "bob")
	target := s.createAndFill(model.Mode1v1, model.DifficultyEasy, 0, "c1", "c2")

	joined := s.sender.lastTo("c2", model.EventJoinedRoom)
	s.Require().NotNil(joined)
	s.Equal(target.ID, joined.payload.(model.JoinedRoomPayload).Room.ID)
	s.Len(joined.payload.(model.JoinedRoomPayload).Players, 2)
	s.Equal(model.PlayerID("c1"), joined.payload.(model.JoinedRoomPayload).HostID)

	// The earlier member sees the join
	evt := s.sender.lastTo("c1", model.EventPlayerJoined)
	s.Require().NotNil(evt)
	s.Equal(model.PlayerID("c2"), evt.payload.(model.PlayerJoinedPayload).Player.ID)
}

func (s *RouterSuite) TestJoinRoomWrongPassword() {
	s.authenticate("c1", "alice")
	s.send("c1", model.EventCreateRoom, model.CreateRoomPayload{
		Name: "Locked", Mode: model.Mode1v1, Password: "secret", Difficulty: model.DifficultyEasy,
	})
	roomID := s.sender.lastTo("c1", model.EventRoomCreated).payload.(model.RoomCreatedPayload).Room.ID

	s.send("c1", model.EventJoinRoom, model.JoinRoomPayload{RoomID: roomID, Password: "nope"})

	errEvt := s.sender.lastTo("c1", model.EventError)
	s.Require().NotNil(errEvt)
	s.Equal(CodeWrongPassword, errEvt.payload.(model.ErrorPayload).Code)
}

func (s *RouterSuite) TestLeaveRoomMigratesHost() {
	s.authenticate("c1", "alice")
	s.authenticate("c2", "bob")
	s.authenticate("c3", "carol")
	s.createAndFill(model.Mode2v2, model.DifficultyEasy, 0, "c1", "c2", "c3")

	s.send("c1", model.EventLeaveRoom, nil)

	left := s.sender.lastTo("c2", model.EventPlayerLeft)
	s.Require().NotNil(left)
	s.Equal("alice", left.payload.(model.PlayerLeftPayload).Username)

	hostEvt := s.sender.lastTo("c2", model.EventHostChanged)
	s.Require().NotNil(hostEvt)
	s.Equal(model.PlayerID("c2"), hostEvt.payload.(model.HostChangedPayload).NewHostID)
}

func (s *RouterSuite) TestLastLeaveDeletesRoom() {
	s.authenticate("c1", "alice")
	target := s.createAndFill(model.ModeSolo, model.DifficultyEasy, 0, "c1")

	s.send("c1", model.EventLeaveRoom, nil)

	_, err := s.registry.Get(target.ID)
	s.ErrorIs(err, model.ErrRoomNotFound)
	listing := s.sender.lastTo("*", model.EventRoomList)
	s.Require().NotNil(listing)
	s.Empty(listing.payload.(model.RoomListPayload).Rooms)
}

func (s *RouterSuite) TestChatMessageReachesRoomAndHistory() {
	s.authenticate("c1", "alice")
	s.authenticate("c2", "bob")
	target := s.createAndFill(model.Mode1v1, model.DifficultyEasy, 0, "c1", "c2")

	s.send("c1", model.EventChatMessage, model.ChatMessagePayload{RoomID: target.ID, Message: "hi"})

	msg := s.sender.lastTo("c2", model.EventChatMessage)
	s.Require().NotNil(msg)
	s.Equal("hi", msg.payload.(model.ChatBroadcastPayload).Message)
	s.Equal("alice", msg.payload.(model.ChatBroadcastPayload).Username)

	// Next joiner gets the backlog
	s.send("c2", model.EventLeaveRoom, nil)
	s.send("c2", model.EventJoinRoom, model.JoinRoomPayload{RoomID: target.ID})
	history := s.sender.lastTo("c2", model.EventChatHistory)
	s.Require().NotNil(history)
	s.Len(history.payload.(model.ChatHistoryPayload).Messages, 1)
}

// Scenario A: built-in 1v1 game, clean win.

func (s *RouterSuite) TestScenarioBuiltinGameCleanWin() {
	s.authenticate("c1", "alice")
	s.authenticate("c2", "bob")
	target := s.createAndFill(model.Mode1v1, model.DifficultyEasy, 0, "c1", "c2")

	s.random.QueueIntn(0) // draw CAT
	s.send("c1", model.EventStartGame, model.StartGamePayload{RoomID: target.ID})

	started := s.sender.lastTo("c2", model.EventGameStarted)
	s.Require().NotNil(started)
	s.Equal("___", started.payload.(model.GameStartedPayload).MaskedWord)
	s.Equal("A small pet", started.payload.(model.GameStartedPayload).WordHint)
	s.Equal(model.PlayerID("c1"), started.payload.(model.GameStartedPayload).CurrentTurnID)

	// Turn alternates c1, c2, c1
	s.send("c1", model.EventMakeGuess, model.MakeGuessPayload{RoomID: target.ID, Letter: "C"})
	s.send("c2", model.EventMakeGuess, model.MakeGuessPayload{RoomID: target.ID, Letter: "A"})
	s.send("c1", model.EventMakeGuess, model.MakeGuessPayload{RoomID: target.ID, Letter: "T"})

	ended := s.sender.lastTo("c2", model.EventGameEnded)
	s.Require().NotNil(ended)
	s.True(ended.payload.(model.GameEndedPayload).IsWin)
	s.Equal("CAT", ended.payload.(model.GameEndedPayload).Word)
	s.Equal(20, ended.payload.(model.GameEndedPayload).Scores["c1"])
	s.Equal(10, ended.payload.(model.GameEndedPayload).Scores["c2"])
	s.Equal(model.PlayerID("c1"), ended.payload.(model.GameEndedPayload).WinnerID)

	// Room is reusable afterwards
	s.Equal(model.RoomStatusWaiting, target.Status)
}

// Scenario B: 2v2 custom game with coin flip and hints.

func (s *RouterSuite) TestScenarioCustomGameCoinFlipAndHints() {
	for i, name := range []string{"alice", "bob", "carol", "dave"} {
		s.authenticate(model.PlayerID([]string{"c1", "c2", "c3", "c4"}[i]), name)
	}
	target := s.createAndFill(model.Mode2v2, model.DifficultyCustom, 5, "c1", "c2", "c3", "c4")

	// Auto-split: c1,c3 team1; c2,c4 team2
	s.Equal(model.Team1, target.GetPlayer("c1").Team)
	s.Equal(model.Team2, target.GetPlayer("c2").Team)

	s.send("c1", model.EventStartGame, model.StartGamePayload{RoomID: target.ID})
	phase := s.sender.lastTo("c4", model.EventCoinFlipPhase)
	s.Require().NotNil(phase)
	s.Equal(model.PlayerID("c1"), phase.payload.(model.CoinFlipPhasePayload).Player1ID)
	s.Equal(model.PlayerID("c2"), phase.payload.(model.CoinFlipPhasePayload).Player2ID)

	// c1 picks heads; the draw lands heads, so team1 sets the word
	s.send("c1", model.EventSelectCoinSide, model.SelectCoinSidePayload{RoomID: target.ID, Side: model.SideHeads})
	selected := s.sender.lastTo("c3", model.EventCoinSideSelected)
	s.Require().NotNil(selected)
	s.Equal(model.SideTails, selected.payload.(model.CoinSideSelectedPayload).Player2Choice)

	s.random.QueueIntn(0)
	s.fireTimers()

	result := s.sender.lastTo("c2", model.EventCoinFlipResult)
	s.Require().NotNil(result)
	s.Equal(model.SideHeads, result.payload.(model.CoinFlipResultPayload).Result)
	s.Equal(model.PlayerID("c1"), result.payload.(model.CoinFlipResultPayload).WinnerID)

	wordPhase := s.sender.lastTo("c1", model.EventWordSelectionPhase)
	s.Require().NotNil(wordPhase)
	s.Equal(model.PlayerID("c1"), wordPhase.payload.(model.WordSelectionPhasePayload).WordSetterID)

	s.send("c1", model.EventSubmitCustomWord, model.SubmitCustomWordPayload{RoomID: target.ID, Word: "elephant"})
	started := s.sender.lastTo("c2", model.EventGameStarted)
	s.Require().NotNil(started)
	s.Equal("________", started.payload.(model.GameStartedPayload).MaskedWord)
	s.Equal(8, started.payload.(model.GameStartedPayload).WordLength)
	s.Equal(5, started.payload.(model.GameStartedPayload).HintsRemaining)

	// Opening turn is never on the word-setter's team
	s.Equal(model.PlayerID("c2"), started.payload.(model.GameStartedPayload).CurrentTurnID)

	// Hint round trip: request lands only with the setter
	s.sender.reset()
	s.send("c2", model.EventRequestHint, model.RequestHintPayload{RoomID: target.ID, Question: "is it big?"})
	req := s.sender.lastTo("c1", model.EventHintRequested)
	s.Require().NotNil(req)
	s.Equal("is it big?", req.payload.(model.HintRequestedPayload).Question)
	s.Equal(0, s.sender.countTo("c3", model.EventHintRequested))
	s.Equal(0, s.sender.countTo("c4", model.EventHintRequested))

	// Host answers; hint #1 goes to the whole room, budget drops to 4
	s.send("c1", model.EventProvideHint, model.ProvideHintPayload{RoomID: target.ID, Hint: "very big"})
	provided := s.sender.lastTo("c4", model.EventHintProvided)
	s.Require().NotNil(provided)
	s.Equal(1, provided.payload.(model.HintProvidedPayload).Number)
	s.Equal(4, provided.payload.(model.HintProvidedPayload).HintsRemaining)
}

// Scenario C: out-of-turn guess leaves state untouched.

func (s *RouterSuite) TestScenarioOutOfTurnGuessIsRejected() {
	s.authenticate("c1", "alice")
	s.authenticate("c2", "bob")
	target := s.createAndFill(model.Mode1v1, model.DifficultyEasy, 0, "c1", "c2")
	s.random.QueueIntn(0)
	s.send("c1", model.EventStartGame, model.StartGamePayload{RoomID: target.ID})

	s.send("c2", model.EventMakeGuess, model.MakeGuessPayload{RoomID: target.ID, Letter: "C"})

	errEvt := s.sender.lastTo("c2", model.EventError)
	s.Require().NotNil(errEvt)
	s.Equal(CodeNotYourTurn, errEvt.payload.(model.ErrorPayload).Code)

	g := target.Game
	s.Empty(g.GuessedLetters)
	s.Empty(g.WrongLetters)
	s.Equal(0, g.CurrentTurn)
}

// Scenario D: exactly six wrong guesses lose the game.

func (s *RouterSuite) TestScenarioSixWrongGuessesLose() {
	s.authenticate("c1", "alice")
	s.authenticate("c2", "bob")
	target := s.createAndFill(model.Mode1v1, model.DifficultyEasy, 0, "c1", "c2")
	s.random.QueueIntn(0) // CAT
	s.send("c1", model.EventStartGame, model.StartGamePayload{RoomID: target.ID})

	conns := []model.PlayerID{"c1", "c2"}
	for i, letter := range []string{"X", "Y", "Z", "Q", "W"} {
		s.send(conns[i%2], model.EventMakeGuess, model.MakeGuessPayload{RoomID: target.ID, Letter: letter})
		s.Nil(s.sender.lastTo("c1", model.EventGameEnded), "game must not end before the sixth wrong guess")
	}

	s.send(conns[5%2], model.EventMakeGuess, model.MakeGuessPayload{RoomID: target.ID, Letter: "V"})

	ended := s.sender.lastTo("c1", model.EventGameEnded)
	s.Require().NotNil(ended)
	s.False(ended.payload.(model.GameEndedPayload).IsWin)
	s.Equal("CAT", ended.payload.(model.GameEndedPayload).Word)

	// Loss lands on both guessers' stats
	p, err := s.profiles.Get(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(1, p.Losses)
}

// Disconnect handling

func (s *RouterSuite) TestDisconnectDuringCoinFlipAbortsGame() {
	s.authenticate("c1", "alice")
	s.authenticate("c2", "bob")
	target := s.createAndFill(model.Mode1v1, model.DifficultyCustom, 5, "c1", "c2")
	s.send("c1", model.EventStartGame, model.StartGamePayload{RoomID: target.ID})
	s.send("c1", model.EventSelectCoinSide, model.SelectCoinSidePayload{RoomID: target.ID, Side: model.SideHeads})
	s.Require().Equal(1, s.clock.PendingTimers())

	s.router.Disconnect("c2")
	s.drain()

	aborted := s.sender.lastTo("c1", model.EventGameAborted)
	s.Require().NotNil(aborted)
	s.Nil(target.Game)
	s.Equal(model.RoomStatusWaiting, target.Status)
	s.Equal(0, s.clock.PendingTimers(), "pending coin-flip timers must be cancelled")
}

func (s *RouterSuite) TestDisconnectMidPlayKeepsGameRunning() {
	for i, name := range []string{"alice", "bob", "carol", "dave"} {
		s.authenticate(model.PlayerID([]string{"c1", "c2", "c3", "c4"}[i]), name)
	}
	target := s.createAndFill(model.Mode2v2, model.DifficultyEasy, 0, "c1", "c2", "c3", "c4")
	s.random.QueueIntn(0)
	s.send("c1", model.EventStartGame, model.StartGamePayload{RoomID: target.ID})

	s.router.Disconnect("c3")
	s.drain()

	s.Require().NotNil(target.Game)
	s.Equal(model.PhasePlaying, target.Game.Phase)
	s.Len(target.Players, 3)
	s.Nil(s.sender.lastTo("c1", model.EventGameAborted))
}

func (s *RouterSuite) TestDisconnectUpdatesOnlineCount() {
	s.authenticate("c1", "alice")
	s.authenticate("c2", "bob")
	s.sender.reset()

	s.router.Disconnect("c1")
	s.drain()

	count := s.sender.lastTo("*", model.EventOnlineCount)
	s.Require().NotNil(count)
	s.Equal(1, count.payload.(model.OnlineCountPayload).Count)
}

// Admin surface

func (s *RouterSuite) TestDeleteRoomEjectsMembers() {
	s.authenticate("c1", "alice")
	s.authenticate("c2", "bob")
	target := s.createAndFill(model.Mode1v1, model.DifficultyEasy, 0, "c1", "c2")

	s.Require().NoError(s.router.deleteRoom("Test"))

	_, err := s.registry.Get(target.ID)
	s.ErrorIs(err, model.ErrRoomNotFound)
	s.NotNil(s.sender.lastTo("c1", model.EventGameAborted))
	s.NotNil(s.sender.lastTo("c2", model.EventGameAborted))
	s.Empty(s.sessions.Get("c1").RoomID)
}

func (s *RouterSuite) TestMalformedEventYieldsError() {
	s.router.HandleMessage("c1", []byte("{not json"))
	s.drain()

	errEvt := s.sender.lastTo("c1", model.EventError)
	s.Require().NotNil(errEvt)
	s.Equal(CodeInvalidRequest, errEvt.payload.(model.ErrorPayload).Code)
}
