package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/wordparty/wordparty/internal/dependencies/clock"
	"github.com/wordparty/wordparty/internal/model"
	"github.com/wordparty/wordparty/internal/services/chat"
	"github.com/wordparty/wordparty/internal/services/game"
	"github.com/wordparty/wordparty/internal/services/profile"
	"github.com/wordparty/wordparty/internal/services/registry"
	"github.com/wordparty/wordparty/internal/services/room"
	"github.com/wordparty/wordparty/internal/services/session"
)

const (
	// Delay between both coin sides being locked in and the draw.
	coinSettleDelay = 3 * time.Second
	// Delay between the draw being revealed and word selection opening.
	coinRevealDelay = 2 * time.Second

	commandBufferSize = 512
)

// Router is the single owner of all room and game state. Every inbound
// event, connection change, timer continuation and admin operation is
// funneled through one command channel and executed serially on the
// Run goroutine, so handlers never race each other.
type Router struct {
	sender   Sender
	sessions *session.Directory
	registry *registry.Registry
	rooms    *room.Controller
	games    *game.Controller
	profiles *profile.Service
	chat     *chat.Relay
	clock    clock.Clock
	logger   *slog.Logger

	adminKey string

	// Pending coin-flip timers per room, cancelled on abort/teardown.
	// Touched only on the Run goroutine.
	timers map[model.RoomID][]clock.Timer

	commands chan func()
	done     chan struct{}
}

// NewRouter creates an event router. adminKey may be empty, in which
// case no connection can authenticate as admin.
func NewRouter(
	sender Sender,
	sessions *session.Directory,
	reg *registry.Registry,
	rooms *room.Controller,
	games *game.Controller,
	profiles *profile.Service,
	chatRelay *chat.Relay,
	clk clock.Clock,
	adminKey string,
	logger *slog.Logger,
) *Router {
	return &Router{
		sender:   sender,
		sessions: sessions,
		registry: reg,
		rooms:    rooms,
		games:    games,
		profiles: profiles,
		chat:     chatRelay,
		clock:    clk,
		logger:   logger.With(slog.String("component", "router")),
		adminKey: adminKey,
		timers:   make(map[model.RoomID][]clock.Timer),
		commands: make(chan func(), commandBufferSize),
		done:     make(chan struct{}),
	}
}

// Run consumes the command queue until Close is called.
func (r *Router) Run() {
	r.logger.Info("event router started")
	for {
		select {
		case fn := <-r.commands:
			fn()
		case <-r.done:
			r.logger.Info("event router stopped")
			return
		}
	}
}

// Close stops the Run loop.
func (r *Router) Close() {
	close(r.done)
}

// post enqueues a command for the Run goroutine. Commands are dropped
// once the queue is full; a full queue means the process is unhealthy
// anyway.
func (r *Router) post(fn func()) {
	select {
	case r.commands <- fn:
	default:
		r.logger.Error("command queue full, dropping command")
	}
}

// exec runs fn on the Run goroutine and waits for it. Used by the
// HTTP surface so listing and admin operations see consistent state.
func (r *Router) exec(fn func()) {
	doneCh := make(chan struct{})
	r.post(func() {
		defer close(doneCh)
		fn()
	})
	select {
	case <-doneCh:
	case <-r.done:
	}
}

// HandleMessage enqueues one decoded client event. Called from read
// pumps.
func (r *Router) HandleMessage(connID model.PlayerID, raw []byte) {
	var env model.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		r.post(func() {
			r.sender.Send(connID, model.EventError,
				model.ErrorPayload{Code: CodeInvalidRequest, Message: "malformed event"})
		})
		return
	}
	r.post(func() {
		r.dispatch(connID, env)
	})
}

// Disconnect enqueues connection teardown. Called from read pumps.
func (r *Router) Disconnect(connID model.PlayerID) {
	r.post(func() {
		r.handleDisconnect(connID)
	})
}

// Connected enqueues the initial sync for a fresh connection.
func (r *Router) Connected(connID model.PlayerID) {
	r.post(func() {
		r.sender.Send(connID, model.EventRoomList, model.RoomListPayload{Rooms: r.registry.List()})
	})
}

// ListRooms returns the current room listing, serialized through the
// command queue.
func (r *Router) ListRooms() []model.RoomSummary {
	var rooms []model.RoomSummary
	r.exec(func() {
		rooms = r.registry.List()
	})
	return rooms
}

// OnlineCount returns the number of authenticated connections.
func (r *Router) OnlineCount() int {
	return r.sessions.Count()
}

// DeleteRoom force-deletes a room by id or name, ejecting its members.
// Admin surface.
func (r *Router) DeleteRoom(idOrName string) error {
	var err error
	r.exec(func() {
		err = r.deleteRoom(idOrName)
	})
	return err
}

func (r *Router) deleteRoom(idOrName string) error {
	target, err := r.registry.Find(idOrName)
	if err != nil {
		return err
	}
	members := r.memberIDs(target)
	r.cancelTimers(target.ID)
	if err := r.registry.Delete(target.ID); err != nil {
		return err
	}
	r.chat.Clear(target.ID)
	r.sender.SendMany(members, model.EventGameAborted,
		model.GameAbortedPayload{Reason: "room closed by an administrator"})
	r.broadcastRoomList()
	return nil
}

// dispatch routes one event to its handler. Everything except
// authenticate requires a session.
func (r *Router) dispatch(connID model.PlayerID, env model.Envelope) {
	if env.Type == model.EventAuthenticate {
		r.handleAuthenticate(connID, env.Payload)
		return
	}

	sess := r.sessions.Get(connID)
	if sess == nil {
		r.sendError(connID, model.ErrNotAuthenticated)
		return
	}

	var err error
	switch env.Type {
	case model.EventCreateRoom:
		err = r.handleCreateRoom(sess, env.Payload)
	case model.EventJoinRoom:
		err = r.handleJoinRoom(sess, env.Payload)
	case model.EventLeaveRoom:
		err = r.handleLeaveRoom(sess)
	case model.EventChangeTeam:
		err = r.handleChangeTeam(sess, env.Payload)
	case model.EventStartGame:
		err = r.handleStartGame(sess)
	case model.EventSelectCoinSide:
		err = r.handleSelectCoinSide(sess, env.Payload)
	case model.EventSubmitCustomWord:
		err = r.handleSubmitCustomWord(sess, env.Payload)
	case model.EventRequestHint:
		err = r.handleRequestHint(sess, env.Payload)
	case model.EventProvideHint:
		err = r.handleProvideHint(sess, env.Payload)
	case model.EventDismissHint:
		err = r.handleDismissHint(sess)
	case model.EventMakeGuess:
		err = r.handleMakeGuess(sess, env.Payload)
	case model.EventChatMessage:
		err = r.handleChatMessage(sess, env.Payload)
	default:
		r.sender.Send(connID, model.EventError,
			model.ErrorPayload{Code: CodeInvalidRequest, Message: "unknown event type"})
		return
	}
	if err != nil {
		r.sendError(connID, err)
	}
}

func (r *Router) sendError(connID model.PlayerID, err error) {
	r.sender.Send(connID, model.EventError, errorPayload(err))
}

// handleAuthenticate binds an identity to the connection, gated on the
// maintenance flag and the ban list. Admin access requires the shared
// admin key.
func (r *Router) handleAuthenticate(connID model.PlayerID, raw json.RawMessage) {
	var p model.AuthenticatePayload
	if err := json.Unmarshal(raw, &p); err != nil || strings.TrimSpace(p.Username) == "" {
		r.sender.Send(connID, model.EventError,
			model.ErrorPayload{Code: CodeInvalidRequest, Message: "username is required"})
		return
	}

	ctx := context.Background()
	isAdmin := r.adminKey != "" && p.AdminKey == r.adminKey

	if !isAdmin {
		maintenance, err := r.profiles.MaintenanceMode(ctx)
		if err != nil {
			r.sendError(connID, err)
			return
		}
		if maintenance {
			r.sendError(connID, model.ErrMaintenanceMode)
			return
		}
	}

	banned, err := r.profiles.IsBanned(ctx, p.Username)
	if err != nil {
		r.sendError(connID, err)
		return
	}
	if banned {
		r.sendError(connID, model.ErrBanned)
		return
	}

	if _, err := r.profiles.Touch(ctx, p.Username, p.Avatar); err != nil {
		r.sendError(connID, err)
		return
	}

	r.sessions.Add(&session.Session{
		PlayerID:    connID,
		Username:    p.Username,
		Avatar:      p.Avatar,
		IsAdmin:     isAdmin,
		ConnectedAt: r.clock.Now(),
	})

	r.sender.Send(connID, model.EventAuthenticated, model.AuthenticatedPayload{
		PlayerID: connID,
		Username: p.Username,
		IsAdmin:  isAdmin,
	})
	r.sender.Send(connID, model.EventRoomList, model.RoomListPayload{Rooms: r.registry.List()})
	r.broadcastOnlineCount()

	r.logger.Info("connection authenticated",
		slog.String("conn_id", string(connID)),
		slog.String("username", p.Username),
		slog.Bool("is_admin", isAdmin))
}

func (r *Router) handleCreateRoom(sess *session.Session, raw json.RawMessage) error {
	var p model.CreateRoomPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return model.ErrInvalidRoomMode
	}

	created, err := r.registry.Create(p.Name, p.Mode, p.Password, p.Difficulty, p.HintCount)
	if err != nil {
		return err
	}

	r.sender.Send(sess.PlayerID, model.EventRoomCreated, model.RoomCreatedPayload{Room: created.Summary()})
	r.broadcastRoomList()
	return nil
}

func (r *Router) handleJoinRoom(sess *session.Session, raw json.RawMessage) error {
	var p model.JoinRoomPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return model.ErrRoomNotFound
	}
	if sess.RoomID != "" {
		return model.ErrAlreadyInRoom
	}

	banned, err := r.profiles.IsBanned(context.Background(), sess.Username)
	if err != nil {
		return err
	}
	if banned {
		return model.ErrBanned
	}

	target, err := r.registry.Get(p.RoomID)
	if err != nil {
		return err
	}

	player := model.Player{
		ID:       sess.PlayerID,
		Username: sess.Username,
		Avatar:   sess.Avatar,
		IsAdmin:  sess.IsAdmin,
	}
	if err := r.rooms.Join(target, player, p.Password); err != nil {
		return err
	}
	r.sessions.BindRoom(sess.PlayerID, target.ID)

	joined := target.GetPlayer(sess.PlayerID)
	r.sender.Send(sess.PlayerID, model.EventJoinedRoom, model.JoinedRoomPayload{
		Room:    target.Summary(),
		Players: playerInfos(target),
		HostID:  target.HostID,
		You:     playerInfo(*joined),
	})
	r.sender.Send(sess.PlayerID, model.EventChatHistory,
		model.ChatHistoryPayload{Messages: r.chat.History(target.ID)})

	others := r.memberIDsExcept(target, sess.PlayerID)
	r.sender.SendMany(others, model.EventPlayerJoined, model.PlayerJoinedPayload{
		Player:  playerInfo(*joined),
		Players: playerInfos(target),
	})

	r.broadcastRoomList()
	return nil
}

func (r *Router) handleLeaveRoom(sess *session.Session) error {
	target, err := r.sessionRoom(sess)
	if err != nil {
		return err
	}
	r.removeFromRoom(target, sess.PlayerID, "player left")
	return nil
}

// removeFromRoom is the shared exit path for leaveRoom and
// disconnects: roster removal, host migration, abort of a game whose
// pending phase lost a required participant, and listing sync.
func (r *Router) removeFromRoom(target *model.Room, playerID model.PlayerID, reason string) {
	abortReason := r.abortReasonFor(target, playerID)

	result, err := r.rooms.Leave(target, playerID)
	if err != nil {
		r.logger.Error("failed to remove player from room",
			slog.String("room_id", string(target.ID)),
			slog.String("player_id", string(playerID)),
			slog.String("error", err.Error()))
		return
	}
	r.sessions.UnbindRoom(playerID)
	r.logger.Info("player removed from room",
		slog.String("room_id", string(target.ID)),
		slog.String("player_id", string(playerID)),
		slog.String("reason", reason))

	if result.RoomDeleted {
		r.cancelTimers(target.ID)
		r.chat.Clear(target.ID)
		r.broadcastRoomList()
		return
	}

	members := r.memberIDs(target)
	r.sender.SendMany(members, model.EventPlayerLeft, model.PlayerLeftPayload{
		PlayerID: playerID,
		Username: result.Removed.Username,
		Players:  playerInfos(target),
	})
	if result.NewHostID != "" {
		newHost := target.GetPlayer(result.NewHostID)
		r.sender.SendMany(members, model.EventHostChanged, model.HostChangedPayload{
			NewHostID: result.NewHostID,
			Username:  newHost.Username,
		})
	}

	if abortReason != "" {
		r.cancelTimers(target.ID)
		if err := r.games.Abort(target); err == nil {
			r.sender.SendMany(members, model.EventGameAborted,
				model.GameAbortedPayload{Reason: abortReason})
		}
	}

	r.broadcastRoomList()
}

// abortReasonFor reports whether losing this player strands a pending
// game phase: a coin-flip representative during coin_flip, or the word
// setter during word_selection.
func (r *Router) abortReasonFor(target *model.Room, playerID model.PlayerID) string {
	g := target.Game
	if g == nil {
		return ""
	}
	switch g.Phase {
	case model.PhaseCoinFlip:
		if g.CoinFlip != nil && g.CoinFlip.Representative(playerID) {
			return "a coin-flip representative left the game"
		}
	case model.PhaseWordSelection:
		if g.WordSetter == playerID {
			return "the word setter left the game"
		}
	}
	return ""
}

func (r *Router) handleChangeTeam(sess *session.Session, raw json.RawMessage) error {
	var p model.ChangeTeamPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return model.ErrInvalidTeam
	}
	target, err := r.sessionRoom(sess)
	if err != nil {
		return err
	}
	if err := r.rooms.ChangeTeam(target, sess.PlayerID, p.Team); err != nil {
		return err
	}
	r.sender.SendMany(r.memberIDs(target), model.EventTeamChanged, model.TeamChangedPayload{
		PlayerID: sess.PlayerID,
		Team:     p.Team,
		Players:  playerInfos(target),
	})
	return nil
}

func (r *Router) handleStartGame(sess *session.Session) error {
	target, err := r.sessionRoom(sess)
	if err != nil {
		return err
	}
	if err := r.games.Start(context.Background(), target, sess.PlayerID); err != nil {
		return err
	}

	members := r.memberIDs(target)
	g := target.Game
	if g.Phase == model.PhaseCoinFlip {
		r.sender.SendMany(members, model.EventCoinFlipPhase, model.CoinFlipPhasePayload{
			Player1ID: g.CoinFlip.Player1ID,
			Player2ID: g.CoinFlip.Player2ID,
		})
	} else {
		r.sender.SendMany(members, model.EventGameStarted, r.gameStartedPayload(target))
	}
	r.broadcastRoomList()
	return nil
}

func (r *Router) gameStartedPayload(target *model.Room) model.GameStartedPayload {
	g := target.Game
	p := model.GameStartedPayload{
		Phase:        g.Phase,
		Difficulty:   target.Difficulty,
		IsCustomWord: g.IsCustomWord,
		MaskedWord:   g.MaskedWord(),
		WordLength:   len(g.Word),
		WordHint:     g.WordHint,
	}
	if turn := r.rooms.CurrentTurnPlayer(target); turn != nil {
		p.CurrentTurnID = turn.ID
	}
	if g.IsCustomWord {
		p.HintsRemaining = g.HintsRemaining
	}
	return p
}

func (r *Router) handleSelectCoinSide(sess *session.Session, raw json.RawMessage) error {
	var p model.SelectCoinSidePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return model.ErrInvalidSide
	}
	target, err := r.sessionRoom(sess)
	if err != nil {
		return err
	}
	if err := r.games.ChooseSide(target, sess.PlayerID, p.Side); err != nil {
		return err
	}

	flip := target.Game.CoinFlip
	r.sender.SendMany(r.memberIDs(target), model.EventCoinSideSelected, model.CoinSideSelectedPayload{
		Player1ID:     flip.Player1ID,
		Player2ID:     flip.Player2ID,
		Player1Choice: flip.Player1Choice,
		Player2Choice: flip.Player2Choice,
	})

	// The first choice fixes both sides, so the draw can be scheduled
	// immediately.
	roomID := target.ID
	r.scheduleTimer(roomID, coinSettleDelay, func() {
		r.resolveCoinFlip(roomID)
	})
	return nil
}

// resolveCoinFlip is the settle-delay continuation: draw the coin,
// announce the winner and schedule the reveal delay.
func (r *Router) resolveCoinFlip(roomID model.RoomID) {
	target, err := r.registry.Get(roomID)
	if err != nil {
		return
	}
	flip, err := r.games.ResolveCoinFlip(target)
	if err != nil {
		return
	}
	r.sender.SendMany(r.memberIDs(target), model.EventCoinFlipResult, model.CoinFlipResultPayload{
		Result:     flip.Result,
		WinnerID:   flip.Winner,
		WinnerTeam: target.Game.WordSetterTeam,
	})

	r.scheduleTimer(roomID, coinRevealDelay, func() {
		r.openWordSelection(roomID)
	})
}

// openWordSelection is the reveal-delay continuation.
func (r *Router) openWordSelection(roomID model.RoomID) {
	target, err := r.registry.Get(roomID)
	if err != nil {
		return
	}
	if err := r.games.OpenWordSelection(target); err != nil {
		return
	}
	r.sender.SendMany(r.memberIDs(target), model.EventWordSelectionPhase, model.WordSelectionPhasePayload{
		WordSetterID:   target.Game.WordSetter,
		WordSetterTeam: target.Game.WordSetterTeam,
	})
}

func (r *Router) handleSubmitCustomWord(sess *session.Session, raw json.RawMessage) error {
	var p model.SubmitCustomWordPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return model.ErrInvalidWord
	}
	target, err := r.sessionRoom(sess)
	if err != nil {
		return err
	}
	if err := r.games.SubmitWord(target, sess.PlayerID, p.Word); err != nil {
		return err
	}

	members := r.memberIDs(target)
	r.sender.SendMany(members, model.EventWordAccepted, model.WordSelectionPhasePayload{
		WordSetterID:   target.Game.WordSetter,
		WordSetterTeam: target.Game.WordSetterTeam,
	})
	r.sender.SendMany(members, model.EventGameStarted, r.gameStartedPayload(target))
	return nil
}

func (r *Router) handleMakeGuess(sess *session.Session, raw json.RawMessage) error {
	var p model.MakeGuessPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return model.ErrInvalidLetter
	}
	target, err := r.sessionRoom(sess)
	if err != nil {
		return err
	}
	result, err := r.games.Guess(context.Background(), target, sess.PlayerID, p.Letter)
	if err != nil {
		return err
	}
	if result.Ignored {
		// Repeated letter: no state change, no event.
		return nil
	}

	g := target.Game
	members := r.memberIDs(target)
	guessPayload := model.GuessResultPayload{
		PlayerID:       sess.PlayerID,
		Letter:         result.Letter,
		Correct:        result.Correct,
		MaskedWord:     g.MaskedWord(),
		GuessedLetters: g.GuessedLetters,
		WrongLetters:   g.WrongLetters,
		Scores:         g.Scores,
	}
	if turn := r.rooms.CurrentTurnPlayer(target); turn != nil && !result.Over {
		guessPayload.NextTurnID = turn.ID
	}
	r.sender.SendMany(members, model.EventGuessResult, guessPayload)

	if result.Over {
		r.sender.SendMany(members, model.EventGameEnded, model.GameEndedPayload{
			IsWin:    result.Won,
			Word:     g.Word,
			Scores:   g.Scores,
			WinnerID: r.games.Winner(target),
		})
		r.games.Reset(target)
		r.broadcastRoomList()
	}
	return nil
}

func (r *Router) handleRequestHint(sess *session.Session, raw json.RawMessage) error {
	var p model.RequestHintPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return model.ErrWrongPhase
	}
	target, err := r.sessionRoom(sess)
	if err != nil {
		return err
	}
	if err := r.games.RequestHint(target, sess.PlayerID, p.Question); err != nil {
		return err
	}

	// Forwarded to the word setter only, not broadcast.
	r.sender.Send(target.Game.WordSetter, model.EventHintRequested, model.HintRequestedPayload{
		RequesterID: sess.PlayerID,
		Username:    sess.Username,
		Question:    p.Question,
	})
	return nil
}

func (r *Router) handleProvideHint(sess *session.Session, raw json.RawMessage) error {
	var p model.ProvideHintPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return model.ErrWrongPhase
	}
	target, err := r.sessionRoom(sess)
	if err != nil {
		return err
	}
	hint, number, err := r.games.ProvideHint(target, sess.PlayerID, p.Hint)
	if err != nil {
		return err
	}
	r.sender.SendMany(r.memberIDs(target), model.EventHintProvided, model.HintProvidedPayload{
		Number:         number,
		Question:       hint.Question,
		Answer:         hint.Answer,
		HintsRemaining: target.Game.HintsRemaining,
	})
	return nil
}

func (r *Router) handleDismissHint(sess *session.Session) error {
	target, err := r.sessionRoom(sess)
	if err != nil {
		return err
	}
	requester, err := r.games.DismissHint(target, sess.PlayerID)
	if err != nil {
		return err
	}
	if requester != "" {
		r.sender.Send(requester, model.EventHintDismissed, nil)
	}
	return nil
}

func (r *Router) handleChatMessage(sess *session.Session, raw json.RawMessage) error {
	var p model.ChatMessagePayload
	if err := json.Unmarshal(raw, &p); err != nil || strings.TrimSpace(p.Message) == "" {
		return nil
	}
	target, err := r.sessionRoom(sess)
	if err != nil {
		return err
	}
	entry := model.ChatEntry{Username: sess.Username, Message: p.Message}
	r.chat.Append(target.ID, entry)
	r.sender.SendMany(r.memberIDs(target), model.EventChatMessage, model.ChatBroadcastPayload{
		Username: entry.Username,
		Message:  entry.Message,
	})
	return nil
}

// handleDisconnect tears down a dropped connection: room exit with the
// same semantics as leaveRoom, then session removal.
func (r *Router) handleDisconnect(connID model.PlayerID) {
	sess := r.sessions.Get(connID)
	if sess == nil {
		return
	}
	if sess.RoomID != "" {
		if target, err := r.registry.Get(sess.RoomID); err == nil {
			r.removeFromRoom(target, connID, "player disconnected")
		}
	}
	r.sessions.Remove(connID)
	r.broadcastOnlineCount()
}

// sessionRoom resolves the room the session is bound to.
func (r *Router) sessionRoom(sess *session.Session) (*model.Room, error) {
	if sess.RoomID == "" {
		return nil, model.ErrNotInRoom
	}
	return r.registry.Get(sess.RoomID)
}

// scheduleTimer registers a continuation that re-enters the command
// queue when it fires. Cancelled wholesale per room on teardown.
func (r *Router) scheduleTimer(roomID model.RoomID, d time.Duration, fn func()) {
	t := r.clock.AfterFunc(d, func() {
		r.post(fn)
	})
	r.timers[roomID] = append(r.timers[roomID], t)
}

// cancelTimers stops all pending continuations for a room.
func (r *Router) cancelTimers(roomID model.RoomID) {
	for _, t := range r.timers[roomID] {
		t.Stop()
	}
	delete(r.timers, roomID)
}

func (r *Router) broadcastRoomList() {
	r.sender.Broadcast(model.EventRoomList, model.RoomListPayload{Rooms: r.registry.List()})
}

func (r *Router) broadcastOnlineCount() {
	r.sender.Broadcast(model.EventOnlineCount, model.OnlineCountPayload{Count: r.sessions.Count()})
}

// memberIDs returns the connection ids of everyone in the room.
func (r *Router) memberIDs(target *model.Room) []model.PlayerID {
	ids := make([]model.PlayerID, 0, len(target.Players))
	for _, p := range target.Players {
		ids = append(ids, p.ID)
	}
	return ids
}

func (r *Router) memberIDsExcept(target *model.Room, exclude model.PlayerID) []model.PlayerID {
	ids := make([]model.PlayerID, 0, len(target.Players))
	for _, p := range target.Players {
		if p.ID != exclude {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

func playerInfo(p model.Player) model.PlayerInfo {
	return model.PlayerInfo{
		ID:       p.ID,
		Username: p.Username,
		Avatar:   p.Avatar,
		Team:     p.Team,
	}
}

func playerInfos(target *model.Room) []model.PlayerInfo {
	infos := make([]model.PlayerInfo, 0, len(target.Players))
	for _, p := range target.Players {
		infos = append(infos, playerInfo(p))
	}
	return infos
}
