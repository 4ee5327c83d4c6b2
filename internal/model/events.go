package model

import "encoding/json"

// EventType identifies the type of a wire event.
type EventType string

// Inbound event types (client -> server)
const (
	EventAuthenticate     EventType = "authenticate"
	EventCreateRoom       EventType = "createRoom"
	EventJoinRoom         EventType = "joinRoom"
	EventLeaveRoom        EventType = "leaveRoom"
	EventChangeTeam       EventType = "changeTeam"
	EventStartGame        EventType = "startGame"
	EventSelectCoinSide   EventType = "selectCoinSide"
	EventSubmitCustomWord EventType = "submitCustomWord"
	EventRequestHint      EventType = "requestHint"
	EventProvideHint      EventType = "provideHint"
	EventDismissHint      EventType = "dismissHint"
	EventMakeGuess        EventType = "makeGuess"
	EventChatMessage      EventType = "chatMessage"
)

// Outbound event types (server -> client)
const (
	EventAuthenticated EventType = "authenticated"
	EventOnlineCount   EventType = "onlineCount"
	EventRoomList      EventType = "roomList"
	EventRoomCreated   EventType = "roomCreated"
	EventJoinedRoom    EventType = "joinedRoom"
	EventPlayerJoined  EventType = "playerJoined"
	EventPlayerLeft    EventType = "playerLeft"
	EventHostChanged   EventType = "hostChanged"
	EventTeamChanged   EventType = "teamChanged"

	EventCoinFlipPhase      EventType = "coinFlipPhase"
	EventCoinSideSelected   EventType = "coinSideSelected"
	EventCoinFlipResult     EventType = "coinFlipResult"
	EventWordSelectionPhase EventType = "wordSelectionPhase"
	EventWordAccepted       EventType = "wordAccepted"

	EventGameStarted EventType = "gameStarted"
	EventGuessResult EventType = "guessResult"
	EventGameEnded   EventType = "gameEnded"
	EventGameAborted EventType = "gameAborted"

	EventHintRequested EventType = "hintRequested"
	EventHintProvided  EventType = "hintProvided"
	EventHintDismissed EventType = "hintDismissed"

	EventChatHistory EventType = "chatHistory"
	EventError       EventType = "error"
)

// Envelope is the wire framing for all events: a type tag plus a
// type-specific payload.
type Envelope struct {
	Type    EventType       `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Inbound payloads

type AuthenticatePayload struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
	AdminKey string `json:"adminKey,omitempty"`
}

type CreateRoomPayload struct {
	Name       string     `json:"name"`
	Mode       RoomMode   `json:"mode"`
	Password   string     `json:"password,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	HintCount  int        `json:"hintCount,omitempty"`
}

type JoinRoomPayload struct {
	RoomID   RoomID `json:"roomId"`
	Password string `json:"password,omitempty"`
}

type ChangeTeamPayload struct {
	RoomID RoomID `json:"roomId"`
	Team   Team   `json:"team"`
}

type StartGamePayload struct {
	RoomID RoomID `json:"roomId"`
}

type SelectCoinSidePayload struct {
	RoomID RoomID   `json:"roomId"`
	Side   CoinSide `json:"side"`
}

type SubmitCustomWordPayload struct {
	RoomID RoomID `json:"roomId"`
	Word   string `json:"word"`
}

type RequestHintPayload struct {
	RoomID   RoomID `json:"roomId"`
	Question string `json:"question,omitempty"`
}

type ProvideHintPayload struct {
	RoomID RoomID `json:"roomId"`
	Hint   string `json:"hint"`
}

type DismissHintPayload struct {
	RoomID RoomID `json:"roomId"`
}

type MakeGuessPayload struct {
	RoomID RoomID `json:"roomId"`
	Letter string `json:"letter"`
}

type ChatMessagePayload struct {
	RoomID  RoomID `json:"roomId"`
	Message string `json:"message"`
}

// Outbound payloads

type AuthenticatedPayload struct {
	PlayerID PlayerID `json:"playerId"`
	Username string   `json:"username"`
	IsAdmin  bool     `json:"isAdmin"`
}

type OnlineCountPayload struct {
	Count int `json:"count"`
}

type RoomListPayload struct {
	Rooms []RoomSummary `json:"rooms"`
}

type RoomCreatedPayload struct {
	Room RoomSummary `json:"room"`
}

type PlayerInfo struct {
	ID       PlayerID `json:"id"`
	Username string   `json:"username"`
	Avatar   string   `json:"avatar,omitempty"`
	Team     Team     `json:"team,omitempty"`
}

type JoinedRoomPayload struct {
	Room    RoomSummary  `json:"room"`
	Players []PlayerInfo `json:"players"`
	HostID  PlayerID     `json:"hostId"`
	You     PlayerInfo   `json:"you"`
}

type PlayerJoinedPayload struct {
	Player  PlayerInfo   `json:"player"`
	Players []PlayerInfo `json:"players"`
}

type PlayerLeftPayload struct {
	PlayerID PlayerID     `json:"playerId"`
	Username string       `json:"username"`
	Players  []PlayerInfo `json:"players"`
}

type HostChangedPayload struct {
	NewHostID PlayerID `json:"newHostId"`
	Username  string   `json:"username"`
}

type TeamChangedPayload struct {
	PlayerID PlayerID     `json:"playerId"`
	Team     Team         `json:"team"`
	Players  []PlayerInfo `json:"players"`
}

type CoinFlipPhasePayload struct {
	Player1ID PlayerID `json:"player1Id"`
	Player2ID PlayerID `json:"player2Id"`
}

type CoinSideSelectedPayload struct {
	Player1ID     PlayerID `json:"player1Id"`
	Player2ID     PlayerID `json:"player2Id"`
	Player1Choice CoinSide `json:"player1Choice"`
	Player2Choice CoinSide `json:"player2Choice"`
}

type CoinFlipResultPayload struct {
	Result     CoinSide `json:"result"`
	WinnerID   PlayerID `json:"winnerId"`
	WinnerTeam Team     `json:"winnerTeam,omitempty"`
}

type WordSelectionPhasePayload struct {
	WordSetterID   PlayerID `json:"wordSetterId"`
	WordSetterTeam Team     `json:"wordSetterTeam,omitempty"`
}

type GameStartedPayload struct {
	Phase          GamePhase  `json:"phase"`
	Difficulty     Difficulty `json:"difficulty"`
	IsCustomWord   bool       `json:"isCustomWord"`
	MaskedWord     string     `json:"maskedWord"`
	WordLength     int        `json:"wordLength"`
	CurrentTurnID  PlayerID   `json:"currentTurnId"`
	HintsRemaining int        `json:"hintsRemaining,omitempty"`
	WordHint       string     `json:"wordHint,omitempty"`
}

type GuessResultPayload struct {
	PlayerID       PlayerID         `json:"playerId"`
	Letter         string           `json:"letter"`
	Correct        bool             `json:"correct"`
	MaskedWord     string           `json:"maskedWord"`
	GuessedLetters []string         `json:"guessedLetters"`
	WrongLetters   []string         `json:"wrongLetters"`
	Scores         map[PlayerID]int `json:"scores"`
	NextTurnID     PlayerID         `json:"nextTurnId"`
}

type GameEndedPayload struct {
	IsWin    bool             `json:"isWin"`
	Word     string           `json:"word"`
	Scores   map[PlayerID]int `json:"scores"`
	WinnerID PlayerID         `json:"winnerId,omitempty"`
}

type GameAbortedPayload struct {
	Reason string `json:"reason"`
}

type HintRequestedPayload struct {
	RequesterID PlayerID `json:"requesterId"`
	Username    string   `json:"username"`
	Question    string   `json:"question,omitempty"`
}

type HintProvidedPayload struct {
	Number         int    `json:"number"`
	Question       string `json:"question,omitempty"`
	Answer         string `json:"answer"`
	HintsRemaining int    `json:"hintsRemaining"`
}

type ChatEntry struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}

type ChatHistoryPayload struct {
	Messages []ChatEntry `json:"messages"`
}

type ChatBroadcastPayload struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
