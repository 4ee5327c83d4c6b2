package ws

import (
	"errors"

	"github.com/wordparty/wordparty/internal/model"
)

// Error codes carried in outbound error payloads.
const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeNotAuthenticated     = "NOT_AUTHENTICATED"
	CodeBanned               = "BANNED"
	CodeMaintenanceMode      = "MAINTENANCE_MODE"
	CodeRoomNotFound         = "ROOM_NOT_FOUND"
	CodeRoomNameTaken        = "ROOM_NAME_TAKEN"
	CodeRoomFull             = "ROOM_FULL"
	CodeWrongPassword        = "WRONG_PASSWORD"
	CodeAlreadyInRoom        = "ALREADY_IN_ROOM"
	CodeNotInRoom            = "NOT_IN_ROOM"
	CodeNotHost              = "NOT_HOST"
	CodeTeamFull             = "TEAM_FULL"
	CodeInvalidTeam          = "INVALID_TEAM"
	CodeRoomNotWaiting       = "ROOM_NOT_WAITING"
	CodeInvalidRoomMode      = "INVALID_ROOM_MODE"
	CodeNoGameInProgress     = "NO_GAME_IN_PROGRESS"
	CodeGameInProgress       = "GAME_IN_PROGRESS"
	CodeInsufficientPlayers  = "INSUFFICIENT_PLAYERS"
	CodeNotYourTurn          = "NOT_YOUR_TURN"
	CodeTeamExcluded         = "TEAM_EXCLUDED"
	CodeInvalidLetter        = "INVALID_LETTER"
	CodeInvalidWord          = "INVALID_WORD"
	CodeNotWordSetter        = "NOT_WORD_SETTER"
	CodeNotRepresentative    = "NOT_REPRESENTATIVE"
	CodeSideAlreadyChosen    = "SIDE_ALREADY_CHOSEN"
	CodeInvalidSide          = "INVALID_SIDE"
	CodeWrongPhase           = "WRONG_PHASE"
	CodeNoHintsLeft          = "NO_HINTS_LEFT"
	CodeInternalError        = "INTERNAL_ERROR"
)

var errorCodes = []struct {
	err  error
	code string
}{
	{model.ErrNotAuthenticated, CodeNotAuthenticated},
	{model.ErrBanned, CodeBanned},
	{model.ErrMaintenanceMode, CodeMaintenanceMode},
	{model.ErrRoomNotFound, CodeRoomNotFound},
	{model.ErrRoomNameTaken, CodeRoomNameTaken},
	{model.ErrRoomFull, CodeRoomFull},
	{model.ErrWrongPassword, CodeWrongPassword},
	{model.ErrAlreadyInRoom, CodeAlreadyInRoom},
	{model.ErrNotInRoom, CodeNotInRoom},
	{model.ErrNotHost, CodeNotHost},
	{model.ErrTeamFull, CodeTeamFull},
	{model.ErrInvalidTeam, CodeInvalidTeam},
	{model.ErrRoomNotWaiting, CodeRoomNotWaiting},
	{model.ErrInvalidRoomMode, CodeInvalidRoomMode},
	{model.ErrNoGameInProgress, CodeNoGameInProgress},
	{model.ErrGameInProgress, CodeGameInProgress},
	{model.ErrInsufficientPlayers, CodeInsufficientPlayers},
	{model.ErrNotYourTurn, CodeNotYourTurn},
	{model.ErrTeamExcluded, CodeTeamExcluded},
	{model.ErrInvalidLetter, CodeInvalidLetter},
	{model.ErrInvalidWord, CodeInvalidWord},
	{model.ErrNotWordSetter, CodeNotWordSetter},
	{model.ErrNotRepresentative, CodeNotRepresentative},
	{model.ErrSideAlreadyChosen, CodeSideAlreadyChosen},
	{model.ErrInvalidSide, CodeInvalidSide},
	{model.ErrWrongPhase, CodeWrongPhase},
	{model.ErrNoHintsLeft, CodeNoHintsLeft},
}

// errorPayload maps a domain error to the wire error payload.
func errorPayload(err error) model.ErrorPayload {
	for _, m := range errorCodes {
		if errors.Is(err, m.err) {
			return model.ErrorPayload{Code: m.code, Message: m.err.Error()}
		}
	}
	return model.ErrorPayload{Code: CodeInternalError, Message: "internal server error"}
}
