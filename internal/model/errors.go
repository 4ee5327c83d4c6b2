package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrNotAuthenticated = errors.New("connection is not authenticated")
	ErrBanned           = errors.New("user is banned")
	ErrMaintenanceMode  = errors.New("server is in maintenance mode")

	// Room errors
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomNameTaken   = errors.New("room name is already taken")
	ErrRoomFull        = errors.New("room is full")
	ErrWrongPassword   = errors.New("wrong room password")
	ErrAlreadyInRoom   = errors.New("player is already in a room")
	ErrNotInRoom       = errors.New("player is not in a room")
	ErrNotHost         = errors.New("player is not the host")
	ErrTeamFull        = errors.New("team is full")
	ErrInvalidTeam     = errors.New("invalid team")
	ErrRoomNotWaiting  = errors.New("room is not accepting players")
	ErrInvalidRoomMode = errors.New("invalid room mode")

	// Game errors
	ErrNoGameInProgress    = errors.New("no game in progress")
	ErrGameInProgress      = errors.New("game is already in progress")
	ErrInsufficientPlayers = errors.New("not enough players to start")
	ErrNotYourTurn         = errors.New("wait for your turn")
	ErrTeamExcluded        = errors.New("word setter's side cannot guess")
	ErrInvalidLetter       = errors.New("guess must be a single letter A-Z")
	ErrInvalidWord         = errors.New("word must be 3-20 letters A-Z")
	ErrNotWordSetter       = errors.New("player is not the word setter")
	ErrNotRepresentative   = errors.New("player is not a coin-flip representative")
	ErrSideAlreadyChosen   = errors.New("coin side has already been chosen")
	ErrInvalidSide         = errors.New("coin side must be heads or tails")
	ErrWrongPhase          = errors.New("action not valid in current game phase")

	// Hint errors
	ErrNoHintsLeft = errors.New("no hints remaining")

	// Profile errors
	ErrProfileNotFound = errors.New("user profile not found")
)
