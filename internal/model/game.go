package model

import (
	"strings"
	"time"
)

// GamePhase represents the current phase of a game.
type GamePhase string

const (
	PhaseCoinFlip      GamePhase = "coin_flip"      // Representatives choosing sides
	PhaseWordSelection GamePhase = "word_selection" // Word setter submitting the word
	PhasePlaying       GamePhase = "playing"        // Guessing in progress
	PhaseFinished      GamePhase = "finished"       // Game over
)

// MaxWrongGuesses is the fixed gallows-stage budget; reaching it loses
// the game.
const MaxWrongGuesses = 6

// CoinSide is a heads/tails choice.
type CoinSide string

const (
	SideHeads CoinSide = "heads"
	SideTails CoinSide = "tails"
)

// Opposite returns the other side.
func (s CoinSide) Opposite() CoinSide {
	if s == SideHeads {
		return SideTails
	}
	return SideHeads
}

// CoinFlip is the transient arbitration record for custom-word games.
// It exists only during the coin_flip phase and is nulled out once a
// word setter is chosen.
type CoinFlip struct {
	Player1ID     PlayerID
	Player2ID     PlayerID
	Player1Choice CoinSide // empty until chosen
	Player2Choice CoinSide
	Result        CoinSide // empty until drawn
	Winner        PlayerID
}

// Representative reports whether the given player is one of the two
// coin-flip representatives.
func (cf *CoinFlip) Representative(id PlayerID) bool {
	return id == cf.Player1ID || id == cf.Player2ID
}

// BothChosen reports whether both sides have been populated.
func (cf *CoinFlip) BothChosen() bool {
	return cf.Player1Choice != "" && cf.Player2Choice != ""
}

// Hint is one answered entry in the hint ledger.
type Hint struct {
	Question string
	Answer   string
}

// Game holds the per-room game state. A fresh Game is created each
// time the host starts a game; nothing carries over between games.
type Game struct {
	Phase          GamePhase
	Word           string // uppercase letters, empty before set
	WordHint       string // dictionary hint, empty for custom words
	IsCustomWord   bool
	WordSetter     PlayerID // custom games only
	WordSetterTeam Team     // custom team games only
	GuessedLetters []string // single uppercase letters, append order
	WrongLetters   []string
	CurrentTurn    int // index into the room's Players sequence
	Scores         map[PlayerID]int

	// Hint sub-protocol, meaningful only when IsCustomWord.
	HintsRemaining    int
	Hints             []Hint
	LastHintRequester PlayerID
	LastQuestion      string

	CoinFlip *CoinFlip

	StartedAt time.Time
}

// HasGuessed reports whether the letter already appears in either the
// guessed or the wrong set.
func (g *Game) HasGuessed(letter string) bool {
	for _, l := range g.GuessedLetters {
		if l == letter {
			return true
		}
	}
	for _, l := range g.WrongLetters {
		if l == letter {
			return true
		}
	}
	return false
}

// WordContains reports whether the letter occurs in the word.
func (g *Game) WordContains(letter string) bool {
	return strings.Contains(g.Word, letter)
}

// IsWordRevealed reports whether every distinct letter of the word is
// present in GuessedLetters.
func (g *Game) IsWordRevealed() bool {
	if g.Word == "" {
		return false
	}
	for _, r := range g.Word {
		found := false
		for _, l := range g.GuessedLetters {
			if l == string(r) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// IsLost reports whether the wrong-guess budget is exhausted.
func (g *Game) IsLost() bool {
	return len(g.WrongLetters) >= MaxWrongGuesses
}

// MaskedWord returns the word with unguessed letters replaced by
// underscores, for broadcast to guessers.
func (g *Game) MaskedWord() string {
	var b strings.Builder
	for _, r := range g.Word {
		revealed := false
		for _, l := range g.GuessedLetters {
			if l == string(r) {
				revealed = true
				break
			}
		}
		if revealed {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
