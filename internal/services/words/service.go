package words

import (
	"strings"

	"github.com/wordparty/wordparty/internal/dependencies/random"
	"github.com/wordparty/wordparty/internal/model"
)

// Entry is one dictionary word with its hint.
type Entry struct {
	Word string
	Hint string
}

// Built-in dictionaries per difficulty. Words are stored uppercase as
// authored; hints are shown to guessers in built-in games.
var builtins = map[model.Difficulty][]Entry{
	model.DifficultyEasy: {
		{Word: "CAT", Hint: "A small pet that purrs"},
		{Word: "DOG", Hint: "Man's best friend"},
		{Word: "SUN", Hint: "It rises in the east"},
		{Word: "BOOK", Hint: "You read it"},
		{Word: "FISH", Hint: "It lives in water"},
		{Word: "TREE", Hint: "It has leaves and bark"},
		{Word: "MOON", Hint: "It lights the night sky"},
		{Word: "CAKE", Hint: "A sweet birthday treat"},
		{Word: "BIRD", Hint: "It has wings and feathers"},
		{Word: "STAR", Hint: "It twinkles at night"},
	},
	model.DifficultyMedium: {
		{Word: "GUITAR", Hint: "A six-stringed instrument"},
		{Word: "PLANET", Hint: "Earth is one"},
		{Word: "BRIDGE", Hint: "It crosses a river"},
		{Word: "CAMERA", Hint: "It captures moments"},
		{Word: "GARDEN", Hint: "Where flowers grow"},
		{Word: "ROCKET", Hint: "It flies to space"},
		{Word: "ISLAND", Hint: "Land surrounded by water"},
		{Word: "WINTER", Hint: "The coldest season"},
		{Word: "PUZZLE", Hint: "Pieces that fit together"},
		{Word: "CASTLE", Hint: "Where a king lives"},
	},
	model.DifficultyHard: {
		{Word: "LABYRINTH", Hint: "A maze you get lost in"},
		{Word: "XYLOPHONE", Hint: "A percussion instrument with bars"},
		{Word: "QUARANTINE", Hint: "Isolation to stop disease"},
		{Word: "HURRICANE", Hint: "A violent tropical storm"},
		{Word: "CHEMISTRY", Hint: "The science of substances"},
		{Word: "SYMPHONY", Hint: "A long orchestral work"},
		{Word: "AQUARIUM", Hint: "A glass home for fish"},
		{Word: "PARACHUTE", Hint: "It slows your fall"},
		{Word: "TELESCOPE", Hint: "It brings the stars closer"},
		{Word: "AVALANCHE", Hint: "Snow rushing down a mountain"},
	},
}

// Service draws words from the built-in difficulty dictionaries.
type Service struct {
	dictionaries map[model.Difficulty][]Entry
	random       random.Random
}

// New creates a word service backed by the built-in dictionaries.
func New(rnd random.Random) *Service {
	return &Service{
		dictionaries: builtins,
		random:       rnd,
	}
}

// NewWithDictionaries creates a word service with custom lists (for testing).
func NewWithDictionaries(dicts map[model.Difficulty][]Entry, rnd random.Random) *Service {
	return &Service{
		dictionaries: dicts,
		random:       rnd,
	}
}

// Pick draws a uniformly random entry for the given difficulty.
// Unrecognized difficulties (including custom, which has no
// dictionary) fall back to the medium list.
func (s *Service) Pick(difficulty model.Difficulty) Entry {
	list, ok := s.dictionaries[difficulty]
	if !ok || len(list) == 0 {
		list = s.dictionaries[model.DifficultyMedium]
	}
	if len(list) == 0 {
		return Entry{}
	}
	return list[s.random.Intn(len(list))]
}

// ValidateCustomWord checks a player-supplied word: 3-20 characters,
// letters only. It returns the normalized uppercase form.
func ValidateCustomWord(word string) (string, error) {
	w := strings.ToUpper(strings.TrimSpace(word))
	if len(w) < 3 || len(w) > 20 {
		return "", model.ErrInvalidWord
	}
	for _, r := range w {
		if r < 'A' || r > 'Z' {
			return "", model.ErrInvalidWord
		}
	}
	return w, nil
}
