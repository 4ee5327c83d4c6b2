package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/wordparty/wordparty/internal/dependencies/clock"
	"github.com/wordparty/wordparty/internal/dependencies/random"
	"github.com/wordparty/wordparty/internal/services/chat"
	"github.com/wordparty/wordparty/internal/services/game"
	"github.com/wordparty/wordparty/internal/services/profile"
	"github.com/wordparty/wordparty/internal/services/registry"
	"github.com/wordparty/wordparty/internal/services/room"
	"github.com/wordparty/wordparty/internal/services/session"
	"github.com/wordparty/wordparty/internal/services/words"
	"github.com/wordparty/wordparty/internal/storage"
	"github.com/wordparty/wordparty/internal/storage/memory"
	redisstorage "github.com/wordparty/wordparty/internal/storage/redis"
	"github.com/wordparty/wordparty/internal/ws"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	WordService    *words.Service
	Sessions       *session.Directory
	Registry       *registry.Registry
	ProfileService *profile.Service
	ChatRelay      *chat.Relay
	RoomController *room.Controller
	GameController *game.Controller

	// Realtime layer
	Hub    *ws.Hub
	Router *ws.Router
}

// Config holds configuration for the application factory
type Config struct {
	// AdminKey grants admin privileges to matching clients (optional)
	// If empty, admin operations are disabled
	AdminKey string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, cfg.AdminKey, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, adminKey string, logger *slog.Logger) *App {
	// Create services
	wordService := words.New(rnd)
	sessions := session.NewDirectory()
	reg := registry.NewRegistry(clk, sessions, logger)
	profileService := profile.New(store, clk, logger)
	chatRelay := chat.NewRelay()
	roomController := room.NewController(reg, clk, logger)
	gameController := game.NewController(wordService, roomController, profileService, chatRelay, clk, rnd, logger)

	// Create realtime layer
	hub := ws.NewHub(logger)
	router := ws.NewRouter(hub, sessions, reg, roomController, gameController, profileService, chatRelay, clk, adminKey, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		WordService:    wordService,
		Sessions:       sessions,
		Registry:       reg,
		ProfileService: profileService,
		ChatRelay:      chatRelay,
		RoomController: roomController,
		GameController: gameController,
		Hub:            hub,
		Router:         router,
	}
}
