package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wordparty/wordparty/internal/model"
	"github.com/wordparty/wordparty/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveProfile(ctx context.Context, profile *model.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	key := profileKey(profile.Username)

	// Pipeline the save with the index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, s.cfg.ProfileTTL)
	pipe.SAdd(ctx, profileIndexKey(), profile.Username)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetProfile(ctx context.Context, username string) (*model.UserProfile, error) {
	data, err := s.client.Get(ctx, profileKey(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrProfileNotFound
		}
		return nil, err
	}

	var profile model.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *Storage) DeleteProfile(ctx context.Context, username string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, profileKey(username))
	pipe.SRem(ctx, profileIndexKey(), username)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) ListProfiles(ctx context.Context) ([]*model.UserProfile, error) {
	usernames, err := s.client.SMembers(ctx, profileIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	if len(usernames) == 0 {
		return []*model.UserProfile{}, nil
	}

	keys := make([]string, len(usernames))
	for i, u := range usernames {
		keys[i] = profileKey(u)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	profiles := make([]*model.UserProfile, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Profile may have expired
		}
		var profile model.UserProfile
		if err := json.Unmarshal([]byte(val.(string)), &profile); err != nil {
			continue // Skip invalid data
		}
		profiles = append(profiles, &profile)
	}

	return profiles, nil
}

func (s *Storage) SetMaintenanceMode(ctx context.Context, enabled bool) error {
	if enabled {
		return s.client.Set(ctx, maintenanceKey(), "1", 0).Err()
	}
	return s.client.Del(ctx, maintenanceKey()).Err()
}

func (s *Storage) GetMaintenanceMode(ctx context.Context) (bool, error) {
	exists, err := s.client.Exists(ctx, maintenanceKey()).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}
