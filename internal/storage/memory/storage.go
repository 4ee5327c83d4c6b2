package memory

import (
	"context"
	"sync"

	"github.com/wordparty/wordparty/internal/model"
	"github.com/wordparty/wordparty/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	profiles    map[string]*model.UserProfile
	maintenance bool
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		profiles: make(map[string]*model.UserProfile),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveProfile(ctx context.Context, profile *model.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.Username] = profile
	return nil
}

func (s *Storage) GetProfile(ctx context.Context, username string) (*model.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[username]
	if !ok {
		return nil, model.ErrProfileNotFound
	}
	return profile, nil
}

func (s *Storage) DeleteProfile(ctx context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, username)
	return nil
}

func (s *Storage) ListProfiles(ctx context.Context) ([]*model.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profiles := make([]*model.UserProfile, 0, len(s.profiles))
	for _, p := range s.profiles {
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func (s *Storage) SetMaintenanceMode(ctx context.Context, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maintenance = enabled
	return nil
}

func (s *Storage) GetMaintenanceMode(ctx context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maintenance, nil
}
