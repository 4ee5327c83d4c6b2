package profile

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/wordparty/wordparty/internal/dependencies/clock"
	"github.com/wordparty/wordparty/internal/model"
	"github.com/wordparty/wordparty/internal/storage"
)

// Service is the gateway to the persistent user store: per-username
// stats, avatar, ban status and the maintenance gate.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new profile service.
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Key returns the case-folded uniqueness key for a username.
func Key(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Touch ensures a profile exists for the username, creating an empty
// one on first sight, and returns it.
func (s *Service) Touch(ctx context.Context, username, avatar string) (*model.UserProfile, error) {
	key := Key(username)
	p, err := s.storage.GetProfile(ctx, key)
	if err == nil {
		if avatar != "" && p.Avatar != avatar {
			p.Avatar = avatar
			p.UpdatedAt = s.clock.Now()
			if err := s.storage.SaveProfile(ctx, p); err != nil {
				return nil, err
			}
		}
		return p, nil
	}
	if !errors.Is(err, model.ErrProfileNotFound) {
		return nil, err
	}

	now := s.clock.Now()
	p = &model.UserProfile{
		Username:  key,
		Avatar:    avatar,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.storage.SaveProfile(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// IsBanned reports whether the username is banned. Unknown usernames
// are not banned.
func (s *Service) IsBanned(ctx context.Context, username string) (bool, error) {
	p, err := s.storage.GetProfile(ctx, Key(username))
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			return false, nil
		}
		return false, err
	}
	return p.Banned, nil
}

// SetBanned updates the ban flag for a username.
func (s *Service) SetBanned(ctx context.Context, username string, banned bool) error {
	key := Key(username)
	p, err := s.storage.GetProfile(ctx, key)
	if err != nil {
		return err
	}
	p.Banned = banned
	p.UpdatedAt = s.clock.Now()
	return s.storage.SaveProfile(ctx, p)
}

// RecordResult adds a win or loss to a username's stats.
func (s *Service) RecordResult(ctx context.Context, username string, won bool) error {
	key := Key(username)
	p, err := s.storage.GetProfile(ctx, key)
	if err != nil {
		if !errors.Is(err, model.ErrProfileNotFound) {
			return err
		}
		now := s.clock.Now()
		p = &model.UserProfile{Username: key, CreatedAt: now}
	}

	p.GamesPlayed++
	if won {
		p.Wins++
	} else {
		p.Losses++
	}
	p.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveProfile(ctx, p); err != nil {
		s.logger.Error("failed to record game result",
			slog.String("username", key),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

// MaintenanceMode reports whether the server is gated for maintenance.
func (s *Service) MaintenanceMode(ctx context.Context) (bool, error) {
	return s.storage.GetMaintenanceMode(ctx)
}

// SetMaintenanceMode toggles the maintenance gate.
func (s *Service) SetMaintenanceMode(ctx context.Context, enabled bool) error {
	return s.storage.SetMaintenanceMode(ctx, enabled)
}

// Get returns the profile for a username.
func (s *Service) Get(ctx context.Context, username string) (*model.UserProfile, error) {
	return s.storage.GetProfile(ctx, Key(username))
}

// List returns all profiles.
func (s *Service) List(ctx context.Context) ([]*model.UserProfile, error) {
	return s.storage.ListProfiles(ctx)
}
