package storage

import (
	"context"

	"github.com/wordparty/wordparty/internal/model"
)

// Storage defines the interface for the persistent user store. Room
// and game state are deliberately process-local and never persisted;
// only cross-session user data (stats, avatar, ban status) and the
// maintenance flag live here.
type Storage interface {
	// Profile operations; username keys are case-folded by callers
	SaveProfile(ctx context.Context, profile *model.UserProfile) error
	GetProfile(ctx context.Context, username string) (*model.UserProfile, error)
	DeleteProfile(ctx context.Context, username string) error
	ListProfiles(ctx context.Context) ([]*model.UserProfile, error)

	// Maintenance mode flag
	SetMaintenanceMode(ctx context.Context, enabled bool) error
	GetMaintenanceMode(ctx context.Context) (bool, error)
}
