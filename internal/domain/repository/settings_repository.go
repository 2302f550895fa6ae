package repository

import (
	"context"

	"github.com/okalang/dinebill-api/internal/domain/entity"
)

// SettingsRepository defines the interface for the settings singleton
type SettingsRepository interface {
	// Get returns the settings row, or nil when the store was never seeded
	Get(ctx context.Context) (*entity.Settings, error)
	// Save replaces the settings row in full, creating it when absent
	Save(ctx context.Context, settings *entity.Settings) error
}
