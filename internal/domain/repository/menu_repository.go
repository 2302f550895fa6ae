package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/okalang/dinebill-api/internal/domain/entity"
)

// MenuItemRepository defines the interface for menu item data operations
type MenuItemRepository interface {
	// Create inserts a new menu item and fails if the id already exists
	Create(ctx context.Context, item *entity.MenuItem) error
	// GetByID returns the item, or nil when absent
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	// List returns every item in insertion order
	List(ctx context.Context) ([]entity.MenuItem, error)
	// ListByCategory returns items matching the category label
	ListByCategory(ctx context.Context, category string) ([]entity.MenuItem, error)
	// ListAvailable returns items whose availability flag is set
	ListAvailable(ctx context.Context) ([]entity.MenuItem, error)
	// Save upserts the item: creates when absent, replaces when present
	Save(ctx context.Context, item *entity.MenuItem) error
	// Delete is idempotent: deleting an absent id succeeds
	Delete(ctx context.Context, id uuid.UUID) error
}
