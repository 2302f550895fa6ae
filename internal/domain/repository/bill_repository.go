package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/okalang/dinebill-api/internal/domain/entity"
)

// BillRepository defines the interface for bill data operations.
//
// Bills are append-only: Create is the only write that touches monetary
// fields. MarkSynced flips the sync-pending flag and nothing else.
type BillRepository interface {
	// Create persists the bill together with its items in one transaction
	Create(ctx context.Context, bill *entity.Bill) error
	// GetByID returns the bill with its items preloaded, or nil when absent
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	// List returns all bills in insertion order, items preloaded
	List(ctx context.Context) ([]entity.Bill, error)
	// ListRecent returns up to limit bills, most recently inserted first
	ListRecent(ctx context.Context, limit int) ([]entity.Bill, error)
	// ListUnsynced returns bills whose sync-pending flag is still set
	ListUnsynced(ctx context.Context) ([]entity.Bill, error)
	// LastInserted returns the most recently inserted bill by physical
	// insertion order (not bill number, not timestamp), or nil when the
	// collection is empty
	LastInserted(ctx context.Context) (*entity.Bill, error)
	// MarkSynced clears the sync-pending flag on the given bill
	MarkSynced(ctx context.Context, id uuid.UUID) error
	// Count returns the number of stored bills
	Count(ctx context.Context) (int64, error)
}
