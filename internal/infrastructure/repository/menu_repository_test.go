package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/okalang/dinebill-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMenuItem(name, category string, available bool) *entity.MenuItem {
	return &entity.MenuItem{
		Name:       name,
		PriceCents: 500,
		Category:   category,
		Available:  available,
	}
}

func TestMenuItemCreateAndGet(t *testing.T) {
	repo := NewMenuItemRepository(setupTestDB(t))
	ctx := context.Background()

	item := newMenuItem("Latte", "drinks", true)
	require.NoError(t, repo.Create(ctx, item))
	require.NotEqual(t, uuid.Nil, item.ID)

	stored, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Latte", stored.Name)
	assert.Equal(t, int64(500), stored.PriceCents)
}

func TestMenuItemGetAbsent(t *testing.T) {
	repo := NewMenuItemRepository(setupTestDB(t))

	item, err := repo.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestMenuItemListFilters(t *testing.T) {
	repo := NewMenuItemRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newMenuItem("Latte", "drinks", true)))
	require.NoError(t, repo.Create(ctx, newMenuItem("Burger", "mains", true)))
	require.NoError(t, repo.Create(ctx, newMenuItem("Seasonal Pie", "desserts", false)))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	drinks, err := repo.ListByCategory(ctx, "drinks")
	require.NoError(t, err)
	require.Len(t, drinks, 1)
	assert.Equal(t, "Latte", drinks[0].Name)

	available, err := repo.ListAvailable(ctx)
	require.NoError(t, err)
	assert.Len(t, available, 2)
}

func TestMenuItemSaveUpdates(t *testing.T) {
	repo := NewMenuItemRepository(setupTestDB(t))
	ctx := context.Background()

	item := newMenuItem("Latte", "drinks", true)
	require.NoError(t, repo.Create(ctx, item))

	item.PriceCents = 550
	item.Available = false
	require.NoError(t, repo.Save(ctx, item))

	stored, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(550), stored.PriceCents)
	assert.False(t, stored.Available)
}

func TestMenuItemDeleteIdempotent(t *testing.T) {
	repo := NewMenuItemRepository(setupTestDB(t))
	ctx := context.Background()

	item := newMenuItem("Latte", "drinks", true)
	require.NoError(t, repo.Create(ctx, item))

	require.NoError(t, repo.Delete(ctx, item.ID))
	// Deleting again, or deleting something that never existed, succeeds.
	require.NoError(t, repo.Delete(ctx, item.ID))
	require.NoError(t, repo.Delete(ctx, uuid.New()))

	stored, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}
