package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/okalang/dinebill-api/internal/infrastructure/repository"
	"github.com/okalang/dinebill-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMenuFixture(t *testing.T) *MenuService {
	t.Helper()
	f := newBillingFixture(t)
	return NewMenuService(repository.NewMenuItemRepository(f.db))
}

func TestCreateMenuItemStoresCents(t *testing.T) {
	svc := newMenuFixture(t)

	item, err := svc.CreateMenuItem(context.Background(), &CreateMenuItemInput{
		Name:     "  Latte  ",
		Price:    4.50,
		Category: "drinks",
	})
	require.NoError(t, err)
	assert.Equal(t, "Latte", item.Name)
	assert.Equal(t, int64(450), item.PriceCents)
	assert.True(t, item.Available)
}

func TestCreateMenuItemValidation(t *testing.T) {
	svc := newMenuFixture(t)

	_, err := svc.CreateMenuItem(context.Background(), &CreateMenuItemInput{
		Name:     "",
		Price:    -1,
		Category: " ",
	})
	require.True(t, apperror.IsKind(err, apperror.KindValidation))
	assert.Len(t, apperror.GetAppError(err).Errors, 3)
}

func TestUpdateMenuItemPartial(t *testing.T) {
	svc := newMenuFixture(t)
	ctx := context.Background()

	item, err := svc.CreateMenuItem(ctx, &CreateMenuItemInput{Name: "Latte", Price: 4.50, Category: "drinks"})
	require.NoError(t, err)

	newPrice := 4.75
	updated, err := svc.UpdateMenuItem(ctx, item.ID, &UpdateMenuItemInput{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, int64(475), updated.PriceCents)
	// Omitted fields stay as they were.
	assert.Equal(t, "Latte", updated.Name)
	assert.Equal(t, "drinks", updated.Category)
}

func TestUpdateMenuItemNotFound(t *testing.T) {
	svc := newMenuFixture(t)

	name := "Ghost"
	_, err := svc.UpdateMenuItem(context.Background(), uuid.New(), &UpdateMenuItemInput{Name: &name})
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestSetAvailability(t *testing.T) {
	svc := newMenuFixture(t)
	ctx := context.Background()

	item, err := svc.CreateMenuItem(ctx, &CreateMenuItemInput{Name: "Latte", Price: 4.50, Category: "drinks"})
	require.NoError(t, err)

	updated, err := svc.SetAvailability(ctx, item.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Available)

	items, err := svc.ListMenuItems(ctx, "", true)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDeleteMenuItemIdempotent(t *testing.T) {
	svc := newMenuFixture(t)
	ctx := context.Background()

	item, err := svc.CreateMenuItem(ctx, &CreateMenuItemInput{Name: "Latte", Price: 4.50, Category: "drinks"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMenuItem(ctx, item.ID))
	require.NoError(t, svc.DeleteMenuItem(ctx, item.ID))

	_, err = svc.GetMenuItem(ctx, item.ID)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}
