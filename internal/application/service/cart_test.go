package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/okalang/dinebill-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuItem(name string, priceCents int64) *entity.MenuItem {
	return &entity.MenuItem{
		ID:         uuid.New(),
		Name:       name,
		PriceCents: priceCents,
		Category:   "mains",
		Available:  true,
	}
}

func TestCartAddItem(t *testing.T) {
	cart := NewCart()
	burger := menuItem("Burger", 899)
	fries := menuItem("Fries", 349)

	cart.AddItem(burger)
	cart.AddItem(fries)

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "Burger", lines[0].Name)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, int64(899), lines[0].TotalCents)
}

func TestCartAddItemBumpsExistingLine(t *testing.T) {
	cart := NewCart()
	burger := menuItem("Burger", 899)

	cart.AddItem(burger)
	cart.AddItem(burger)
	cart.AddItem(burger)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, int64(2697), lines[0].TotalCents)
}

func TestCartAddItemSnapshotsPrice(t *testing.T) {
	cart := NewCart()
	burger := menuItem("Burger", 899)
	cart.AddItem(burger)

	// A later menu edit must not touch the line already in the cart.
	burger.PriceCents = 1099
	burger.Name = "Deluxe Burger"

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Burger", lines[0].Name)
	assert.Equal(t, int64(899), lines[0].UnitPriceCents)
}

func TestCartChangeQuantity(t *testing.T) {
	cart := NewCart()
	burger := menuItem("Burger", 899)
	cart.AddItem(burger)

	ok := cart.ChangeQuantity(burger.ID, 2)
	require.True(t, ok)

	lines := cart.Lines()
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, int64(2697), lines[0].TotalCents)
}

func TestCartChangeQuantityToZeroIsNoOp(t *testing.T) {
	cart := NewCart()
	burger := menuItem("Burger", 899)
	cart.AddItem(burger)

	ok := cart.ChangeQuantity(burger.ID, -1)
	require.True(t, ok)

	// The line survives unchanged; removal is RemoveItem's job.
	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestCartChangeQuantityUnknownItem(t *testing.T) {
	cart := NewCart()
	cart.AddItem(menuItem("Burger", 899))

	ok := cart.ChangeQuantity(uuid.New(), 1)
	assert.False(t, ok)
}

func TestCartRemoveItem(t *testing.T) {
	cart := NewCart()
	burger := menuItem("Burger", 899)
	fries := menuItem("Fries", 349)
	cart.AddItem(burger)
	cart.AddItem(fries)
	cart.AddItem(burger)

	cart.RemoveItem(burger.ID)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Fries", lines[0].Name)

	// Removing an absent item is harmless.
	cart.RemoveItem(uuid.New())
	assert.Len(t, cart.Lines(), 1)
}

func TestCartClear(t *testing.T) {
	cart := NewCart()
	cart.AddItem(menuItem("Burger", 899))
	require.False(t, cart.IsEmpty())

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Empty(t, cart.Lines())
}

func TestCartLinesReturnsCopy(t *testing.T) {
	cart := NewCart()
	cart.AddItem(menuItem("Burger", 899))

	lines := cart.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, cart.Lines()[0].Quantity)
}
