package service

import (
	"sync"

	"github.com/google/uuid"
	"github.com/okalang/dinebill-api/internal/domain/entity"
)

// CartLine is one entry in the in-progress order. Name and unit price are
// captured from the menu item at insertion time and do not change if the
// menu is edited afterwards.
type CartLine struct {
	MenuItemID     uuid.UUID `json:"menu_item_id"`
	Name           string    `json:"name"`
	UnitPriceCents int64     `json:"-"`
	Quantity       int       `json:"quantity"`
	TotalCents     int64     `json:"-"`
}

// Cart is the mutable order under construction. It lives in memory only;
// its lines are value-copied into a Bill at finalization. The mutex guards
// against concurrent HTTP requests, the logical model is still one cashier.
type Cart struct {
	mu    sync.Mutex
	lines []CartLine
}

// NewCart creates an empty cart
func NewCart() *Cart {
	return &Cart{}
}

// AddItem adds one unit of the menu item. An existing line for the same
// item gets its quantity bumped instead of a second line.
func (c *Cart) AddItem(item *entity.MenuItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].MenuItemID == item.ID {
			c.lines[i].Quantity++
			c.lines[i].TotalCents = int64(c.lines[i].Quantity) * c.lines[i].UnitPriceCents
			return
		}
	}

	c.lines = append(c.lines, CartLine{
		MenuItemID:     item.ID,
		Name:           item.Name,
		UnitPriceCents: item.PriceCents,
		Quantity:       1,
		TotalCents:     item.PriceCents,
	})
}

// ChangeQuantity adjusts a line's quantity by delta. A change that would
// drive the quantity to zero or below is rejected as a no-op; removing a
// line is RemoveItem's job. Returns false when no line matches the id.
func (c *Cart) ChangeQuantity(menuItemID uuid.UUID, delta int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID {
			newQty := c.lines[i].Quantity + delta
			if newQty <= 0 {
				return true
			}
			c.lines[i].Quantity = newQty
			c.lines[i].TotalCents = int64(newQty) * c.lines[i].UnitPriceCents
			return true
		}
	}
	return false
}

// RemoveItem deletes the line for the menu item regardless of quantity
func (c *Cart) RemoveItem(menuItemID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Called by the handler after a successful save.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns a copy of the current lines in insertion order
func (c *Cart) Lines() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}
