package request

import "github.com/google/uuid"

// CartAddRequest adds one unit of a menu item to the cart
type CartAddRequest struct {
	MenuItemID uuid.UUID `json:"menu_item_id" binding:"required"`
}

// CartQuantityRequest adjusts a cart line's quantity by a delta
type CartQuantityRequest struct {
	MenuItemID uuid.UUID `json:"menu_item_id" binding:"required"`
	Delta      int       `json:"delta" binding:"required"`
}

// FinalizeBillRequest carries the optional checkout metadata
type FinalizeBillRequest struct {
	PaymentMethod *string `json:"payment_method"`
	CustomerName  *string `json:"customer_name"`
	CustomerPhone *string `json:"customer_phone"`
	Notes         *string `json:"notes"`
}
