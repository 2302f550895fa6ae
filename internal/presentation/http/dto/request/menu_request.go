package request

// CreateMenuItemRequest represents a menu item creation request
type CreateMenuItemRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Price       float64 `json:"price" binding:"min=0"`
	Category    string  `json:"category" binding:"required,min=1,max=100"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

// UpdateMenuItemRequest represents a menu item update request; omitted
// fields are left unchanged
type UpdateMenuItemRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	Category    *string  `json:"category" binding:"omitempty,min=1,max=100"`
	Description *string  `json:"description"`
	Available   *bool    `json:"available"`
}

// SetAvailabilityRequest toggles a menu item's availability
type SetAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}
