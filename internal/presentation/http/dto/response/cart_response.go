package response

import (
	"github.com/okalang/dinebill-api/internal/application/service"
	"github.com/okalang/dinebill-api/pkg/utils"
)

// CartLineView renders a cart line with decimal prices
type CartLineView struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
	Total      float64 `json:"total"`
}

// CartView is the full cart state: the lines plus totals computed from
// the current tax settings
type CartView struct {
	Lines  []CartLineView     `json:"lines"`
	Totals service.BillTotals `json:"totals"`
}

// NewCartView builds a cart view from the live lines and computed totals
func NewCartView(lines []service.CartLine, totals service.BillTotals) *CartView {
	views := make([]CartLineView, 0, len(lines))
	for _, line := range lines {
		views = append(views, CartLineView{
			MenuItemID: line.MenuItemID.String(),
			Name:       line.Name,
			UnitPrice:  utils.ToDecimal(line.UnitPriceCents),
			Quantity:   line.Quantity,
			Total:      utils.ToDecimal(line.TotalCents),
		})
	}
	return &CartView{Lines: views, Totals: totals}
}
