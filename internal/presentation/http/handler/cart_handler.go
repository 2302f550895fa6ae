package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/okalang/dinebill-api/internal/application/service"
	"github.com/okalang/dinebill-api/internal/presentation/http/dto/request"
	"github.com/okalang/dinebill-api/internal/presentation/http/dto/response"
	"github.com/okalang/dinebill-api/pkg/apperror"
)

// CartHandler handles the in-progress order
type CartHandler struct {
	cart            *service.Cart
	menuService     *service.MenuService
	settingsService *service.SettingsService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cart *service.Cart, menuService *service.MenuService, settingsService *service.SettingsService) *CartHandler {
	return &CartHandler{
		cart:            cart,
		menuService:     menuService,
		settingsService: settingsService,
	}
}

// view computes the current cart state with totals under the live tax rates
func (h *CartHandler) view(c *gin.Context) (*response.CartView, error) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		return nil, err
	}
	lines := h.cart.Lines()
	totals := service.ComputeTotals(lines, settings.EffectiveTax1Rate(), settings.EffectiveTax2Rate())
	return response.NewCartView(lines, totals), nil
}

// Get handles GET /cart
func (h *CartHandler) Get(c *gin.Context) {
	view, err := h.view(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart retrieved", view)
}

// AddItem handles POST /cart/items. Unavailable items cannot be added.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req request.CartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	item, err := h.menuService.GetMenuItem(c.Request.Context(), req.MenuItemID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !item.Available {
		response.Error(c, apperror.NewValidationError([]apperror.FieldError{
			{Field: "menu_item_id", Message: "Menu item is not available"},
		}))
		return
	}

	h.cart.AddItem(item)

	view, err := h.view(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item added to cart", view)
}

// ChangeQuantity handles PATCH /cart/items
func (h *CartHandler) ChangeQuantity(c *gin.Context) {
	var req request.CartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if !h.cart.ChangeQuantity(req.MenuItemID, req.Delta) {
		response.NotFound(c, "Cart line not found")
		return
	}

	view, err := h.view(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart updated", view)
}

// RemoveItem handles DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item id")
		return
	}

	h.cart.RemoveItem(id)

	view, err := h.view(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item removed from cart", view)
}

// Clear handles DELETE /cart
func (h *CartHandler) Clear(c *gin.Context) {
	h.cart.Clear()
	response.NoContent(c)
}
