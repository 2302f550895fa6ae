package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/okalang/dinebill-api/internal/application/service"
	"github.com/okalang/dinebill-api/internal/presentation/http/dto/request"
	"github.com/okalang/dinebill-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles outlet settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get handles GET /settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved", settings)
}

// Update handles PUT /settings. The payload replaces the row in full.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		ShopName:       req.ShopName,
		Address:        req.Address,
		TaxID:          req.TaxID,
		Phone:          req.Phone,
		Tax1Rate:       req.Tax1Rate,
		Tax2Rate:       req.Tax2Rate,
		PaperWidth:     req.PaperWidth,
		CurrencySymbol: req.CurrencySymbol,
		Theme:          req.Theme,
		AutoSync:       req.AutoSync,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated", settings)
}
