package request

// UpdateSettingsRequest replaces the outlet settings in full
type UpdateSettingsRequest struct {
	ShopName       string  `json:"shop_name" binding:"required,min=1,max=255"`
	Address        string  `json:"address"`
	TaxID          *string `json:"tax_id"`
	Phone          *string `json:"phone"`
	Tax1Rate       float64 `json:"tax1_rate" binding:"min=0"`
	Tax2Rate       float64 `json:"tax2_rate" binding:"min=0"`
	PaperWidth     int     `json:"paper_width" binding:"required"`
	CurrencySymbol string  `json:"currency_symbol" binding:"required,max=10"`
	Theme          string  `json:"theme" binding:"omitempty,oneof=light dark"`
	AutoSync       bool    `json:"auto_sync"`
}
