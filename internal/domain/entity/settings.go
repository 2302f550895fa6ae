package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/okalang/dinebill-api/internal/domain/enum"
	"gorm.io/gorm"
)

// DefaultTaxRate is substituted for either tax rate when it is unset
const DefaultTaxRate = 2.5

// Settings holds the outlet-wide application settings. The table is a
// singleton by convention: the seed inserts exactly one row and updates
// replace it in full.
type Settings struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Shop identity
	ShopName string  `gorm:"size:255;not null" json:"shop_name"`
	Address  string  `gorm:"type:text" json:"address"`
	TaxID    *string `gorm:"size:100" json:"tax_id,omitempty"`
	Phone    *string `gorm:"size:50" json:"phone,omitempty"`

	// Two co-equal split tax rates, percentages
	Tax1Rate float64 `gorm:"default:2.5" json:"tax1_rate"`
	Tax2Rate float64 `gorm:"default:2.5" json:"tax2_rate"`

	// Printing and display
	PaperWidth     enum.PaperWidth `gorm:"default:58" json:"paper_width"`
	CurrencySymbol string          `gorm:"size:10;default:'$'" json:"currency_symbol"`
	Theme          string          `gorm:"size:20;default:'light'" json:"theme"`
	AutoSync       bool            `gorm:"default:false" json:"auto_sync"`
}

// BeforeCreate generates a UUID before creating the settings row
func (s *Settings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Settings model
func (Settings) TableName() string {
	return "settings"
}

// EffectiveTax1Rate returns the first tax rate. Zero is a legitimate
// configured rate; only a negative value (never written by the seed or by
// validated updates) falls back to the default.
func (s *Settings) EffectiveTax1Rate() float64 {
	if s.Tax1Rate < 0 {
		return DefaultTaxRate
	}
	return s.Tax1Rate
}

// EffectiveTax2Rate returns the second tax rate, see EffectiveTax1Rate
func (s *Settings) EffectiveTax2Rate() float64 {
	if s.Tax2Rate < 0 {
		return DefaultTaxRate
	}
	return s.Tax2Rate
}
