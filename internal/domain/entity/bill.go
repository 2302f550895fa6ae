package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/okalang/dinebill-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Bill is a finalized sales transaction. Once persisted its monetary fields
// are never recomputed; corrections require a new record. The only mutation
// the application exposes is flipping the Synced flag.
type Bill struct {
	ID            uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	BillNo        string              `gorm:"size:20;unique;not null" json:"bill_no"`
	SubTotalCents int64               `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Tax1Cents     int64               `gorm:"not null" json:"-"`
	Tax2Cents     int64               `gorm:"not null" json:"-"`
	TotalCents    int64               `gorm:"not null" json:"-"`
	CashierID     uuid.UUID           `gorm:"type:uuid;not null;index" json:"cashier_id"`
	CashierName   string              `gorm:"size:255;not null" json:"cashier_name"`
	PaymentMethod *enum.PaymentMethod `gorm:"size:20" json:"payment_method,omitempty"`
	CustomerName  *string             `gorm:"size:255" json:"customer_name,omitempty"`
	CustomerPhone *string             `gorm:"size:50" json:"customer_phone,omitempty"`
	Notes         *string             `gorm:"type:text" json:"notes,omitempty"`
	Synced        bool                `gorm:"default:false;index" json:"synced"`
	CreatedAt     time.Time           `gorm:"index" json:"created_at"`

	// Relationships
	Items []BillItem `gorm:"foreignKey:BillID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (b Bill) MarshalJSON() ([]byte, error) {
	type Alias Bill
	return json.Marshal(&struct {
		Alias
		SubTotal float64 `json:"sub_total"`
		Tax1     float64 `json:"tax1"`
		Tax2     float64 `json:"tax2"`
		Total    float64 `json:"total"`
	}{
		Alias:    Alias(b),
		SubTotal: float64(b.SubTotalCents) / 100,
		Tax1:     float64(b.Tax1Cents) / 100,
		Tax2:     float64(b.Tax2Cents) / 100,
		Total:    float64(b.TotalCents) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// GetTotalDecimal returns the grand total as a decimal
func (b *Bill) GetTotalDecimal() float64 {
	return float64(b.TotalCents) / 100
}

// BillItem is one line of a finalized bill, carrying the menu item's name
// and unit price as they were at the moment the line entered the cart.
type BillItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BillID         uuid.UUID `gorm:"type:uuid;not null;index" json:"bill_id"`
	MenuItemID     uuid.UUID `gorm:"type:uuid;not null;index" json:"menu_item_id"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	UnitPriceCents int64     `gorm:"not null" json:"-"`
	Quantity       int       `gorm:"not null" json:"quantity"`
	TotalCents     int64     `gorm:"not null" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (bi BillItem) MarshalJSON() ([]byte, error) {
	type Alias BillItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(bi),
		UnitPrice: float64(bi.UnitPriceCents) / 100,
		Total:     float64(bi.TotalCents) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new bill item
func (bi *BillItem) BeforeCreate(tx *gorm.DB) error {
	if bi.ID == uuid.Nil {
		bi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillItem model
func (BillItem) TableName() string {
	return "bill_items"
}
