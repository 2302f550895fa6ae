package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/okalang/dinebill-api/internal/domain/entity"
	"github.com/okalang/dinebill-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receiptFixture() (*entity.Bill, *entity.Settings) {
	method := enum.PaymentCash
	customer := "Walk-in"
	phone := "555-0101"

	bill := &entity.Bill{
		ID:            uuid.New(),
		BillNo:        "BILL0042",
		SubTotalCents: 2147,
		Tax1Cents:     54,
		Tax2Cents:     54,
		TotalCents:    2255,
		CashierName:   "Jane",
		PaymentMethod: &method,
		CustomerName:  &customer,
		CreatedAt:     time.Date(2024, 3, 15, 12, 30, 0, 0, time.Local),
		Items: []entity.BillItem{
			{Name: "Burger", UnitPriceCents: 899, Quantity: 2, TotalCents: 1798},
			{Name: "Fries", UnitPriceCents: 349, Quantity: 1, TotalCents: 349},
		},
	}

	settings := &entity.Settings{
		ShopName:       "Test Diner",
		Address:        "1 Main St",
		Phone:          &phone,
		PaperWidth:     enum.Paper58mm,
		CurrencySymbol: "$",
	}

	return bill, settings
}

func TestBuildReceipt(t *testing.T) {
	bill, settings := receiptFixture()

	receipt := BuildReceipt(bill, settings)

	assert.Equal(t, "Test Diner", receipt.Header.ShopName)
	assert.Equal(t, "555-0101", receipt.Header.Phone)
	assert.Equal(t, "BILL0042", receipt.BillNo)
	assert.Equal(t, "2024-03-15 12:30", receipt.Date)
	assert.Equal(t, "Walk-in", receipt.Customer)
	assert.Equal(t, "cash", receipt.PaymentMethod)
	require.Len(t, receipt.Items, 2)
	assert.Equal(t, 17.98, receipt.Items[0].Total)
	assert.Equal(t, 22.55, receipt.Total)
}

func TestBuildReceiptOmitsAbsentOptionals(t *testing.T) {
	bill, settings := receiptFixture()
	bill.CustomerName = nil
	bill.PaymentMethod = nil
	settings.Phone = nil
	settings.TaxID = nil

	receipt := BuildReceipt(bill, settings)

	assert.Empty(t, receipt.Customer)
	assert.Empty(t, receipt.PaymentMethod)
	assert.Empty(t, receipt.Header.Phone)
	assert.Empty(t, receipt.Header.TaxID)
}

func TestFormatReceipt(t *testing.T) {
	bill, settings := receiptFixture()
	receipt := BuildReceipt(bill, settings)

	data := FormatReceipt(receipt, settings.PaperWidth.Chars())
	out := string(data)

	assert.Contains(t, out, "Test Diner")
	assert.Contains(t, out, "BILL0042")
	assert.Contains(t, out, "2x Burger")
	assert.Contains(t, out, "$17.98")
	assert.Contains(t, out, "@ $8.99 each")
	assert.Contains(t, out, "$22.55")
	// The stream ends with a partial cut.
	assert.Equal(t, byte(0x01), data[len(data)-1])
}
