package export

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/okalang/dinebill-api/internal/domain/entity"
	"github.com/okalang/dinebill-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillsWorkbook(t *testing.T) {
	method := enum.PaymentCard
	customer := "Walk-in"
	bills := []entity.Bill{
		{
			BillNo:        "BILL0001",
			SubTotalCents: 2147,
			Tax1Cents:     54,
			Tax2Cents:     54,
			TotalCents:    2255,
			CashierName:   "Jane",
			PaymentMethod: &method,
			CustomerName:  &customer,
			CreatedAt:     time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC),
			Items: []entity.BillItem{
				{MenuItemID: uuid.New(), Name: "Burger", Quantity: 2},
				{MenuItemID: uuid.New(), Name: "Fries", Quantity: 1},
			},
		},
		{
			BillNo:      "BILL0002",
			TotalCents:  250,
			CashierName: "Jane",
			Synced:      true,
			CreatedAt:   time.Date(2024, 3, 15, 13, 0, 0, 0, time.UTC),
		},
	}

	f, err := BillsWorkbook(bills)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Bills", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Bill No", header)

	billNo, err := f.GetCellValue("Bills", "A2")
	require.NoError(t, err)
	assert.Equal(t, "BILL0001", billNo)

	payment, err := f.GetCellValue("Bills", "D2")
	require.NoError(t, err)
	assert.Equal(t, "card", payment)

	total, err := f.GetCellValue("Bills", "J2")
	require.NoError(t, err)
	assert.Equal(t, "22.55", total)

	// Absent payment method exports as an empty cell.
	payment, err = f.GetCellValue("Bills", "D3")
	require.NoError(t, err)
	assert.Empty(t, payment)
}

func TestBillsWorkbookEmpty(t *testing.T) {
	f, err := BillsWorkbook(nil)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Bills")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "bills-today.xlsx", Filename("today"))
	assert.Equal(t, "bills-all.xlsx", Filename("all"))
}
