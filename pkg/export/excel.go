package export

import (
	"fmt"

	"github.com/okalang/dinebill-api/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Bills"

// BillsWorkbook writes a filtered bill listing into an xlsx workbook. The
// caller decides the bill set; nothing is filtered or truncated here.
func BillsWorkbook(bills []entity.Bill) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	headers := []string{"Bill No", "Date", "Cashier", "Payment", "Customer", "Lines", "Subtotal", "Tax 1", "Tax 2", "Total", "Synced"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}

	for i, bill := range bills {
		row := i + 2
		payment := ""
		if bill.PaymentMethod != nil {
			payment = bill.PaymentMethod.String()
		}
		customer := ""
		if bill.CustomerName != nil {
			customer = *bill.CustomerName
		}

		values := []interface{}{
			bill.BillNo,
			bill.CreatedAt.Format("2006-01-02 15:04"),
			bill.CashierName,
			payment,
			customer,
			len(bill.Items),
			float64(bill.SubTotalCents) / 100,
			float64(bill.Tax1Cents) / 100,
			float64(bill.Tax2Cents) / 100,
			float64(bill.TotalCents) / 100,
			bill.Synced,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// Filename builds the attachment name for an export download
func Filename(period string) string {
	return fmt.Sprintf("bills-%s.xlsx", period)
}
