package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/okalang/dinebill-api/internal/domain/entity"
	"github.com/okalang/dinebill-api/internal/domain/repository"
	"github.com/okalang/dinebill-api/pkg/apperror"
	"github.com/okalang/dinebill-api/pkg/printer"
)

// PrinterService formats finalized bills into receipts and sends them to
// the thermal printer.
type PrinterService struct {
	printer      printer.Printer
	billRepo     repository.BillRepository
	settingsRepo repository.SettingsRepository
	printerType  string
}

// NewPrinterService creates a new printer service
func NewPrinterService(
	p printer.Printer,
	billRepo repository.BillRepository,
	settingsRepo repository.SettingsRepository,
	printerType string,
) *PrinterService {
	return &PrinterService{
		printer:      p,
		billRepo:     billRepo,
		settingsRepo: settingsRepo,
		printerType:  printerType,
	}
}

// PrinterStatus returns the current printer status information
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// BuildReceipt composes a printable receipt from a finalized bill and the
// outlet settings. It only reads the two records; nothing is recomputed.
func BuildReceipt(bill *entity.Bill, settings *entity.Settings) *entity.Receipt {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			ShopName: settings.ShopName,
			Address:  settings.Address,
		},
		BillNo:   bill.BillNo,
		Date:     bill.CreatedAt.Format("2006-01-02 15:04"),
		Cashier:  bill.CashierName,
		Currency: settings.CurrencySymbol,
		SubTotal: float64(bill.SubTotalCents) / 100,
		Tax1:     float64(bill.Tax1Cents) / 100,
		Tax2:     float64(bill.Tax2Cents) / 100,
		Total:    float64(bill.TotalCents) / 100,
	}

	if settings.Phone != nil {
		receipt.Header.Phone = *settings.Phone
	}
	if settings.TaxID != nil {
		receipt.Header.TaxID = *settings.TaxID
	}
	if bill.CustomerName != nil {
		receipt.Customer = *bill.CustomerName
	}
	if bill.PaymentMethod != nil {
		receipt.PaymentMethod = bill.PaymentMethod.String()
	}

	for _, item := range bill.Items {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: float64(item.UnitPriceCents) / 100,
			Total:     float64(item.TotalCents) / 100,
		})
	}

	return receipt
}

// FormatReceipt renders a receipt to an ESC/POS byte stream at the given
// character width (32 for 58mm paper, 48 for 80mm).
func FormatReceipt(r *entity.Receipt, charWidth int) []byte {
	doc := printer.NewDocument(charWidth)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.ShopName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.TaxID != "" {
		doc.TextF("Tax ID: %s", r.Header.TaxID)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Bill:", r.BillNo).
		KeyValue("Date:", r.Date)

	if r.Cashier != "" {
		doc.KeyValue("Cashier:", r.Cashier)
	}
	if r.Customer != "" {
		doc.KeyValue("Customer:", r.Customer)
	}
	if r.PaymentMethod != "" {
		doc.KeyValue("Payment:", r.PaymentMethod)
	}

	doc.Separator('-')

	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%s%.2f", r.Currency, item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %s%.2f each", r.Currency, item.UnitPrice)
		}
	}

	doc.Separator('-')

	doc.KeyValue("Subtotal:", fmt.Sprintf("%s%.2f", r.Currency, r.SubTotal)).
		KeyValue("Tax 1:", fmt.Sprintf("%s%.2f", r.Currency, r.Tax1)).
		KeyValue("Tax 2:", fmt.Sprintf("%s%.2f", r.Currency, r.Tax2))
	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%s%.2f", r.Currency, r.Total)).
		SetBold(false)

	doc.Separator('-')

	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you, visit again!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

// PrintBillReceipt fetches a bill and prints its receipt. The receipt is
// returned either way so the handler can show it when no printer is wired.
func (s *PrinterService) PrintBillReceipt(ctx context.Context, billID uuid.UUID) (*entity.Receipt, error) {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, apperror.NewMissingContextError("Application settings")
	}

	receipt := BuildReceipt(bill, settings)
	data := FormatReceipt(receipt, settings.PaperWidth.Chars())
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

// TestPrint sends a test page to the printer
func (s *PrinterService) TestPrint(ctx context.Context) (*entity.Receipt, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	charWidth := 32
	currency := "$"
	shopName := "PRINTER TEST"
	if settings != nil {
		charWidth = settings.PaperWidth.Chars()
		currency = settings.CurrencySymbol
		shopName = settings.ShopName
	}

	receipt := &entity.Receipt{
		Header:   entity.ReceiptHeader{ShopName: shopName},
		BillNo:   "TEST-0001",
		Date:     "Test Date",
		Cashier:  "System",
		Currency: currency,
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Quantity: 1, UnitPrice: 10.00, Total: 10.00},
			{Name: "Test Item 2", Quantity: 2, UnitPrice: 5.00, Total: 10.00},
		},
		SubTotal: 20.00,
		Tax1:     0.50,
		Tax2:     0.50,
		Total:    21.00,
	}

	data := FormatReceipt(receipt, charWidth)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}
