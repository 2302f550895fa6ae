package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/okalang/dinebill-api/internal/domain/entity"
	"github.com/okalang/dinebill-api/internal/domain/enum"
	"github.com/okalang/dinebill-api/internal/domain/repository"
	"github.com/okalang/dinebill-api/pkg/apperror"
)

const (
	billNoPrefix   = "BILL"
	billNoPadWidth = 4
)

// BillingService assembles finalized bills from the cart and assigns
// sequential bill numbers.
type BillingService struct {
	billRepo     repository.BillRepository
	userRepo     repository.UserRepository
	settingsRepo repository.SettingsRepository
	cart         *Cart
}

// NewBillingService creates a new billing service
func NewBillingService(
	billRepo repository.BillRepository,
	userRepo repository.UserRepository,
	settingsRepo repository.SettingsRepository,
	cart *Cart,
) *BillingService {
	return &BillingService{
		billRepo:     billRepo,
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
		cart:         cart,
	}
}

// Cart returns the cart this service finalizes from
func (s *BillingService) Cart() *Cart {
	return s.cart
}

// NextBillNumber derives the next display number from the most recently
// inserted bill. An empty collection seeds the sequence at BILL0001.
//
// The increment is taken from the LAST-INSERTED record, not the maximum
// stored number. Reading the last number and inserting the new bill are two
// separate store operations with no lock between them, so two callers that
// interleave here can be handed the same number; the unique index on
// bill_no turns the second insert into a DuplicateKey error instead of a
// silent duplicate. See DESIGN.md for why this behavior is kept.
func (s *BillingService) NextBillNumber(ctx context.Context) (string, error) {
	last, err := s.billRepo.LastInserted(ctx)
	if err != nil {
		return "", err
	}
	if last == nil {
		return fmt.Sprintf("%s%0*d", billNoPrefix, billNoPadWidth, 1), nil
	}

	seq, err := parseBillNumber(last.BillNo)
	if err != nil {
		return "", err
	}

	// Past 9999 the number simply keeps growing; the pad width is a minimum.
	return fmt.Sprintf("%s%0*d", billNoPrefix, billNoPadWidth, seq+1), nil
}

// parseBillNumber extracts the numeric suffix of a stored bill number.
// A number that does not parse means the stored data is corrupt; the
// sequencer surfaces that instead of inventing a value.
func parseBillNumber(billNo string) (int, error) {
	suffix, ok := strings.CutPrefix(billNo, billNoPrefix)
	if !ok || suffix == "" {
		return 0, apperror.NewCorruptDataError(fmt.Sprintf("Stored bill number %q does not match %s<digits>", billNo, billNoPrefix))
	}
	seq, err := strconv.Atoi(suffix)
	if err != nil || seq < 0 {
		return 0, apperror.NewCorruptDataError(fmt.Sprintf("Stored bill number %q has a non-numeric suffix", billNo))
	}
	return seq, nil
}

// FinalizeBillInput carries the optional metadata captured at checkout
type FinalizeBillInput struct {
	PaymentMethod *enum.PaymentMethod
	CustomerName  *string
	CustomerPhone *string
	Notes         *string
}

// FinalizeBill snapshots the cart into an immutable Bill and persists it.
// The cart is left untouched: clearing it after a successful save is the
// caller's responsibility.
func (s *BillingService) FinalizeBill(ctx context.Context, cashierID uuid.UUID, input *FinalizeBillInput) (*entity.Bill, error) {
	if input == nil {
		input = &FinalizeBillInput{}
	}

	lines := s.cart.Lines()
	if len(lines) == 0 {
		return nil, apperror.NewEmptyOrderError()
	}

	user, err := s.userRepo.GetByID(ctx, cashierID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewMissingContextError("Cashier account")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, apperror.NewMissingContextError("Application settings")
	}

	totals := ComputeTotals(lines, settings.EffectiveTax1Rate(), settings.EffectiveTax2Rate())

	billNo, err := s.NextBillNumber(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]entity.BillItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, entity.BillItem{
			MenuItemID:     line.MenuItemID,
			Name:           line.Name,
			UnitPriceCents: line.UnitPriceCents,
			Quantity:       line.Quantity,
			TotalCents:     line.TotalCents,
		})
	}

	bill := &entity.Bill{
		BillNo:        billNo,
		SubTotalCents: totals.SubTotalCents,
		Tax1Cents:     totals.Tax1Cents,
		Tax2Cents:     totals.Tax2Cents,
		TotalCents:    totals.TotalCents,
		CashierID:     user.ID,
		CashierName:   user.DisplayName,
		PaymentMethod: input.PaymentMethod,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		Notes:         input.Notes,
		Synced:        false,
		Items:         items,
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}

	return bill, nil
}

// GetBill returns a stored bill with its items
func (s *BillingService) GetBill(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// ListUnsyncedBills returns bills still waiting to be synced
func (s *BillingService) ListUnsyncedBills(ctx context.Context) ([]entity.Bill, error) {
	return s.billRepo.ListUnsynced(ctx)
}

// MarkBillSynced clears a bill's sync-pending flag. This is the only
// mutation finalized bills support.
func (s *BillingService) MarkBillSynced(ctx context.Context, id uuid.UUID) error {
	return s.billRepo.MarkSynced(ctx, id)
}
