package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/okalang/dinebill-api/internal/domain/entity"
	"github.com/okalang/dinebill-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBill(billNo string, totalCents int64) *entity.Bill {
	return &entity.Bill{
		BillNo:      billNo,
		TotalCents:  totalCents,
		CashierID:   uuid.New(),
		CashierName: "Jane",
		Items: []entity.BillItem{
			{MenuItemID: uuid.New(), Name: "Coffee", UnitPriceCents: totalCents, Quantity: 1, TotalCents: totalCents},
		},
	}
}

func TestBillCreateStoresItems(t *testing.T) {
	repo := NewBillRepository(setupTestDB(t))
	ctx := context.Background()

	bill := newBill("BILL0001", 250)
	require.NoError(t, repo.Create(ctx, bill))

	stored, err := repo.GetByID(ctx, bill.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "Coffee", stored.Items[0].Name)
	assert.Equal(t, bill.ID, stored.Items[0].BillID)
}

func TestBillItemsKeepInsertionOrder(t *testing.T) {
	repo := NewBillRepository(setupTestDB(t))
	ctx := context.Background()

	bill := newBill("BILL0001", 1500)
	bill.Items = []entity.BillItem{
		{MenuItemID: uuid.New(), Name: "Soup", UnitPriceCents: 450, Quantity: 1, TotalCents: 450},
		{MenuItemID: uuid.New(), Name: "Burger", UnitPriceCents: 899, Quantity: 1, TotalCents: 899},
		{MenuItemID: uuid.New(), Name: "Coffee", UnitPriceCents: 250, Quantity: 1, TotalCents: 250},
	}
	require.NoError(t, repo.Create(ctx, bill))

	// Lines come back in the order they were rung up, every read.
	stored, err := repo.GetByID(ctx, bill.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 3)
	assert.Equal(t, "Soup", stored.Items[0].Name)
	assert.Equal(t, "Burger", stored.Items[1].Name)
	assert.Equal(t, "Coffee", stored.Items[2].Name)

	bills, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.Equal(t, "Soup", bills[0].Items[0].Name)
	assert.Equal(t, "Coffee", bills[0].Items[2].Name)
}

func TestBillCreateDuplicateNumber(t *testing.T) {
	repo := NewBillRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newBill("BILL0001", 250)))

	err := repo.Create(ctx, newBill("BILL0001", 500))
	assert.True(t, apperror.IsKind(err, apperror.KindDuplicateKey))
}

func TestBillGetByIDAbsent(t *testing.T) {
	repo := NewBillRepository(setupTestDB(t))

	bill, err := repo.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, bill)
}

func TestBillListInsertionOrder(t *testing.T) {
	repo := NewBillRepository(setupTestDB(t))
	ctx := context.Background()

	// Insert out of numeric order; listing must follow insertion order.
	for _, no := range []string{"BILL0005", "BILL0002", "BILL0009"} {
		require.NoError(t, repo.Create(ctx, newBill(no, 100)))
	}

	bills, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, bills, 3)
	assert.Equal(t, "BILL0005", bills[0].BillNo)
	assert.Equal(t, "BILL0002", bills[1].BillNo)
	assert.Equal(t, "BILL0009", bills[2].BillNo)
}

func TestBillLastInserted(t *testing.T) {
	repo := NewBillRepository(setupTestDB(t))
	ctx := context.Background()

	last, err := repo.LastInserted(ctx)
	require.NoError(t, err)
	assert.Nil(t, last)

	require.NoError(t, repo.Create(ctx, newBill("BILL0009", 100)))
	require.NoError(t, repo.Create(ctx, newBill("BILL0002", 100)))

	last, err = repo.LastInserted(ctx)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, "BILL0002", last.BillNo)
}

func TestBillListRecent(t *testing.T) {
	repo := NewBillRepository(setupTestDB(t))
	ctx := context.Background()

	for _, no := range []string{"BILL0001", "BILL0002", "BILL0003"} {
		require.NoError(t, repo.Create(ctx, newBill(no, 100)))
	}

	bills, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, bills, 2)
	assert.Equal(t, "BILL0003", bills[0].BillNo)
	assert.Equal(t, "BILL0002", bills[1].BillNo)
}

func TestBillMarkSyncedAndUnsyncedFilter(t *testing.T) {
	repo := NewBillRepository(setupTestDB(t))
	ctx := context.Background()

	first := newBill("BILL0001", 100)
	second := newBill("BILL0002", 200)
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	require.NoError(t, repo.MarkSynced(ctx, first.ID))

	unsynced, err := repo.ListUnsynced(ctx)
	require.NoError(t, err)
	require.Len(t, unsynced, 1)
	assert.Equal(t, "BILL0002", unsynced[0].BillNo)
}

func TestBillMarkSyncedAbsent(t *testing.T) {
	repo := NewBillRepository(setupTestDB(t))

	err := repo.MarkSynced(context.Background(), uuid.New())
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestBillCount(t *testing.T) {
	repo := NewBillRepository(setupTestDB(t))
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, repo.Create(ctx, newBill("BILL0001", 100)))

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
