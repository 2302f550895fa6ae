package service

import (
	"context"
	"testing"
	"time"

	"github.com/okalang/dinebill-api/internal/domain/entity"
	"github.com/okalang/dinebill-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func billAt(createdAt time.Time, totalCents int64, lineCount int) entity.Bill {
	items := make([]entity.BillItem, lineCount)
	return entity.Bill{
		BillNo:     "BILL0001",
		TotalCents: totalCents,
		CreatedAt:  createdAt,
		Items:      items,
	}
}

func TestPeriodStartToday(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)
	start := PeriodStart(enum.PeriodToday, now)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local), start)
}

func TestPeriodStartWeekAndMonth(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)
	assert.Equal(t, time.Date(2024, 3, 8, 10, 0, 0, 0, time.Local), PeriodStart(enum.PeriodWeek, now))
	assert.Equal(t, time.Date(2024, 2, 15, 10, 0, 0, 0, time.Local), PeriodStart(enum.PeriodMonth, now))
}

func TestFilterByPeriodTodayBoundary(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)
	midnight := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)

	bills := []entity.Bill{
		billAt(midnight.Add(-time.Second), 1000, 1), // yesterday 23:59:59
		billAt(midnight, 2000, 1),                   // exactly midnight, inclusive
		billAt(now.Add(-time.Hour), 3000, 1),        // this morning
	}

	filtered := FilterByPeriod(bills, enum.PeriodToday, now)
	require.Len(t, filtered, 2)
	assert.Equal(t, int64(2000), filtered[0].TotalCents)
	assert.Equal(t, int64(3000), filtered[1].TotalCents)
}

func TestFilterByPeriodAll(t *testing.T) {
	now := time.Now()
	bills := []entity.Bill{
		billAt(now.AddDate(-1, 0, 0), 1000, 1),
		billAt(now, 2000, 1),
	}

	assert.Len(t, FilterByPeriod(bills, enum.PeriodAll, now), 2)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, int64(0), summary.TotalSalesCents)
	assert.Equal(t, 0, summary.BillCount)
	assert.Equal(t, int64(0), summary.AverageBillCents)
	assert.Equal(t, 0, summary.ItemCount)
}

func TestSummarize(t *testing.T) {
	now := time.Now()
	bills := []entity.Bill{
		billAt(now, 1050, 3),
		billAt(now, 2000, 1),
		billAt(now, 951, 2),
	}

	summary := Summarize(bills)

	assert.Equal(t, int64(4001), summary.TotalSalesCents)
	assert.Equal(t, 3, summary.BillCount)
	// 4001 / 3 = 1333.67, rounded to the nearest cent.
	assert.Equal(t, int64(1334), summary.AverageBillCents)
	assert.Equal(t, 6, summary.ItemCount)
}

func TestSummarizeCountsLineEntriesNotQuantities(t *testing.T) {
	bill := billAt(time.Now(), 2697, 1)
	bill.Items[0].Quantity = 3

	summary := Summarize([]entity.Bill{bill})
	assert.Equal(t, 1, summary.ItemCount)
}

func TestGetListingCapsAtRecentLimit(t *testing.T) {
	f := newBillingFixture(t)
	reports := NewReportService(f.billing.billRepo)

	for i := 0; i < RecentListingLimit+10; i++ {
		f.cart.Clear()
		f.addToCart(t, "Coffee", 250, 1)
		_, err := f.billing.FinalizeBill(context.Background(), f.cashier.ID, &FinalizeBillInput{})
		require.NoError(t, err)
	}

	listing, err := reports.GetListing(context.Background(), enum.PeriodAll, time.Now())
	require.NoError(t, err)
	require.Len(t, listing, RecentListingLimit)

	// Most recently inserted first.
	assert.Equal(t, "BILL0060", listing[0].BillNo)
	assert.Equal(t, "BILL0011", listing[RecentListingLimit-1].BillNo)

	// The summary is never capped.
	summary, err := reports.GetSummary(context.Background(), enum.PeriodAll, time.Now())
	require.NoError(t, err)
	assert.Equal(t, RecentListingLimit+10, summary.BillCount)
	assert.Equal(t, int64(60*262), summary.TotalSalesCents)
}
