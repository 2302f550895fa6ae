package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/okalang/dinebill-api/internal/domain/entity"
	"github.com/okalang/dinebill-api/internal/domain/enum"
	"github.com/okalang/dinebill-api/internal/domain/repository"
	"github.com/okalang/dinebill-api/pkg/utils"
)

// RecentListingLimit caps the bill listing shown in reports. Summary
// statistics are never capped, only the listing.
const RecentListingLimit = 50

// ReportService aggregates stored bills into sales summaries
type ReportService struct {
	billRepo repository.BillRepository
}

// NewReportService creates a new report service
func NewReportService(billRepo repository.BillRepository) *ReportService {
	return &ReportService{billRepo: billRepo}
}

// PeriodStart returns the inclusive lower time boundary for a period
// relative to now. The zero time means "no boundary" (period all).
func PeriodStart(period enum.Period, now time.Time) time.Time {
	switch period {
	case enum.PeriodToday:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case enum.PeriodWeek:
		return now.AddDate(0, 0, -7)
	case enum.PeriodMonth:
		return now.AddDate(0, -1, 0)
	default:
		return time.Time{}
	}
}

// FilterByPeriod returns the bills created at or after the period boundary.
// Period "all" passes everything through.
func FilterByPeriod(bills []entity.Bill, period enum.Period, now time.Time) []entity.Bill {
	if period == enum.PeriodAll {
		return bills
	}

	start := PeriodStart(period, now)
	filtered := make([]entity.Bill, 0, len(bills))
	for _, bill := range bills {
		if !bill.CreatedAt.Before(start) {
			filtered = append(filtered, bill)
		}
	}
	return filtered
}

// Summary holds the reduction of a filtered bill set
type Summary struct {
	TotalSalesCents  int64
	BillCount        int
	AverageBillCents int64
	ItemCount        int
}

// MarshalJSON renders the monetary figures as 2-dp decimals
func (s Summary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		TotalSales  float64 `json:"total_sales"`
		BillCount   int     `json:"bill_count"`
		AverageBill float64 `json:"average_bill"`
		ItemCount   int     `json:"item_count"`
	}{
		TotalSales:  utils.ToDecimal(s.TotalSalesCents),
		BillCount:   s.BillCount,
		AverageBill: utils.ToDecimal(s.AverageBillCents),
		ItemCount:   s.ItemCount,
	})
}

// Summarize reduces a bill set to summary statistics. It is total over any
// input: an empty set yields all zeroes, never a division by zero.
//
// ItemCount counts line entries per bill, not summed quantities: a bill
// with one line of quantity 3 contributes 1.
func Summarize(bills []entity.Bill) Summary {
	var summary Summary
	for _, bill := range bills {
		summary.TotalSalesCents += bill.TotalCents
		summary.ItemCount += len(bill.Items)
	}
	summary.BillCount = len(bills)
	if summary.BillCount > 0 {
		n := int64(summary.BillCount)
		summary.AverageBillCents = (summary.TotalSalesCents + n/2) / n
	}
	return summary
}

// GetSummary reads the full bill collection and reduces the period's slice
// of it. The summary covers every matching bill, not just the listing cap.
func (s *ReportService) GetSummary(ctx context.Context, period enum.Period, now time.Time) (Summary, error) {
	bills, err := s.billRepo.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(FilterByPeriod(bills, period, now)), nil
}

// GetListing returns the period's bills for display, capped at the
// RecentListingLimit most recently inserted.
func (s *ReportService) GetListing(ctx context.Context, period enum.Period, now time.Time) ([]entity.Bill, error) {
	bills, err := s.billRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := FilterByPeriod(bills, period, now)

	// Most recent first, then cap.
	for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
		filtered[i], filtered[j] = filtered[j], filtered[i]
	}
	if len(filtered) > RecentListingLimit {
		filtered = filtered[:RecentListingLimit]
	}
	return filtered, nil
}

// GetBillsForExport returns the full filtered set for the export formatter
func (s *ReportService) GetBillsForExport(ctx context.Context, period enum.Period, now time.Time) ([]entity.Bill, error) {
	bills, err := s.billRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByPeriod(bills, period, now), nil
}
