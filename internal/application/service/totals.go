package service

import (
	"encoding/json"

	"github.com/okalang/dinebill-api/pkg/utils"
)

// BillTotals holds the tax-inclusive totals for a set of cart lines.
// All figures are integer cents.
type BillTotals struct {
	SubTotalCents int64
	Tax1Cents     int64
	Tax2Cents     int64
	TotalCents    int64
}

// MarshalJSON renders the totals as 2-dp decimals
func (t BillTotals) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		SubTotal float64 `json:"sub_total"`
		Tax1     float64 `json:"tax1"`
		Tax2     float64 `json:"tax2"`
		Total    float64 `json:"total"`
	}{
		SubTotal: utils.ToDecimal(t.SubTotalCents),
		Tax1:     utils.ToDecimal(t.Tax1Cents),
		Tax2:     utils.ToDecimal(t.Tax2Cents),
		Total:    utils.ToDecimal(t.TotalCents),
	})
}

// ComputeTotals derives subtotal, both tax components and the grand total
// from the given lines. It always recomputes from scratch - totals are
// never maintained incrementally, so they cannot drift from the lines.
func ComputeTotals(lines []CartLine, tax1Rate, tax2Rate float64) BillTotals {
	var subTotal int64
	for _, line := range lines {
		subTotal += line.TotalCents
	}

	tax1 := utils.PercentOf(subTotal, tax1Rate)
	tax2 := utils.PercentOf(subTotal, tax2Rate)

	return BillTotals{
		SubTotalCents: subTotal,
		Tax1Cents:     tax1,
		Tax2Cents:     tax2,
		TotalCents:    subTotal + tax1 + tax2,
	}
}
