package payroll

import (
	"strings"

	"github.com/shopspring/decimal"

	"garment-ledger/internal/storage"
)

// WorkerSummary aggregates every entry of one worker inside the selected
// week. Computed fresh on every read, never stored.
type WorkerSummary struct {
	WorkerName   string          `json:"worker_name"`
	WorkCount    int             `json:"work_count"`
	TotalSalary  decimal.Decimal `json:"total_salary"`
	Advance      decimal.Decimal `json:"advance"`
	ESIDeduction decimal.Decimal `json:"esi_deduction"`
	CarryOver    decimal.Decimal `json:"carry_over"`
	ExtraAmount  decimal.Decimal `json:"extra_amount"`
	FinalPayable decimal.Decimal `json:"final_payable"`
	PhoneNumber  string          `json:"phone_number,omitempty"`
	Works        []storage.Entry `json:"works"`
}

// IdentityKey is the single place worker identity is derived from a name.
// Exact match after trimming: case or inner-whitespace variants are distinct
// workers on purpose.
func IdentityKey(name string) string {
	return strings.TrimSpace(name)
}

// FinalPayable is the one formula the business trusts:
// salary − advance − ESI + carry-over + extra. Advance and ESI are always
// subtracted; carry-over and extra carry their own sign.
func FinalPayable(salary, advance, esi, carryOver, extra decimal.Decimal) decimal.Decimal {
	return salary.Sub(advance).Sub(esi).Add(carryOver).Add(extra)
}

// GroupByWorker folds entries into one summary per worker identity, in
// first-encounter order. Sums use full decimal precision; rounding happens
// only at presentation.
func GroupByWorker(entries []storage.Entry) []WorkerSummary {
	byKey := make(map[string]int)
	var groups []WorkerSummary

	for _, e := range entries {
		key := IdentityKey(e.WorkerName)
		idx, ok := byKey[key]
		if !ok {
			idx = len(groups)
			byKey[key] = idx
			groups = append(groups, WorkerSummary{
				WorkerName:   key,
				TotalSalary:  decimal.Zero,
				Advance:      decimal.Zero,
				ESIDeduction: decimal.Zero,
				CarryOver:    decimal.Zero,
				ExtraAmount:  decimal.Zero,
			})
		}

		g := &groups[idx]
		g.WorkCount++
		g.TotalSalary = g.TotalSalary.Add(e.LineTotal)
		g.Advance = g.Advance.Add(e.Advance)
		g.ESIDeduction = g.ESIDeduction.Add(e.ESIDeduction)
		g.CarryOver = g.CarryOver.Add(e.CarryOver)
		g.ExtraAmount = g.ExtraAmount.Add(e.ExtraAmount)
		if g.PhoneNumber == "" && e.PhoneNumber != "" {
			g.PhoneNumber = e.PhoneNumber
		}
		g.Works = append(g.Works, e)
	}

	for i := range groups {
		g := &groups[i]
		g.FinalPayable = FinalPayable(g.TotalSalary, g.Advance, g.ESIDeduction, g.CarryOver, g.ExtraAmount)
	}

	return groups
}

// Totals over a set of worker summaries, for the report footer.
type Totals struct {
	TotalSalary  decimal.Decimal `json:"total_salary"`
	TotalAdvance decimal.Decimal `json:"total_advance"`
	TotalPayout  decimal.Decimal `json:"total_payout"`
}

func SumTotals(groups []WorkerSummary) Totals {
	t := Totals{
		TotalSalary:  decimal.Zero,
		TotalAdvance: decimal.Zero,
		TotalPayout:  decimal.Zero,
	}
	for _, g := range groups {
		t.TotalSalary = t.TotalSalary.Add(g.TotalSalary)
		t.TotalAdvance = t.TotalAdvance.Add(g.Advance)
		t.TotalPayout = t.TotalPayout.Add(g.FinalPayable)
	}
	return t
}
