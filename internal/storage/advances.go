package storage

import (
	"time"

	"github.com/shopspring/decimal"
)

// Advance is the standing advance book, a separate record from the
// per-entry advance adjustment. The two are not reconciled.
type Advance struct {
	ID          int64           `json:"id"`
	WorkerName  string          `json:"labour_name"`
	Amount      decimal.Decimal `json:"advance_amount"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
	AdvanceDate time.Time       `json:"advance_date"`
	Notes       string          `json:"notes,omitempty"`
}

func (a Advance) Balance() decimal.Decimal {
	return a.Amount.Sub(a.PaidAmount)
}

// Settled reports whether the advance is fully repaid (balance <= 0).
func (a Advance) Settled() bool {
	return !a.Balance().IsPositive()
}

type SaveAdvance struct {
	WorkerName  string          `json:"labour_name"`
	Amount      decimal.Decimal `json:"advance_amount"`
	AdvanceDate string          `json:"advance_date"`
	Notes       string          `json:"notes"`
}

type UpdateAdvance struct {
	WorkerName  string          `json:"labour_name"`
	Amount      decimal.Decimal `json:"advance_amount"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
	AdvanceDate string          `json:"advance_date"`
	Notes       string          `json:"notes"`
}
