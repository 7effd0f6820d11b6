package storage

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one unit of piece-rate work. The legacy store packed worker,
// IO number and work type into a single " | " label; here they are real
// columns (see internal/service/label for the import shim).
type Entry struct {
	ID           int64           `json:"id"`
	WorkerName   string          `json:"worker_name"`
	IONumber     string          `json:"io_number"`
	WorkType     string          `json:"work_type"`
	Pieces       int64           `json:"pieces"`
	Quantity     int64           `json:"quantity"`
	RatePerPiece decimal.Decimal `json:"rate_per_piece"`
	LineTotal    decimal.Decimal `json:"line_total"`
	Advance      decimal.Decimal `json:"advance"`
	ESIDeduction decimal.Decimal `json:"esi_deduction"`
	CarryOver    decimal.Decimal `json:"carry_over"`
	ExtraAmount  decimal.Decimal `json:"extra_amount"`
	PhoneNumber  string          `json:"phone_number,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// SaveEntries is one submission batch: one worker, N work lines.
// Adjustments and the phone number are written on the first line only so
// per-worker sums never double-count them.
type SaveEntries struct {
	WorkerName   string          `json:"worker_name"`
	PhoneNumber  string          `json:"phone_number"`
	Advance      decimal.Decimal `json:"advance"`
	ESIDeduction decimal.Decimal `json:"esi_deduction"`
	CarryOver    decimal.Decimal `json:"carry_over"`
	ExtraAmount  decimal.Decimal `json:"extra_amount"`
	Works        []WorkItem      `json:"works"`
}

type WorkItem struct {
	IONumber     string          `json:"io_number"`
	WorkType     string          `json:"work_type"`
	Pieces       int64           `json:"pieces"`
	RatePerPiece decimal.Decimal `json:"rate_per_piece"`
}

type UpdateEntry struct {
	IONumber     string          `json:"io_number"`
	WorkType     string          `json:"work_type"`
	Pieces       int64           `json:"pieces"`
	RatePerPiece decimal.Decimal `json:"rate_per_piece"`
}

// LineTotal is the stored pieces × rate product, rounded to 2 places.
func (w WorkItem) LineTotal() decimal.Decimal {
	return w.RatePerPiece.Mul(decimal.NewFromInt(w.Pieces)).Round(2)
}
