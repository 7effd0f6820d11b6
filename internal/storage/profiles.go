package storage

import (
	"time"

	"github.com/shopspring/decimal"
)

type Profile struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
}

type SaveProfile struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

// SalaryHistory is one settled week for a profile, written when the payout
// is handed over. Week boundaries come from the advances-view anchor.
type SalaryHistory struct {
	ID            int64           `json:"id"`
	ProfileID     int64           `json:"profile_id"`
	WeeklySalary  decimal.Decimal `json:"weekly_salary"`
	WeeklyAdvance decimal.Decimal `json:"weekly_advance"`
	AdvancePaid   decimal.Decimal `json:"advance_paid"`
	WeekStart     time.Time       `json:"week_start_date"`
	WeekEnd       time.Time       `json:"week_end_date"`
	Notes         string          `json:"notes,omitempty"`
}

type SaveSalaryHistory struct {
	WeeklySalary  decimal.Decimal `json:"weekly_salary"`
	WeeklyAdvance decimal.Decimal `json:"weekly_advance"`
	AdvancePaid   decimal.Decimal `json:"advance_paid"`
	WeekStart     string          `json:"week_start_date"`
	WeekEnd       string          `json:"week_end_date"`
	Notes         string          `json:"notes"`
}
