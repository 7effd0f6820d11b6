package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"garment-ledger/internal/service/payroll"
	"garment-ledger/internal/storage"
)

type EntriesProvider interface {
	GetAllEntries(ctx context.Context) ([]storage.Entry, error)
}

type WeekSummary struct {
	Week    payroll.Week            `json:"week"`
	Labours []payroll.WorkerSummary `json:"labours"`
	Totals  payroll.Totals          `json:"totals"`
}

// GetWeeklyReport returns one summary per selectable week, current week
// first (present even when it has no records), past weeks most recent
// first.
func GetWeeklyReport(log *slog.Logger, provider EntriesProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.weekly-report.GetWeeklyReport"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		entries, err := provider.GetAllEntries(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to fetch entries")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		weeks := payroll.Weeks(entries, time.Now(), payroll.EntriesAnchor)

		summaries := make([]WeekSummary, 0, len(weeks))
		for _, week := range weeks {
			groups := payroll.GroupByWorker(payroll.FilterWeek(entries, week))
			summaries = append(summaries, WeekSummary{
				Week:    week,
				Labours: groups,
				Totals:  payroll.SumTotals(groups),
			})
		}

		render.JSON(w, r, summaries)
	}
}
