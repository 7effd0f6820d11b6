package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"

	"garment-ledger/internal/service/payroll"
	"garment-ledger/internal/storage"
)

type EntriesProvider interface {
	GetAllEntries(ctx context.Context) ([]storage.Entry, error)
}

type GroupedResponse struct {
	Weeks        []payroll.Week          `json:"weeks"`
	SelectedWeek int                     `json:"selected_week"`
	Labours      []payroll.WorkerSummary `json:"labours"`
	Totals       payroll.Totals          `json:"totals"`
}

// GetEntriesGrouped returns the selected week's entries folded into one
// summary per worker, plus the selectable week list. ?week= is an index
// into that list, 0 (the current week) by default.
func GetEntriesGrouped(log *slog.Logger, provider EntriesProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.entries.GetEntriesGrouped"

		weekIndex, err := weekParam(r)
		if err != nil {
			http.Error(w, "Invalid week", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		entries, err := provider.GetAllEntries(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to fetch entries")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		weeks := payroll.Weeks(entries, time.Now(), payroll.EntriesAnchor)
		if weekIndex >= len(weeks) {
			http.Error(w, "Invalid week", http.StatusBadRequest)
			return
		}

		groups := payroll.GroupByWorker(payroll.FilterWeek(entries, weeks[weekIndex]))

		render.JSON(w, r, GroupedResponse{
			Weeks:        weeks,
			SelectedWeek: weekIndex,
			Labours:      groups,
			Totals:       payroll.SumTotals(groups),
		})
	}
}

func weekParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("week")
	if raw == "" {
		return 0, nil
	}

	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 {
		return 0, strconv.ErrSyntax
	}
	return idx, nil
}
