package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"golang.org/x/sync/errgroup"

	"garment-ledger/internal/service/payroll"
	"garment-ledger/internal/storage"
)

type ProfilesProvider interface {
	GetProfiles(ctx context.Context, query string) ([]storage.Profile, error)
	GetProfile(ctx context.Context, id int64) (*storage.Profile, error)
	GetSalaryHistory(ctx context.Context, profileID int64) ([]storage.SalaryHistory, error)
	GetAdvancesByWorker(ctx context.Context, workerName string) ([]storage.Advance, error)
}

func GetProfiles(log *slog.Logger, provider ProfilesProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.profiles.GetProfiles"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		profiles, err := provider.GetProfiles(ctx, r.URL.Query().Get("q"))
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to fetch profiles")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, profiles)
	}
}

type SalaryHistoryResponse struct {
	Profile  *storage.Profile        `json:"profile"`
	Weeks    []payroll.Week          `json:"weeks"`
	History  []storage.SalaryHistory `json:"history"`
	Advances []storage.Advance       `json:"advances"`
}

// GetSalaryHistory returns a profile's settled weeks alongside its standing
// advances. History and advances are independent queries, fetched
// concurrently. ?week= is an index into the returned week list; absent
// means all weeks. This view keeps its historical Wednesday anchor.
func GetSalaryHistory(log *slog.Logger, provider ProfilesProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.profiles.GetSalaryHistory"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		profile, err := provider.GetProfile(ctx, id)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to fetch profile")
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}

		var (
			history  []storage.SalaryHistory
			advances []storage.Advance
		)

		grp, grpCtx := errgroup.WithContext(ctx)
		grp.Go(func() error {
			var err error
			history, err = provider.GetSalaryHistory(grpCtx, id)
			return err
		})
		grp.Go(func() error {
			var err error
			advances, err = provider.GetAdvancesByWorker(grpCtx, profile.Name)
			return err
		})
		if err := grp.Wait(); err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to fetch salary history")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		weeks := historyWeeks(history, time.Now())

		if raw := r.URL.Query().Get("week"); raw != "" {
			idx, err := strconv.Atoi(raw)
			if err != nil || idx < 0 || idx >= len(weeks) {
				http.Error(w, "Invalid week", http.StatusBadRequest)
				return
			}
			history = filterHistory(history, weeks[idx])
		}

		render.JSON(w, r, SalaryHistoryResponse{
			Profile:  profile,
			Weeks:    weeks,
			History:  history,
			Advances: advances,
		})
	}
}

// historyWeeks enumerates selectable weeks from the stored week-start
// dates, current week always first even when it has no rows.
func historyWeeks(history []storage.SalaryHistory, now time.Time) []payroll.Week {
	current := payroll.WeekRange(now, payroll.AdvancesAnchor)
	current.Label = "Current Week"

	seen := map[int64]bool{current.Start.Unix(): true}
	weeks := []payroll.Week{current}

	for _, h := range history {
		w := payroll.WeekRange(h.WeekStart, payroll.AdvancesAnchor)
		if seen[w.Start.Unix()] {
			continue
		}
		seen[w.Start.Unix()] = true
		w.Label = "Week " + strconv.Itoa(len(weeks))
		weeks = append(weeks, w)
	}

	return weeks
}

// filterHistory keeps rows whose recorded week overlaps the selected one.
func filterHistory(history []storage.SalaryHistory, week payroll.Week) []storage.SalaryHistory {
	var out []storage.SalaryHistory
	for _, h := range history {
		if !h.WeekStart.After(week.End) && !h.WeekEnd.Before(week.Start) {
			out = append(out, h)
		}
	}
	return out
}
