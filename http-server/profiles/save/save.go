package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"garment-ledger/internal/storage"
)

type ProfileSaver interface {
	SaveProfile(ctx context.Context, req storage.SaveProfile) error
	SaveSalaryHistory(ctx context.Context, profileID int64, req storage.SaveSalaryHistory) error
}

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

func SaveProfileOperation(log *slog.Logger, saver ProfileSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.profiles.SaveProfileOperation"

		var req storage.SaveProfile
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
		if req.Name == "" {
			http.Error(w, "labour name is required", http.StatusBadRequest)
			return
		}
		if !phonePattern.MatchString(req.PhoneNumber) {
			http.Error(w, "phone number must be 10 digits", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := saver.SaveProfile(ctx, req); err != nil {
			log.Error("Failed to save profile", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("Profile saved", slog.String("name", req.Name))

		render.JSON(w, r, map[string]interface{}{"status": "success"})
	}
}

// SaveSalaryHistoryOperation records one settled week for a profile. Week
// boundaries arrive from the client as dates; they are validated here, not
// recomputed, so a correction for a past week stays possible.
func SaveSalaryHistoryOperation(log *slog.Logger, saver ProfileSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.profiles.SaveSalaryHistoryOperation"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		var req storage.SaveSalaryHistory
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		start, err := time.Parse("2006-01-02", req.WeekStart)
		if err != nil {
			http.Error(w, "invalid week start date", http.StatusBadRequest)
			return
		}
		end, err := time.Parse("2006-01-02", req.WeekEnd)
		if err != nil {
			http.Error(w, "invalid week end date", http.StatusBadRequest)
			return
		}
		if end.Before(start) {
			http.Error(w, "week end must not be before week start", http.StatusBadRequest)
			return
		}
		if req.WeeklySalary.IsNegative() || req.WeeklyAdvance.IsNegative() || req.AdvancePaid.IsNegative() {
			http.Error(w, "amounts must not be negative", http.StatusBadRequest)
			return
		}
		req.Notes = strings.TrimSpace(req.Notes)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := saver.SaveSalaryHistory(ctx, id, req); err != nil {
			log.Error("Failed to save salary history", slog.String("op", op), slog.Int64("profile_id", id), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("Salary history saved", slog.Int64("profile_id", id), slog.String("week_start", req.WeekStart))

		render.JSON(w, r, map[string]interface{}{"status": "success", "profile_id": id})
	}
}
