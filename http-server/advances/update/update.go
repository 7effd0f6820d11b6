package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"garment-ledger/internal/storage"
)

type AdvanceUpdater interface {
	UpdateAdvance(ctx context.Context, id int64, req storage.UpdateAdvance) error
}

// UpdateAdvanceOperation edits an advance, including the cumulative
// paid-back amount; repaying past the full amount settles the entry.
func UpdateAdvanceOperation(log *slog.Logger, updater AdvanceUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.advances.UpdateAdvanceOperation"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		var req storage.UpdateAdvance
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		req.WorkerName = strings.TrimSpace(req.WorkerName)
		req.Notes = strings.TrimSpace(req.Notes)
		if req.WorkerName == "" {
			http.Error(w, "labour name is required", http.StatusBadRequest)
			return
		}
		if !req.Amount.IsPositive() {
			http.Error(w, "advance amount must be greater than zero", http.StatusBadRequest)
			return
		}
		if req.PaidAmount.IsNegative() {
			http.Error(w, "paid amount must not be negative", http.StatusBadRequest)
			return
		}
		if _, err := time.Parse("2006-01-02", req.AdvanceDate); err != nil {
			http.Error(w, "invalid advance date", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdateAdvance(ctx, id, req); err != nil {
			if strings.Contains(err.Error(), "not found") {
				http.Error(w, "Advance not found", http.StatusNotFound)
				return
			}
			log.Error("Failed to update advance", slog.String("op", op), slog.Int64("id", id), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("Advance updated", slog.Int64("id", id))

		render.JSON(w, r, map[string]interface{}{
			"status":     "success",
			"advance_id": id,
		})
	}
}
