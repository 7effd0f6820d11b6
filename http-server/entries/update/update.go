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

type EntryUpdater interface {
	UpdateEntry(ctx context.Context, id int64, req storage.UpdateEntry) error
}

// UpdateEntryOperation edits one work row. The line total is recomputed in
// the storage layer, never taken from the client.
func UpdateEntryOperation(log *slog.Logger, updater EntryUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.entries.UpdateEntryOperation"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		var req storage.UpdateEntry
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		req.IONumber = strings.TrimSpace(req.IONumber)
		req.WorkType = strings.TrimSpace(req.WorkType)
		if req.IONumber == "" || req.WorkType == "" {
			http.Error(w, "io number and work type are required", http.StatusBadRequest)
			return
		}
		if req.Pieces < 0 || req.RatePerPiece.IsNegative() {
			http.Error(w, "pieces and rate must not be negative", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := updater.UpdateEntry(ctx, id, req); err != nil {
			if strings.Contains(err.Error(), "not found") {
				http.Error(w, "Entry not found", http.StatusNotFound)
				return
			}
			log.Error("Failed to update entry", slog.String("op", op), slog.Int64("id", id), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("Entry updated", slog.Int64("id", id))

		render.JSON(w, r, map[string]interface{}{
			"status":   "success",
			"entry_id": id,
		})
	}
}
