package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"

	"garment-ledger/internal/storage"
)

type AdvanceSaver interface {
	SaveAdvance(ctx context.Context, req storage.SaveAdvance) error
}

func SaveAdvanceOperation(log *slog.Logger, saver AdvanceSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.advances.SaveAdvanceOperation"

		var req storage.SaveAdvance
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
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
		if _, err := time.Parse("2006-01-02", req.AdvanceDate); err != nil {
			http.Error(w, "invalid advance date", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := saver.SaveAdvance(ctx, req); err != nil {
			log.Error("Failed to save advance", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("Advance recorded", slog.String("worker", req.WorkerName))

		render.JSON(w, r, map[string]interface{}{"status": "success"})
	}
}
