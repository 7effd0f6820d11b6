package save

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"

	"garment-ledger/internal/storage"
)

type EntrySaver interface {
	SaveEntries(ctx context.Context, req storage.SaveEntries) error
}

// SaveEntriesOperation accepts one submission batch: a worker plus N work
// lines. Any invalid field rejects the whole batch before the store is
// touched, naming the line and field that failed.
func SaveEntriesOperation(log *slog.Logger, saver EntrySaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.entries.SaveEntriesOperation"

		var req storage.SaveEntries
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		req.WorkerName = strings.TrimSpace(req.WorkerName)
		if req.WorkerName == "" {
			http.Error(w, "labour name is required", http.StatusBadRequest)
			return
		}

		if len(req.Works) == 0 {
			log.Warn("Empty work list on submission", slog.String("op", op), slog.String("worker", req.WorkerName))
			http.Error(w, "No works provided", http.StatusBadRequest)
			return
		}

		for i := range req.Works {
			work := &req.Works[i]
			work.IONumber = strings.TrimSpace(work.IONumber)
			work.WorkType = strings.TrimSpace(work.WorkType)

			if work.IONumber == "" {
				http.Error(w, fmt.Sprintf("work %d: io number is required", i), http.StatusBadRequest)
				return
			}
			if work.WorkType == "" {
				http.Error(w, fmt.Sprintf("work %d: work type is required", i), http.StatusBadRequest)
				return
			}
			if work.Pieces < 0 {
				http.Error(w, fmt.Sprintf("work %d: pieces must not be negative", i), http.StatusBadRequest)
				return
			}
			if work.RatePerPiece.IsNegative() {
				http.Error(w, fmt.Sprintf("work %d: rate must not be negative", i), http.StatusBadRequest)
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := saver.SaveEntries(ctx, req); err != nil {
			log.Error("Failed to save entries", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("Entries saved",
			slog.String("worker", req.WorkerName),
			slog.Int("works", len(req.Works)),
		)

		render.JSON(w, r, map[string]interface{}{
			"status": "success",
			"saved":  len(req.Works),
			"worker": req.WorkerName,
		})
	}
}
