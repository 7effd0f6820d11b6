package delete

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"garment-ledger/internal/service/payroll"
	"garment-ledger/internal/storage"
)

type EntryDeleter interface {
	GetAllEntries(ctx context.Context) ([]storage.Entry, error)
	DeleteEntry(ctx context.Context, id int64) error
	DeleteEntriesByIDs(ctx context.Context, ids []int64) error
	DeleteAllEntries(ctx context.Context) error
}

func DeleteEntryOperation(log *slog.Logger, deleter EntryDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.entries.DeleteEntryOperation"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := deleter.DeleteEntry(ctx, id); err != nil {
			log.Error("Failed to delete entry", slog.String("op", op), slog.Int64("id", id), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{"status": "success", "entry_id": id})
	}
}

// DeleteWorkerEntries removes every entry of one worker inside the selected
// week, and nothing else: the id set is resolved against the same grouping
// rules the list view uses, then deleted in one statement.
func DeleteWorkerEntries(log *slog.Logger, deleter EntryDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.entries.DeleteWorkerEntries"

		workerName := payroll.IdentityKey(chi.URLParam(r, "name"))
		if workerName == "" {
			http.Error(w, "Labour name is required", http.StatusBadRequest)
			return
		}

		weekIndex := 0
		if raw := r.URL.Query().Get("week"); raw != "" {
			idx, err := strconv.Atoi(raw)
			if err != nil || idx < 0 {
				http.Error(w, "Invalid week", http.StatusBadRequest)
				return
			}
			weekIndex = idx
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		entries, err := deleter.GetAllEntries(ctx)
		if err != nil {
			log.Error("Failed to fetch entries", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		weeks := payroll.Weeks(entries, time.Now(), payroll.EntriesAnchor)
		if weekIndex >= len(weeks) {
			http.Error(w, "Invalid week", http.StatusBadRequest)
			return
		}

		var ids []int64
		for _, e := range payroll.FilterWeek(entries, weeks[weekIndex]) {
			if payroll.IdentityKey(e.WorkerName) == workerName {
				ids = append(ids, e.ID)
			}
		}

		if err := deleter.DeleteEntriesByIDs(ctx, ids); err != nil {
			log.Error("Failed to delete worker entries", slog.String("op", op),
				slog.String("worker", workerName), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("Worker entries deleted", slog.String("worker", workerName), slog.Int("count", len(ids)))

		render.JSON(w, r, map[string]interface{}{
			"status":  "success",
			"worker":  workerName,
			"deleted": len(ids),
		})
	}
}

func DeleteAllEntriesOperation(log *slog.Logger, deleter EntryDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.entries.DeleteAllEntriesOperation"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := deleter.DeleteAllEntries(ctx); err != nil {
			log.Error("Failed to delete all entries", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("All entries deleted")

		render.JSON(w, r, map[string]interface{}{"status": "success"})
	}
}
