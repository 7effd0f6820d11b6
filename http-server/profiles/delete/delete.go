package delete

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type ProfileDeleter interface {
	DeleteProfile(ctx context.Context, id int64) error
}

// DeleteProfileOperation removes a profile together with its salary
// history. The advance book is untouched: it is keyed by name, not by
// profile, and stays a separate record.
func DeleteProfileOperation(log *slog.Logger, deleter ProfileDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.profiles.DeleteProfileOperation"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := deleter.DeleteProfile(ctx, id); err != nil {
			log.Error("Failed to delete profile", slog.String("op", op), slog.Int64("id", id), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{"status": "success", "profile_id": id})
	}
}
