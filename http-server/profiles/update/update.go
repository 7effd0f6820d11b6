package update

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

type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, id int64, req storage.SaveProfile) error
}

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

func UpdateProfileOperation(log *slog.Logger, updater ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.profiles.UpdateProfileOperation"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		var req storage.SaveProfile
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
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

		if err := updater.UpdateProfile(ctx, id, req); err != nil {
			if strings.Contains(err.Error(), "not found") {
				http.Error(w, "Profile not found", http.StatusNotFound)
				return
			}
			log.Error("Failed to update profile", slog.String("op", op), slog.Int64("id", id), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("Profile updated", slog.Int64("id", id))

		render.JSON(w, r, map[string]interface{}{"status": "success", "profile_id": id})
	}
}
