package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"garment-ledger/internal/session"
)

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func Login(log *slog.Logger, sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.Login"

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		token, err := sessions.Login(req.Login, req.Password)
		if err != nil {
			if errors.Is(err, session.ErrBadCredentials) {
				log.Warn("Failed login attempt", slog.String("op", op), slog.String("login", req.Login))
				http.Error(w, "Invalid login or password", http.StatusUnauthorized)
				return
			}
			log.Error("Failed to create session", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{"token": token})
	}
}

func Logout(log *slog.Logger, sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get("Authorization")
		if strings.HasPrefix(h, "Bearer ") {
			sessions.Logout(strings.TrimSpace(h[len("Bearer "):]))
		}

		render.JSON(w, r, map[string]interface{}{"status": "success"})
	}
}
