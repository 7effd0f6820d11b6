package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"garment-ledger/internal/service/payroll"
	"garment-ledger/internal/storage"
)

type EntriesProvider interface {
	GetAllEntries(ctx context.Context) ([]storage.Entry, error)
}

// GetIOReport is the production-order projection over the full entry set,
// deliberately not week-filtered. ?q= narrows to IO numbers containing the
// substring, case-insensitive.
func GetIOReport(log *slog.Logger, provider EntriesProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.io-report.GetIOReport"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		entries, err := provider.GetAllEntries(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to fetch entries")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		groups := payroll.FilterIO(payroll.GroupByIO(entries), r.URL.Query().Get("q"))

		render.JSON(w, r, groups)
	}
}
