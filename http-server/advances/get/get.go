package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/shopspring/decimal"

	"garment-ledger/internal/storage"
)

type AdvancesProvider interface {
	GetAllAdvances(ctx context.Context) ([]storage.Advance, error)
}

type AdvancesResponse struct {
	Active  []storage.Advance `json:"active"`
	Settled []storage.Advance `json:"settled"`

	TotalAdvanced    decimal.Decimal `json:"total_advanced"`
	TotalPaidBack    decimal.Decimal `json:"total_paid_back"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
}

// GetAdvances returns the standing advance book split by balance: active
// while amount − paid > 0, settled otherwise.
func GetAdvances(log *slog.Logger, provider AdvancesProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.advances.GetAdvances"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		advances, err := provider.GetAllAdvances(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to fetch advances")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		resp := AdvancesResponse{
			Active:           []storage.Advance{},
			Settled:          []storage.Advance{},
			TotalAdvanced:    decimal.Zero,
			TotalPaidBack:    decimal.Zero,
			TotalOutstanding: decimal.Zero,
		}

		for _, a := range advances {
			if a.Settled() {
				resp.Settled = append(resp.Settled, a)
			} else {
				resp.Active = append(resp.Active, a)
				resp.TotalOutstanding = resp.TotalOutstanding.Add(a.Balance())
			}
			resp.TotalAdvanced = resp.TotalAdvanced.Add(a.Amount)
			resp.TotalPaidBack = resp.TotalPaidBack.Add(a.PaidAmount)
		}

		render.JSON(w, r, resp)
	}
}
