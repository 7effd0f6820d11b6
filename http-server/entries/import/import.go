package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"
	"github.com/shopspring/decimal"

	"garment-ledger/internal/service/label"
	"garment-ledger/internal/storage"
)

type EntryImporter interface {
	ImportEntries(ctx context.Context, entries []storage.Entry) error
}

type LegacyRow struct {
	Label        string `json:"name"`
	Pieces       int64  `json:"pieces"`
	Quantity     int64  `json:"quantity"`
	RatePerPiece string `json:"rate_per_piece"`
}

type ImportRequest struct {
	Rows []LegacyRow `json:"rows"`
}

// ImportLegacyEntries accepts rows in the old composite-label format and
// inserts them as normalized entries. Short labels decode with defaults
// rather than failing the batch; a missing worker name is the one thing
// that rejects a row.
func ImportLegacyEntries(log *slog.Logger, importer EntryImporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.entries.ImportLegacyEntries"

		var req ImportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if len(req.Rows) == 0 {
			http.Error(w, "No rows provided", http.StatusBadRequest)
			return
		}

		entries := make([]storage.Entry, 0, len(req.Rows))
		for i, row := range req.Rows {
			fields := label.Decode(row.Label)
			if fields.WorkerName == "" {
				http.Error(w, fmt.Sprintf("row %d: labour name is required", i), http.StatusBadRequest)
				return
			}

			work := storage.WorkItem{IONumber: fields.IONumber, WorkType: fields.WorkType, Pieces: row.Pieces}
			if rate, err := parseRate(row.RatePerPiece); err == nil {
				work.RatePerPiece = rate
			} else {
				http.Error(w, fmt.Sprintf("row %d: invalid rate", i), http.StatusBadRequest)
				return
			}

			quantity := row.Quantity
			if quantity == 0 {
				quantity = 1
			}

			entries = append(entries, storage.Entry{
				WorkerName:   fields.WorkerName,
				IONumber:     fields.IONumber,
				WorkType:     fields.WorkType,
				Pieces:       row.Pieces,
				Quantity:     quantity,
				RatePerPiece: work.RatePerPiece,
				LineTotal:    work.LineTotal(),
				Advance:      fields.Advance,
				ESIDeduction: fields.ESIDeduction,
				CarryOver:    fields.CarryOver,
				ExtraAmount:  fields.ExtraAmount,
				PhoneNumber:  fields.PhoneNumber,
			})
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		if err := importer.ImportEntries(ctx, entries); err != nil {
			log.Error("Failed to import legacy rows", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("Legacy rows imported", slog.Int("count", len(entries)))

		render.JSON(w, r, map[string]interface{}{
			"status":   "success",
			"imported": len(entries),
		})
	}
}

func parseRate(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}
