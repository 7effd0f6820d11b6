package generate_excel

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

type PayoutRegisterHandler interface {
	PayoutRegister(ctx context.Context, weekIndex int, now time.Time) ([]byte, string, error)
}

// GenerateReportExcel streams the payout register for the selected week as
// an xlsx attachment. ?week= is the same index the grouped entries view
// uses (0 = current week).
func GenerateReportExcel(log *slog.Logger, gen PayoutRegisterHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.GenerateReportExcel"

		weekIndex := 0
		if raw := r.URL.Query().Get("week"); raw != "" {
			idx, err := strconv.Atoi(raw)
			if err != nil || idx < 0 {
				http.Error(w, "invalid week", http.StatusBadRequest)
				return
			}
			weekIndex = idx
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		excelBytes, fileName, err := gen.PayoutRegister(ctx, weekIndex, time.Now())
		if err != nil {
			log.Error("failed to generate excel", "op", op, "err", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		w.Write(excelBytes)
	}
}
