package payroll

import (
	"sort"
	"strconv"
	"strings"

	"garment-ledger/internal/storage"
)

// IOSummary is the production-order view: the same entries regrouped by IO
// number, ignoring worker and (in the canonical report) week.
type IOSummary struct {
	IONumber      string           `json:"io_number"`
	TotalQuantity int64            `json:"total_quantity"`
	Contributions []IOContribution `json:"labours"`
}

type IOContribution struct {
	WorkerName string `json:"name"`
	WorkType   string `json:"work_type"`
	Pieces     int64  `json:"quantity"`
}

// GroupByIO groups entries by IO number. Entries without one (malformed
// legacy imports) are skipped. Contributions keep the input order; groups
// are sorted ascending by the numeric value of the IO number, non-numeric
// numbers sorting as 0, ties in encounter order.
func GroupByIO(entries []storage.Entry) []IOSummary {
	byIO := make(map[string]int)
	var groups []IOSummary

	for _, e := range entries {
		io := strings.TrimSpace(e.IONumber)
		if io == "" {
			continue
		}

		idx, ok := byIO[io]
		if !ok {
			idx = len(groups)
			byIO[io] = idx
			groups = append(groups, IOSummary{IONumber: io})
		}

		g := &groups[idx]
		g.TotalQuantity += e.Pieces
		g.Contributions = append(g.Contributions, IOContribution{
			WorkerName: IdentityKey(e.WorkerName),
			WorkType:   strings.TrimSpace(e.WorkType),
			Pieces:     e.Pieces,
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return ioNumeric(groups[i].IONumber) < ioNumeric(groups[j].IONumber)
	})

	return groups
}

// ioNumeric parses the IO number as an integer, 0 when it is not one.
// Non-numeric IOs clustering at the front is an accepted quirk.
func ioNumeric(io string) int64 {
	n, err := strconv.ParseInt(io, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// FilterIO keeps the groups whose IO number contains the query,
// case-insensitive. An empty query keeps everything.
func FilterIO(groups []IOSummary, query string) []IOSummary {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return groups
	}

	var out []IOSummary
	for _, g := range groups {
		if strings.Contains(strings.ToLower(g.IONumber), query) {
			out = append(out, g)
		}
	}
	return out
}
