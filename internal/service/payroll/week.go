// Package payroll is the aggregation core: pure functions that fold a flat
// slice of entries into per-week, per-worker and per-IO summaries. Nothing
// here touches the store, so every rule is unit-testable on an in-memory
// slice.
package payroll

import (
	"fmt"
	"sort"
	"time"

	"garment-ledger/internal/storage"
)

// Two views of the same data historically use two different week anchors.
// Kept as explicit parameters until the product owner collapses them.
const (
	EntriesAnchor  = time.Monday
	AdvancesAnchor = time.Wednesday
)

// Week is a 7-day bucket, inclusive on both ends.
type Week struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// WeekRange returns the week containing date: the most recent occurrence of
// anchor on or before date at 00:00:00, through six days later at the last
// instant of that day.
func WeekRange(date time.Time, anchor time.Weekday) Week {
	diff := (int(date.Weekday()) - int(anchor) + 7) % 7
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()).
		AddDate(0, 0, -diff)
	end := start.AddDate(0, 0, 7).Add(-time.Nanosecond)

	return Week{Start: start, End: end}
}

func (w Week) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

func (w Week) Equal(other Week) bool {
	return w.Start.Equal(other.Start)
}

// Weeks enumerates the selectable weeks for a record set. The current week
// is always first, even with zero records, so the UI has a default. Past
// weeks that have data follow, most recent first, with positional labels.
func Weeks(entries []storage.Entry, now time.Time, anchor time.Weekday) []Week {
	current := WeekRange(now, anchor)
	current.Label = "Current Week"

	seen := map[int64]bool{current.Start.Unix(): true}
	var past []Week

	for _, e := range entries {
		w := WeekRange(e.CreatedAt, anchor)
		if seen[w.Start.Unix()] {
			continue
		}
		seen[w.Start.Unix()] = true
		past = append(past, w)
	}

	// Most recent past week first. Labels are display positions, not
	// stable identities across refreshes.
	sort.Slice(past, func(i, j int) bool {
		return past[i].Start.After(past[j].Start)
	})
	for i := range past {
		past[i].Label = fmt.Sprintf("Week %d", i+1)
	}

	return append([]Week{current}, past...)
}

// FilterWeek keeps the entries whose creation time falls inside the week.
func FilterWeek(entries []storage.Entry, week Week) []storage.Entry {
	var out []storage.Entry
	for _, e := range entries {
		if week.Contains(e.CreatedAt) {
			out = append(out, e)
		}
	}
	return out
}
