package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garment-ledger/internal/storage"
)

func entryAt(name string, createdAt time.Time) storage.Entry {
	return storage.Entry{WorkerName: name, CreatedAt: createdAt}
}

func TestWeekRange_MondayAnchor(t *testing.T) {
	// Wednesday 14 Jan 2026
	date := time.Date(2026, 1, 14, 15, 30, 0, 0, time.UTC)

	week := WeekRange(date, time.Monday)

	assert.Equal(t, time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC), week.Start)
	assert.Equal(t, time.Monday, week.Start.Weekday())
	assert.Equal(t, time.Sunday, week.End.Weekday())
	assert.True(t, week.Contains(date))
}

func TestWeekRange_AnchorDayStartsItsOwnWeek(t *testing.T) {
	// Wednesday at midnight with a Wednesday anchor: the week starts today,
	// not seven days ago.
	date := time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC)

	week := WeekRange(date, time.Wednesday)

	assert.Equal(t, date, week.Start)
}

func TestWeekRange_WednesdayAnchorBeforeAnchorDay(t *testing.T) {
	// Monday 12 Jan 2026: the Wednesday-anchored week began the previous
	// Wednesday, 7 Jan.
	date := time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC)

	week := WeekRange(date, time.Wednesday)

	assert.Equal(t, time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC), week.Start)
}

func TestWeek_BoundariesAreInclusive(t *testing.T) {
	week := WeekRange(time.Date(2026, 1, 14, 12, 0, 0, 0, time.UTC), time.Monday)

	assert.True(t, week.Contains(week.Start))
	assert.True(t, week.Contains(week.End))

	// One millisecond before the start belongs to the previous week.
	justBefore := week.Start.Add(-time.Millisecond)
	assert.False(t, week.Contains(justBefore))
	previous := WeekRange(justBefore, time.Monday)
	assert.True(t, previous.Contains(justBefore))
	assert.Equal(t, week.Start.AddDate(0, 0, -7), previous.Start)
}

func TestWeeks_EmptySetStillHasCurrentWeek(t *testing.T) {
	now := time.Date(2026, 1, 14, 12, 0, 0, 0, time.UTC)

	weeks := Weeks(nil, now, time.Monday)

	require.Len(t, weeks, 1)
	assert.Equal(t, "Current Week", weeks[0].Label)
	assert.True(t, weeks[0].Contains(now))
}

func TestWeeks_PastWeeksSortedMostRecentFirst(t *testing.T) {
	now := time.Date(2026, 1, 14, 12, 0, 0, 0, time.UTC)
	entries := []storage.Entry{
		entryAt("a", now.AddDate(0, 0, -21)),
		entryAt("b", now.AddDate(0, 0, -7)),
		entryAt("c", now.AddDate(0, 0, -14)),
		entryAt("d", now), // current week, never duplicated in the list
	}

	weeks := Weeks(entries, now, time.Monday)

	require.Len(t, weeks, 4)
	assert.Equal(t, "Current Week", weeks[0].Label)
	assert.Equal(t, "Week 1", weeks[1].Label)
	assert.Equal(t, "Week 2", weeks[2].Label)
	assert.Equal(t, "Week 3", weeks[3].Label)
	for i := 1; i < len(weeks); i++ {
		assert.True(t, weeks[i-1].Start.After(weeks[i].Start))
	}
}

func TestFilterWeek(t *testing.T) {
	now := time.Date(2026, 1, 14, 12, 0, 0, 0, time.UTC)
	week := WeekRange(now, time.Monday)

	entries := []storage.Entry{
		entryAt("in", now),
		entryAt("edge", week.Start),
		entryAt("out", week.Start.Add(-time.Hour)),
	}

	filtered := FilterWeek(entries, week)

	require.Len(t, filtered, 2)
	assert.Equal(t, "in", filtered[0].WorkerName)
	assert.Equal(t, "edge", filtered[1].WorkerName)
}
