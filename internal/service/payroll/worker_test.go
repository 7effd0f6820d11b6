package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garment-ledger/internal/storage"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func workEntry(name string, lineTotal string) storage.Entry {
	return storage.Entry{
		WorkerName:   name,
		LineTotal:    dec(lineTotal),
		Advance:      decimal.Zero,
		ESIDeduction: decimal.Zero,
		CarryOver:    decimal.Zero,
		ExtraAmount:  decimal.Zero,
		CreatedAt:    time.Date(2026, 1, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestWorkItem_LineTotal(t *testing.T) {
	work := storage.WorkItem{Pieces: 12, RatePerPiece: dec("15.50")}

	assert.True(t, work.LineTotal().Equal(dec("186.00")),
		"got %s", work.LineTotal())
}

func TestFinalPayable_Formula(t *testing.T) {
	// salary 500, advance 100, ESI 20, carry-over -30, extra 10 -> 360
	got := FinalPayable(dec("500"), dec("100"), dec("20"), dec("-30"), dec("10"))

	assert.True(t, got.Equal(dec("360")), "got %s", got)
}

func TestGroupByWorker_SumsAndCounts(t *testing.T) {
	first := workEntry("Ravi", "120.50")
	first.Advance = dec("100")
	first.ESIDeduction = dec("20")
	first.CarryOver = dec("-30")
	first.ExtraAmount = dec("10")
	first.PhoneNumber = "9876543210"

	entries := []storage.Entry{
		first,
		workEntry("Ravi", "379.50"),
		workEntry("Sita", "200"),
	}

	groups := GroupByWorker(entries)

	require.Len(t, groups, 2)

	ravi := groups[0]
	assert.Equal(t, "Ravi", ravi.WorkerName)
	assert.Equal(t, 2, ravi.WorkCount)
	assert.True(t, ravi.TotalSalary.Equal(dec("500")), "got %s", ravi.TotalSalary)
	assert.True(t, ravi.FinalPayable.Equal(dec("360")), "got %s", ravi.FinalPayable)
	assert.Equal(t, "9876543210", ravi.PhoneNumber)

	sita := groups[1]
	assert.Equal(t, 1, sita.WorkCount)
	assert.True(t, sita.FinalPayable.Equal(dec("200")))
}

func TestGroupByWorker_FirstPhoneWins(t *testing.T) {
	a := workEntry("Ravi", "10")
	a.PhoneNumber = "9000000001"
	b := workEntry("Ravi", "10")
	b.PhoneNumber = "9000000002"

	groups := GroupByWorker([]storage.Entry{workEntry("Ravi", "10"), a, b})

	require.Len(t, groups, 1)
	assert.Equal(t, "9000000001", groups[0].PhoneNumber)
}

func TestGroupByWorker_CaseVariantsAreDistinct(t *testing.T) {
	groups := GroupByWorker([]storage.Entry{
		workEntry("Ravi", "10"),
		workEntry("ravi", "20"),
		workEntry("  Ravi ", "30"), // trimmed into the first group
	})

	require.Len(t, groups, 2)
	assert.Equal(t, "Ravi", groups[0].WorkerName)
	assert.True(t, groups[0].TotalSalary.Equal(dec("40")))
	assert.Equal(t, "ravi", groups[1].WorkerName)
}

func TestGroupByWorker_Idempotent(t *testing.T) {
	entries := []storage.Entry{
		workEntry("Ravi", "120.50"),
		workEntry("Sita", "200"),
		workEntry("Ravi", "79.50"),
	}

	first := GroupByWorker(entries)
	second := GroupByWorker(entries)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].WorkerName, second[i].WorkerName)
		assert.Equal(t, first[i].WorkCount, second[i].WorkCount)
		assert.True(t, first[i].TotalSalary.Equal(second[i].TotalSalary))
		assert.True(t, first[i].FinalPayable.Equal(second[i].FinalPayable))
	}
}

func TestSumTotals(t *testing.T) {
	first := workEntry("Ravi", "500")
	first.Advance = dec("100")

	totals := SumTotals(GroupByWorker([]storage.Entry{first, workEntry("Sita", "200")}))

	assert.True(t, totals.TotalSalary.Equal(dec("700")), "got %s", totals.TotalSalary)
	assert.True(t, totals.TotalAdvance.Equal(dec("100")))
	assert.True(t, totals.TotalPayout.Equal(dec("600")), "got %s", totals.TotalPayout)
}
