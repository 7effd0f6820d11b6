package report

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"garment-ledger/internal/service/payroll"
	"garment-ledger/internal/storage"
)

type ExcelStorage interface {
	GetAllEntries(ctx context.Context) ([]storage.Entry, error)
}

type ExcelService struct {
	storage ExcelStorage
}

func NewExcelService(storage ExcelStorage) *ExcelService {
	return &ExcelService{storage: storage}
}

// PayoutRegister renders the selected week's worker summaries as a payout
// spreadsheet: one row per worker, the four adjustments broken out, a totals
// row at the bottom. weekIndex addresses the list returned by payroll.Weeks
// (0 = current week).
func (g *ExcelService) PayoutRegister(ctx context.Context, weekIndex int, now time.Time) ([]byte, string, error) {
	entries, err := g.storage.GetAllEntries(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("fetch entries: %w", err)
	}

	weeks := payroll.Weeks(entries, now, payroll.EntriesAnchor)
	if weekIndex < 0 || weekIndex >= len(weeks) {
		return nil, "", fmt.Errorf("week index %d out of range (%d weeks)", weekIndex, len(weeks))
	}
	week := weeks[weekIndex]

	groups := payroll.GroupByWorker(payroll.FilterWeek(entries, week))
	totals := payroll.SumTotals(groups)

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Payout Register"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	headers := []string{"#", "Labour", "Works", "Total Salary", "Advance",
		"ESI", "Carry Over", "Extra", "Final Payable", "Phone"}
	for i, name := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", lastCol, headerStyle)

	f.SetCellValue(sheet, "L1", "Week")
	f.SetCellValue(sheet, "M1", fmt.Sprintf("%s - %s",
		week.Start.Format("02 Jan 2006"), week.End.Format("02 Jan 2006")))

	for rowIdx, g := range groups {
		rowNum := rowIdx + 2
		f.SetCellValue(sheet, cellName(1, rowNum), rowIdx+1)
		f.SetCellValue(sheet, cellName(2, rowNum), g.WorkerName)
		f.SetCellValue(sheet, cellName(3, rowNum), g.WorkCount)
		f.SetCellValue(sheet, cellName(4, rowNum), g.TotalSalary.InexactFloat64())
		f.SetCellValue(sheet, cellName(5, rowNum), g.Advance.InexactFloat64())
		f.SetCellValue(sheet, cellName(6, rowNum), g.ESIDeduction.InexactFloat64())
		f.SetCellValue(sheet, cellName(7, rowNum), g.CarryOver.InexactFloat64())
		f.SetCellValue(sheet, cellName(8, rowNum), g.ExtraAmount.InexactFloat64())
		f.SetCellValue(sheet, cellName(9, rowNum), g.FinalPayable.InexactFloat64())
		f.SetCellValue(sheet, cellName(10, rowNum), g.PhoneNumber)
	}

	totalRow := len(groups) + 2
	f.SetCellValue(sheet, cellName(2, totalRow), "TOTAL")
	f.SetCellValue(sheet, cellName(4, totalRow), totals.TotalSalary.InexactFloat64())
	f.SetCellValue(sheet, cellName(5, totalRow), totals.TotalAdvance.InexactFloat64())
	f.SetCellValue(sheet, cellName(9, totalRow), totals.TotalPayout.InexactFloat64())
	startTotal, _ := excelize.CoordinatesToCellName(1, totalRow)
	endTotal, _ := excelize.CoordinatesToCellName(len(headers), totalRow)
	f.SetCellStyle(sheet, startTotal, endTotal, headerStyle)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("write workbook: %w", err)
	}

	fileName := fmt.Sprintf("Payout_Register_%s_%s.xlsx",
		week.Start.Format("2006-01-02"), now.Format("20060102_150405"))

	return buf.Bytes(), fileName, nil
}

func cellName(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return cell
}
