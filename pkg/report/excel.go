// Package report writes the descriptive-statistics tables to a spreadsheet
// so the run's summary travels alongside the PNG charts.
package report

import (
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/wdm0006/monsoon/pkg/rainfall"
)

var header = []string{"Group", "Count", "Mean", "Median", "Min", "Max", "Std Dev"}

// WriteWorkbook saves monthly, seasonal and yearly statistics to one XLSX
// file with a sheet per table.
func WriteWorkbook(path string, monthly, seasonal, yearly []rainfall.StatsRow) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheets := []struct {
		name string
		rows []rainfall.StatsRow
	}{
		{"Monthly", monthly},
		{"Seasonal", seasonal},
		{"Yearly", yearly},
	}

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.name); err != nil {
				return err
			}
		} else {
			if _, err := f.NewSheet(sheet.name); err != nil {
				return err
			}
		}
		if err := writeSheet(f, sheet.name, sheet.rows); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

func writeSheet(f *excelize.File, sheet string, rows []rainfall.StatsRow) error {
	for c, h := range header {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for r, row := range rows {
		values := []any{row.Key, row.Count}
		if row.Valid {
			values = append(values, cellValue(row.Mean), cellValue(row.Median),
				cellValue(row.Min), cellValue(row.Max), cellValue(row.StdDev))
		} else {
			values = append(values, nil, nil, nil, nil, nil)
		}
		for c, v := range values {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// cellValue keeps NaN out of the workbook; excelize cannot store it.
func cellValue(v float64) any {
	if math.IsNaN(v) {
		return nil
	}
	return v
}
