package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"rosterkit/pkg/schema"
)

// WriteTemplate produces a blank roster workbook with the header layout the
// importer expects: a Date column followed by one column per employee, and
// one row per day starting at from.
func WriteTemplate(path string, employees []schema.Employee, from time.Time, days int) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	if err := setCell(f, sheet, 1, 1, "Date"); err != nil {
		return err
	}
	for i, emp := range employees {
		if err := setCell(f, sheet, i+2, 1, emp.Name); err != nil {
			return err
		}
	}

	for d := 0; d < days; d++ {
		value := from.AddDate(0, 0, d).Format("2006-01-02")
		if err := setCell(f, sheet, 1, d+2, value); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save template: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}
