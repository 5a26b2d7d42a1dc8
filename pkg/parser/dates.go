package parser

import (
	"time"

	"github.com/xuri/excelize/v2"
)

// dateLayouts are tried in order; the first layout that yields a valid
// calendar date wins. MM/dd/yyyy before dd/MM/yyyy is deliberate: ambiguous
// values like 03/05/2024 resolve as March 5. First match, not best match.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
	"1/2/2006",
}

// ParseCellDate resolves a date-column cell. Numeric cells are spreadsheet
// serial dates in the 1900 date system; text cells run through the layout
// list. ok=false means the row carries no usable date and is skipped
// upstream as a spacer or summary row.
func ParseCellDate(cell Cell) (time.Time, bool) {
	switch cell.Kind {
	case CellNumber:
		if cell.Number <= 0 {
			return time.Time{}, false
		}
		t, err := excelize.ExcelDateToTime(cell.Number, false)
		if err != nil {
			return time.Time{}, false
		}
		return t, true

	case CellText:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, cell.Raw); err == nil {
				return t, true
			}
		}
	}

	return time.Time{}, false
}
