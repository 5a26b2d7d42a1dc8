package parser

import (
	"fmt"
	"strings"

	"rosterkit/pkg/schema"
)

// headerScanRows bounds how deep into the sheet the header search looks.
// Sheets with more than a few preamble rows are considered malformed.
const headerScanRows = 5

// ParseRoster decodes a roster spreadsheet and extracts per-employee daily
// assignments. Structural problems (missing header, no employee columns,
// empty sheet) are reported through the result's Errors list and make the
// result unimportable; data-quality issues go to Warnings. The returned
// error is set only when the byte stream itself cannot be read.
func ParseRoster(data []byte, employees []schema.Employee, shifts []schema.Shift) (*schema.ParsedRosterData, error) {
	grid, err := DecodeGrid(data)
	if err != nil {
		return nil, err
	}

	result := &schema.ParsedRosterData{
		Employees:   []schema.ParsedEmployee{},
		Assignments: []schema.RosterAssignment{},
		Errors:      []string{},
		Warnings:    []string{},
	}

	if len(grid) < 2 {
		result.Errors = append(result.Errors, "roster sheet appears to be empty or invalid")
		return result, nil
	}

	headerRow, dateCol, ok := findHeader(grid)
	if !ok {
		result.Errors = append(result.Errors, "could not find header row with date column and employee names")
		return result, nil
	}

	// Every non-empty text cell to the right of the date column names an
	// employee column.
	columnNames := make(map[int]string)
	var names []string
	for col := dateCol + 1; col < len(grid[headerRow]); col++ {
		cell := grid[headerRow][col]
		if cell.Kind != CellText {
			continue
		}
		columnNames[col] = cell.Raw
		names = append(names, cell.Raw)
	}
	if len(names) == 0 {
		result.Errors = append(result.Errors, "no employee names found in header row")
		return result, nil
	}

	result.Employees = MatchEmployees(names, employees)

	matchByName := make(map[string]schema.ParsedEmployee, len(result.Employees))
	for _, pe := range result.Employees {
		if _, seen := matchByName[pe.OriginalName]; !seen {
			matchByName[pe.OriginalName] = pe
		}
	}

	shiftIDByCode := make(map[schema.ShiftCode]string, len(shifts))
	for _, s := range shifts {
		if _, seen := shiftIDByCode[s.Code]; !seen {
			shiftIDByCode[s.Code] = s.ID
		}
	}

	for rowIdx := headerRow + 1; rowIdx < len(grid); rowIdx++ {
		row := grid[rowIdx]
		if len(row) <= dateCol {
			continue
		}

		date, ok := ParseCellDate(row[dateCol])
		if !ok {
			// Spacer and summary rows are expected in real sheets; skipping
			// them silently is the tolerance policy, not an error.
			continue
		}
		dateStr := date.Format("2006-01-02")

		for col := dateCol + 1; col < len(row); col++ {
			name, ok := columnNames[col]
			if !ok {
				continue
			}
			match := matchByName[name]
			if match.MatchedID == "" {
				continue
			}

			cell := row[col]
			code, recognized := schema.NormalizeShiftCode(cell.String())
			if !recognized {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("Unknown shift code %q for %s on %s", cell.String(), name, dateStr))
				continue
			}

			assignment := schema.RosterAssignment{
				EmployeeID: match.MatchedID,
				Date:       dateStr,
				IsOffDay:   code == schema.ShiftOff,
			}
			if code != schema.ShiftOff {
				assignment.ShiftID = shiftIDByCode[code]
			}
			result.Assignments = append(result.Assignments, assignment)
		}
	}

	for _, pe := range result.Employees {
		switch {
		case pe.MatchedID == "":
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("No match found for employee: %q", pe.OriginalName))
		case pe.Confidence < 0.8:
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Low confidence match: %q → %q", pe.OriginalName, pe.MatchedName))
		}
	}

	return result, nil
}

// findHeader scans at most the first five rows for a text cell whose value
// contains "date" or "day" case-insensitively. That cell's column becomes
// the date column and its row the header row. This heuristic is the sheet
// format contract.
func findHeader(grid [][]Cell) (row, col int, ok bool) {
	limit := len(grid)
	if limit > headerScanRows {
		limit = headerScanRows
	}

	for i := 0; i < limit; i++ {
		for j, cell := range grid[i] {
			if cell.Kind != CellText {
				continue
			}
			lower := strings.ToLower(cell.Raw)
			if strings.Contains(lower, "date") || strings.Contains(lower, "day") {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}
