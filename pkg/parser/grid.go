package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellKind discriminates the decoded value of one grid cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// Cell is one spreadsheet cell as a tagged variant. Raw keeps the trimmed
// original text so diagnostics can echo exactly what the sheet contained;
// Number is set only for CellNumber cells.
type Cell struct {
	Kind   CellKind
	Raw    string
	Number float64
}

// IsEmpty reports whether the cell held no value.
func (c Cell) IsEmpty() bool { return c.Kind == CellEmpty }

// String returns the cell's original text, or "" for an empty cell.
func (c Cell) String() string { return c.Raw }

var (
	zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0}
)

// DecodeGrid turns roster file bytes into a cell grid. XLSX workbooks are
// read through excelize (first sheet only, raw values so date cells keep
// their serial numbers); anything else is treated as CSV. Only an unreadable
// container is an error: structural problems inside a readable grid surface
// later as parse errors, not here.
func DecodeGrid(data []byte) ([][]Cell, error) {
	if bytes.HasPrefix(data, zipMagic) {
		return decodeWorkbook(data)
	}
	if bytes.HasPrefix(data, oleMagic) {
		return nil, fmt.Errorf("legacy .xls workbooks are not supported; save as .xlsx or .csv")
	}
	return decodeCSV(data)
}

func decodeWorkbook(data []byte) ([][]Cell, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	grid := make([][]Cell, len(rows))
	for i, row := range rows {
		cells := make([]Cell, len(row))
		for j, v := range row {
			cells[j] = classifyCell(v)
		}
		grid[i] = cells
	}
	return grid, nil
}

func decodeCSV(data []byte) ([][]Cell, error) {
	decoded, _, err := DetectAndDecode(data)
	if err != nil {
		return nil, fmt.Errorf("encoding detection failed: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	// Roster sheets exported to CSV routinely have ragged rows and unescaped
	// quotes; tolerate both and let row-level validation happen downstream.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var grid [][]Cell
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A malformed line is a spacer/summary artifact, not a reason to
			// abandon the file.
			continue
		}

		cells := make([]Cell, len(row))
		for j, v := range row {
			cells[j] = classifyCell(v)
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

// classifyCell assigns the tagged variant: empty, numeric, or text. All
// downstream normalization pattern-matches on the variant instead of doing
// implicit coercion.
func classifyCell(v string) Cell {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return Cell{Kind: CellEmpty}
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Cell{Kind: CellNumber, Raw: trimmed, Number: n}
	}
	return Cell{Kind: CellText, Raw: trimmed}
}
