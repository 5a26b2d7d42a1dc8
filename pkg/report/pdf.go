package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"rosterkit/pkg/schema"
)

// WritePDF renders the summary as a printable report.
func (s *Summary) WritePDF(w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Roster Import Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Matched employees: %d (low confidence: %d)", s.MatchedEmployees, s.LowConfidence))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Unmatched employees: %d", s.UnmatchedEmployees))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Assignments: %d (off days: %d, replacing existing: %d)", s.Assignments, s.OffDays, s.ReplacesExisting))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(40, 8, fmt.Sprintf("Conflicts (%d)", len(s.Conflicts)))
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
	for _, c := range s.Conflicts {
		label := "multiple shifts"
		if c.ConflictType == schema.ConflictOverlappingShifts {
			label = "overlapping shifts"
		}
		pdf.Cell(0, 6, fmt.Sprintf("%s  %s: %s (%d shifts)", c.Date, c.EmployeeName, label, len(c.Shifts)))
		pdf.Ln(6)
	}

	if len(s.Errors) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(40, 8, fmt.Sprintf("Errors (%d)", len(s.Errors)))
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 10)
		for _, msg := range s.Errors {
			pdf.Cell(0, 5, msg)
			pdf.Ln(5)
		}
	}

	if len(s.Warnings) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(40, 8, fmt.Sprintf("Warnings (%d)", len(s.Warnings)))
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 10)
		for _, msg := range s.Warnings {
			pdf.Cell(0, 5, msg)
			pdf.Ln(5)
		}
	}

	return pdf.Output(w)
}
