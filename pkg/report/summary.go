package report

import (
	"rosterkit/pkg/roster"
	"rosterkit/pkg/schema"
)

// Summary rolls one import run and the resulting conflict state into the
// figures a confirmation screen shows before committing the import.
type Summary struct {
	MatchedEmployees    int                    `json:"matchedEmployees"`
	UnmatchedEmployees  int                    `json:"unmatchedEmployees"`
	LowConfidence       int                    `json:"lowConfidence"`
	Assignments         int                    `json:"assignments"`
	OffDays             int                    `json:"offDays"`
	ReplacesExisting    int                    `json:"replacesExisting"`
	Errors              []string               `json:"errors"`
	Warnings            []string               `json:"warnings"`
	Conflicts           []schema.ShiftConflict `json:"conflicts"`
	OverlapConflicts    int                    `json:"overlapConflicts"`
	MultiShiftConflicts int                    `json:"multiShiftConflicts"`
}

// Build compiles the summary. The store, when given, is the roster state
// from before the merge, so ReplacesExisting counts incoming assignments
// whose (employeeId, date) key is already taken. A nil store means a fresh
// session with nothing to replace.
func Build(parsed *schema.ParsedRosterData, store *roster.Store, conflicts []schema.ShiftConflict) *Summary {
	s := &Summary{
		Errors:    parsed.Errors,
		Warnings:  parsed.Warnings,
		Conflicts: conflicts,
	}

	for _, pe := range parsed.Employees {
		switch {
		case pe.MatchedID == "":
			s.UnmatchedEmployees++
		case pe.Confidence < 0.8:
			s.MatchedEmployees++
			s.LowConfidence++
		default:
			s.MatchedEmployees++
		}
	}

	for _, a := range parsed.Assignments {
		s.Assignments++
		if a.IsOffDay {
			s.OffDays++
		}
		if store != nil && store.Has(a.EmployeeID, a.Date) {
			s.ReplacesExisting++
		}
	}

	for _, c := range conflicts {
		switch c.ConflictType {
		case schema.ConflictOverlappingShifts:
			s.OverlapConflicts++
		case schema.ConflictMultipleShifts:
			s.MultiShiftConflicts++
		}
	}

	return s
}
