package engine

import "rosterkit/pkg/schema"

type groupKey struct {
	employeeID string
	date       string
}

// DetectConflicts finds employees holding more than one active shift on the
// same date and classifies each group as overlapping_shifts if any pair of
// its shifts intersects in time, or multiple_shifts otherwise. It is total:
// assignments referencing unknown employees or shifts degrade to no conflict
// for the affected group instead of failing. Output order follows the first
// appearance of each (employee, date) key, stable within one run but not a
// contract callers should rely on beyond display.
func DetectConflicts(assignments []schema.RosterAssignment, shifts []schema.Shift, employees []schema.Employee) []schema.ShiftConflict {
	shiftByID := make(map[string]schema.Shift, len(shifts))
	for _, s := range shifts {
		shiftByID[s.ID] = s
	}
	employeeByID := make(map[string]schema.Employee, len(employees))
	for _, e := range employees {
		employeeByID[e.ID] = e
	}

	// Group active assignments by (employee, date).
	groups := make(map[groupKey][]schema.RosterAssignment)
	var order []groupKey
	for _, a := range assignments {
		if a.IsOffDay || a.ShiftID == "" {
			continue
		}
		key := groupKey{employeeID: a.EmployeeID, date: a.Date}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], a)
	}

	conflicts := make([]schema.ShiftConflict, 0)
	for _, key := range order {
		group := groups[key]
		if len(group) < 2 {
			continue
		}

		employee, ok := employeeByID[key.employeeID]
		if !ok {
			// Unknown employee: drop the whole group rather than report a
			// conflict with missing identity data.
			continue
		}

		resolved := make([]schema.ConflictShift, 0, len(group))
		resolvedShifts := make([]schema.Shift, 0, len(group))
		for _, a := range group {
			shift, ok := shiftByID[a.ShiftID]
			if !ok {
				continue
			}
			resolvedShifts = append(resolvedShifts, shift)
			resolved = append(resolved, schema.ConflictShift{
				ShiftID:   shift.ID,
				ShiftCode: shift.Code,
				StartTime: shift.StartTime,
				EndTime:   shift.EndTime,
			})
		}
		if len(resolved) < 2 {
			continue
		}

		conflictType := schema.ConflictMultipleShifts
	pairs:
		for i := 0; i < len(resolvedShifts); i++ {
			for j := i + 1; j < len(resolvedShifts); j++ {
				if ShiftsOverlap(resolvedShifts[i], resolvedShifts[j]) {
					conflictType = schema.ConflictOverlappingShifts
					break pairs
				}
			}
		}

		conflicts = append(conflicts, schema.ShiftConflict{
			EmployeeID:   key.employeeID,
			EmployeeName: employee.Name,
			Date:         key.date,
			ConflictType: conflictType,
			Shifts:       resolved,
		})
	}

	return conflicts
}
