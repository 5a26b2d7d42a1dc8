package schema

// ShiftCode is the stable external identifier of a recurring work interval.
type ShiftCode string

const (
	ShiftAM       ShiftCode = "AM"
	ShiftPM       ShiftCode = "PM"
	ShiftMID      ShiftCode = "MID"
	ShiftSTRAIGHT ShiftCode = "STRAIGHT"

	// ShiftOff is not a real shift: imported sheets use it to mark a day off.
	ShiftOff ShiftCode = "OFF"
)

// LeaveType classifies a leave day on the roster.
type LeaveType string

const (
	LeaveAnnual LeaveType = "ANNUAL"
	LeaveUnpaid LeaveType = "UNPAID"
)

// Employee is immutable reference data owned outside this module.
type Employee struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
}

// Shift is a named recurring time-of-day interval. StartTime and EndTime are
// wall-clock "HH:MM" values on a 24h cycle; an EndTime earlier than StartTime
// means the shift crosses midnight.
type Shift struct {
	ID              string    `json:"id"`
	Code            ShiftCode `json:"code"`
	Label           string    `json:"label"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
	GraceMinutes    int       `json:"graceMinutes"`
}

// RosterAssignment records one employee's status on one calendar date
// ("YYYY-MM-DD"). If IsOffDay is set, ShiftID is ignored; with neither set
// the day is implicitly off. The (EmployeeID, Date) key is expected to be
// unique in a well-formed roster, but nothing enforces it: duplicate keys
// are exactly what the conflict detector exists to find.
type RosterAssignment struct {
	EmployeeID string    `json:"employeeId"`
	Date       string    `json:"date"`
	ShiftID    string    `json:"shiftId,omitempty"`
	IsOffDay   bool      `json:"isOffDay"`
	LeaveType  LeaveType `json:"leaveType,omitempty"`
}

// ParsedEmployee is the transient result of matching one spreadsheet column
// header against the employee directory.
type ParsedEmployee struct {
	OriginalName string  `json:"originalName"`
	MatchedID    string  `json:"matchedId,omitempty"`
	MatchedName  string  `json:"matchedName,omitempty"`
	Confidence   float64 `json:"confidence"`
}

// ParsedRosterData is the output of one parse run. Errors mean the result
// must not be imported; warnings are advisory only.
type ParsedRosterData struct {
	Employees   []ParsedEmployee   `json:"employees"`
	Assignments []RosterAssignment `json:"assignments"`
	Errors      []string           `json:"errors"`
	Warnings    []string           `json:"warnings"`
}

// ConflictType classifies a same-day scheduling conflict.
type ConflictType string

const (
	ConflictMultipleShifts    ConflictType = "multiple_shifts"
	ConflictOverlappingShifts ConflictType = "overlapping_shifts"
)

// ConflictShift is one resolved shift inside a conflict group.
type ConflictShift struct {
	ShiftID   string    `json:"shiftId"`
	ShiftCode ShiftCode `json:"shiftCode"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
}

// ShiftConflict reports one employee holding more than one active shift on
// the same date. Recomputed from scratch on every detection run; never
// persisted.
type ShiftConflict struct {
	EmployeeID   string          `json:"employeeId"`
	EmployeeName string          `json:"employeeName"`
	Date         string          `json:"date"`
	ConflictType ConflictType    `json:"conflictType"`
	Shifts       []ConflictShift `json:"shifts"`
}
