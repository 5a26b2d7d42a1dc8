package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterkit/pkg/parser"
	"rosterkit/pkg/schema"
)

var storeEmployees = []schema.Employee{
	{ID: "1", Name: "John Smith"},
	{ID: "2", Name: "Sarah Johnson"},
}

var storeShifts = []schema.Shift{
	{ID: "s-am", Code: schema.ShiftAM, StartTime: "06:00", EndTime: "14:00", DurationMinutes: 480},
	{ID: "s-pm", Code: schema.ShiftPM, StartTime: "14:00", EndTime: "22:00", DurationMinutes: 480},
	{ID: "s-str", Code: schema.ShiftSTRAIGHT, StartTime: "09:00", EndTime: "21:00", DurationMinutes: 720},
}

func TestStoreReplacePolicy(t *testing.T) {
	s := NewStore()
	s.Put(schema.RosterAssignment{EmployeeID: "1", Date: "2024-03-05", ShiftID: "s-am"})
	s.Put(schema.RosterAssignment{EmployeeID: "1", Date: "2024-03-05", ShiftID: "s-pm"})

	assert.Equal(t, 1, s.Len())
	got := s.Assignments()
	require.Len(t, got, 1)
	assert.Equal(t, "s-pm", got[0].ShiftID)
}

func TestStoreAppendPolicyKeepsDuplicates(t *testing.T) {
	s := NewStore()
	s.Merge([]schema.RosterAssignment{
		{EmployeeID: "1", Date: "2024-03-05", ShiftID: "s-am"},
		{EmployeeID: "1", Date: "2024-03-05", ShiftID: "s-str"},
	}, Append)

	assert.Equal(t, 2, s.Len())

	conflicts := s.Conflicts(storeShifts, storeEmployees)
	require.Len(t, conflicts, 1)
	assert.Equal(t, schema.ConflictOverlappingShifts, conflicts[0].ConflictType)
	assert.Equal(t, "John Smith", conflicts[0].EmployeeName)
}

func TestStoreReplaceMergeCollapsesKey(t *testing.T) {
	s := NewStore()
	s.Merge([]schema.RosterAssignment{
		{EmployeeID: "1", Date: "2024-03-05", ShiftID: "s-am"},
		{EmployeeID: "1", Date: "2024-03-05", ShiftID: "s-pm"},
	}, Append)
	require.Equal(t, 2, s.Len())

	s.Merge([]schema.RosterAssignment{
		{EmployeeID: "1", Date: "2024-03-05", ShiftID: "s-str"},
	}, Replace)

	require.Equal(t, 1, s.Len())
	assert.Empty(t, s.Conflicts(storeShifts, storeEmployees))
}

func TestStoreSnapshotOrder(t *testing.T) {
	s := NewStore()
	s.Merge([]schema.RosterAssignment{
		{EmployeeID: "2", Date: "2024-03-05", ShiftID: "s-pm"},
		{EmployeeID: "1", Date: "2024-03-05", ShiftID: "s-am"},
		{EmployeeID: "1", Date: "2024-03-06", ShiftID: "s-am"},
	}, Append)

	got := s.Assignments()
	require.Len(t, got, 3)
	assert.Equal(t, "2", got[0].EmployeeID)
	assert.Equal(t, "1", got[1].EmployeeID)
	assert.Equal(t, "2024-03-06", got[2].Date)
}

func TestStoreHasAndStats(t *testing.T) {
	s := NewStore()
	s.Merge([]schema.RosterAssignment{
		{EmployeeID: "1", Date: "2024-03-05", ShiftID: "s-am"},
		{EmployeeID: "1", Date: "2024-03-06", IsOffDay: true},
		{EmployeeID: "2", Date: "2024-03-05", ShiftID: "s-pm"},
	}, Append)

	assert.True(t, s.Has("1", "2024-03-05"))
	assert.False(t, s.Has("2", "2024-03-06"))

	stats := s.Stats()
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.OffDays)
	assert.Equal(t, 2, stats.Employees)
}

// End-to-end: parse a sheet, merge the matched assignments, detect the
// double booking the sheet carries.
func TestImportRoundTrip(t *testing.T) {
	csv := "Date,John Smith,Sarah Johnson\n" +
		"2024-03-05,AM,PM\n" +
		"2024-03-06,OFF,AM\n"
	parsed, err := parser.ParseRoster([]byte(csv), storeEmployees, storeShifts)
	require.NoError(t, err)
	require.Empty(t, parsed.Errors)

	s := NewStore()
	s.Merge(parsed.Assignments, Append)
	assert.Equal(t, 4, s.Len())
	assert.Empty(t, s.Conflicts(storeShifts, storeEmployees))

	// A second import of the same day for John doubles him up.
	s.Merge([]schema.RosterAssignment{
		{EmployeeID: "1", Date: "2024-03-05", ShiftID: "s-str"},
	}, Append)

	conflicts := s.Conflicts(storeShifts, storeEmployees)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "1", conflicts[0].EmployeeID)
	assert.Equal(t, "2024-03-05", conflicts[0].Date)
	assert.Len(t, conflicts[0].Shifts, 2)
}
