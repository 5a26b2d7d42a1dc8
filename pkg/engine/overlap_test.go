package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rosterkit/pkg/schema"
)

func shift(id string, code schema.ShiftCode, start, end string) schema.Shift {
	return schema.Shift{ID: id, Code: code, StartTime: start, EndTime: end}
}

func TestTimeToMinutes(t *testing.T) {
	assert.Equal(t, 0, TimeToMinutes("00:00"))
	assert.Equal(t, 390, TimeToMinutes("06:30"))
	assert.Equal(t, 1320, TimeToMinutes("22:00"))
	assert.Equal(t, 0, TimeToMinutes("garbage"))
	assert.Equal(t, 0, TimeToMinutes(""))
}

func TestBackToBackShiftsDoNotOverlap(t *testing.T) {
	am := shift("1", schema.ShiftAM, "06:00", "14:00")
	pm := shift("2", schema.ShiftPM, "14:00", "22:00")

	// Half-open intervals: a shared boundary is not an overlap.
	assert.False(t, ShiftsOverlap(am, pm))
	assert.False(t, ShiftsOverlap(pm, am))
}

func TestPartialOverlap(t *testing.T) {
	am := shift("1", schema.ShiftAM, "06:00", "14:00")
	mid13 := shift("x", schema.ShiftSTRAIGHT, "13:00", "21:00")

	assert.True(t, ShiftsOverlap(am, mid13))
	assert.True(t, ShiftsOverlap(mid13, am))
}

func TestOvernightOverlapsEarlyMorning(t *testing.T) {
	night := shift("3", schema.ShiftMID, "22:00", "06:00")
	early := shift("x", schema.ShiftAM, "00:00", "08:00")

	assert.True(t, ShiftsOverlap(night, early))
	assert.True(t, ShiftsOverlap(early, night))
}

func TestOvernightDoesNotOverlapPrecedingEvening(t *testing.T) {
	night := shift("3", schema.ShiftMID, "22:00", "06:00")
	pm := shift("2", schema.ShiftPM, "14:00", "22:00")

	assert.False(t, ShiftsOverlap(night, pm))
	assert.False(t, ShiftsOverlap(pm, night))
}

func TestTwoOvernightShiftsSameEvening(t *testing.T) {
	a := shift("3", schema.ShiftMID, "22:00", "06:00")
	b := shift("x", schema.ShiftMID, "23:00", "07:00")

	assert.True(t, ShiftsOverlap(a, b))
	assert.True(t, ShiftsOverlap(b, a))
}

func TestContainedInterval(t *testing.T) {
	straight := shift("4", schema.ShiftSTRAIGHT, "08:00", "20:00")
	pm := shift("2", schema.ShiftPM, "14:00", "22:00")

	assert.True(t, ShiftsOverlap(straight, pm))
}
