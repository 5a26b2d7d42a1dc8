package engine

import (
	"strconv"
	"strings"

	"rosterkit/pkg/schema"
)

const minutesPerDay = 24 * 60

// TimeToMinutes converts a wall-clock "HH:MM" value to minutes since
// midnight. Malformed values come back as 0, which downstream comparisons
// treat as a degenerate interval rather than an error.
func TimeToMinutes(value string) int {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0
	}
	return hours*60 + minutes
}

// ShiftsOverlap reports whether two shifts' time ranges intersect on the 24h
// clock. Intervals are half-open, so back-to-back shifts (06:00-14:00 and
// 14:00-22:00) do not overlap. An end before its start means the shift
// crosses midnight: that interval is tested both as-is and projected back
// one day, so an overnight shift meets the following morning's shifts
// (22:00-06:00 overlaps 00:00-08:00). Two overnight shifts on different
// calendar dates are only compared within this single wrap; a known
// limitation.
func ShiftsOverlap(a, b schema.Shift) bool {
	start1 := TimeToMinutes(a.StartTime)
	end1 := TimeToMinutes(a.EndTime)
	start2 := TimeToMinutes(b.StartTime)
	end2 := TimeToMinutes(b.EndTime)

	if end1 < start1 {
		end1 += minutesPerDay
	}
	if end2 < start2 {
		end2 += minutesPerDay
	}

	if start1 < end2 && start2 < end1 {
		return true
	}

	// Re-test a midnight-crossing interval shifted back one day so its
	// early-morning tail lines up with same-day shifts.
	if end1 > minutesPerDay && start1-minutesPerDay < end2 && start2 < end1-minutesPerDay {
		return true
	}
	if end2 > minutesPerDay && start1 < end2-minutesPerDay && start2-minutesPerDay < end1 {
		return true
	}

	return false
}
