// Package refdata loads the reference directories both pipeline stages read:
// the known employees and the known shift definitions. Reference data lives
// in a YAML file owned by the caller; this module never writes it back.
package refdata

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"rosterkit/pkg/schema"
)

// Directory carries the loaded reference data.
type Directory struct {
	Employees []schema.Employee `json:"employees"`
	Shifts    []schema.Shift    `json:"shifts"`
}

type employeeSpec struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Department  string `yaml:"department"`
	Designation string `yaml:"designation"`
}

type shiftSpec struct {
	ID              string `yaml:"id"`
	Code            string `yaml:"code"`
	Label           string `yaml:"label"`
	StartTime       string `yaml:"startTime"`
	EndTime         string `yaml:"endTime"`
	DurationMinutes int    `yaml:"durationMinutes"`
	GraceMinutes    int    `yaml:"graceMinutes"`
}

type fileSpec struct {
	Employees []employeeSpec `yaml:"employees"`
	Shifts    []shiftSpec    `yaml:"shifts"`
}

// Load reads and validates a reference-data YAML file.
func Load(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference data: %w", err)
	}
	dir, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return dir, nil
}

// Parse validates reference-data YAML. Entries without ids get generated
// ones; shift times must be HH:MM, and a missing duration is derived from
// the times, treating an end before its start as crossing midnight.
func Parse(data []byte) (*Directory, error) {
	var spec fileSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse reference data: %w", err)
	}

	dir := &Directory{}

	for i, e := range spec.Employees {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("employee %d: missing name", i)
		}
		id := e.ID
		if id == "" {
			id = uuid.NewString()
		}
		dir.Employees = append(dir.Employees, schema.Employee{
			ID:          id,
			Name:        strings.TrimSpace(e.Name),
			Department:  e.Department,
			Designation: e.Designation,
		})
	}

	for i, s := range spec.Shifts {
		code, ok := schema.NormalizeShiftCode(s.Code)
		if !ok || code == schema.ShiftOff {
			return nil, fmt.Errorf("shift %d: unknown code %q", i, s.Code)
		}

		start, err := parseClock(s.StartTime)
		if err != nil {
			return nil, fmt.Errorf("shift %d: start time: %w", i, err)
		}
		end, err := parseClock(s.EndTime)
		if err != nil {
			return nil, fmt.Errorf("shift %d: end time: %w", i, err)
		}

		duration := s.DurationMinutes
		if duration == 0 {
			duration = end - start
			if duration <= 0 {
				duration += 24 * 60
			}
		}

		id := s.ID
		if id == "" {
			id = uuid.NewString()
		}

		dir.Shifts = append(dir.Shifts, schema.Shift{
			ID:              id,
			Code:            code,
			Label:           s.Label,
			StartTime:       s.StartTime,
			EndTime:         s.EndTime,
			DurationMinutes: duration,
			GraceMinutes:    s.GraceMinutes,
		})
	}

	return dir, nil
}

// parseClock validates a strict HH:MM wall-clock value and returns minutes
// since midnight.
func parseClock(value string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("want HH:MM, got %q", value)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("want HH:MM, got %q", value)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("want HH:MM, got %q", value)
	}
	return hours*60 + minutes, nil
}

// DefaultShifts returns the stock shift definitions used when the reference
// file does not provide any.
func DefaultShifts() []schema.Shift {
	return []schema.Shift{
		{ID: "1", Code: schema.ShiftAM, Label: "Morning", StartTime: "06:00", EndTime: "14:00", DurationMinutes: 480, GraceMinutes: 15},
		{ID: "2", Code: schema.ShiftPM, Label: "Evening", StartTime: "14:00", EndTime: "22:00", DurationMinutes: 480, GraceMinutes: 15},
		{ID: "3", Code: schema.ShiftMID, Label: "Night", StartTime: "22:00", EndTime: "06:00", DurationMinutes: 480, GraceMinutes: 15},
		{ID: "4", Code: schema.ShiftSTRAIGHT, Label: "Full Day", StartTime: "08:00", EndTime: "20:00", DurationMinutes: 720, GraceMinutes: 15},
	}
}
