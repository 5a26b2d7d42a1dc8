package roster

import (
	"rosterkit/pkg/engine"
	"rosterkit/pkg/schema"
)

// MergePolicy decides what happens when an incoming assignment shares its
// (employeeId, date) key with already-stored ones.
type MergePolicy int

const (
	// Replace drops whatever the key held before. Manual edits use this.
	Replace MergePolicy = iota
	// Append keeps both, leaving duplicate keys in place for the conflict
	// detector to find. Imports use this.
	Append
)

type key struct {
	employeeID string
	date       string
}

// Store is the working roster set for one session, keyed by
// (employeeId, date). The store owns assignment lifetime; the parser and the
// conflict detector only read from it or feed into it. Not safe for
// concurrent use: the expected caller is a single loop re-running detection
// after every mutation.
type Store struct {
	entries map[key][]schema.RosterAssignment
	order   []key
}

// NewStore returns an empty roster store.
func NewStore() *Store {
	return &Store{entries: make(map[key][]schema.RosterAssignment)}
}

// Put stores one assignment, replacing anything under its key.
func (s *Store) Put(a schema.RosterAssignment) {
	s.merge(a, Replace)
}

// Merge folds a batch of assignments into the store under one policy.
func (s *Store) Merge(assignments []schema.RosterAssignment, policy MergePolicy) {
	for _, a := range assignments {
		s.merge(a, policy)
	}
}

func (s *Store) merge(a schema.RosterAssignment, policy MergePolicy) {
	k := key{employeeID: a.EmployeeID, date: a.Date}
	existing, seen := s.entries[k]
	if !seen {
		s.order = append(s.order, k)
	}
	if policy == Replace || !seen {
		s.entries[k] = []schema.RosterAssignment{a}
		return
	}
	s.entries[k] = append(existing, a)
}

// Has reports whether any assignment exists for the employee on the date.
func (s *Store) Has(employeeID, date string) bool {
	_, ok := s.entries[key{employeeID: employeeID, date: date}]
	return ok
}

// Len returns the number of stored assignments, duplicates included.
func (s *Store) Len() int {
	n := 0
	for _, group := range s.entries {
		n += len(group)
	}
	return n
}

// Assignments returns a snapshot in stable first-insertion key order.
func (s *Store) Assignments() []schema.RosterAssignment {
	out := make([]schema.RosterAssignment, 0, s.Len())
	for _, k := range s.order {
		out = append(out, s.entries[k]...)
	}
	return out
}

// Conflicts runs conflict detection over the current snapshot. Cheap enough
// to call after every mutation.
func (s *Store) Conflicts(shifts []schema.Shift, employees []schema.Employee) []schema.ShiftConflict {
	return engine.DetectConflicts(s.Assignments(), shifts, employees)
}

// Stats summarizes the stored roster.
type Stats struct {
	Total     int `json:"total"`
	OffDays   int `json:"offDays"`
	Employees int `json:"employees"`
}

// Stats counts stored assignments, off days, and distinct employees.
func (s *Store) Stats() Stats {
	stats := Stats{}
	seen := make(map[string]bool)
	for _, group := range s.entries {
		for _, a := range group {
			stats.Total++
			if a.IsOffDay {
				stats.OffDays++
			}
			seen[a.EmployeeID] = true
		}
	}
	stats.Employees = len(seen)
	return stats
}
