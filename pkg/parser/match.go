package parser

import "rosterkit/pkg/schema"

// MatchEmployees resolves spreadsheet column names against the employee
// directory. The best-scoring employee wins; ties keep the first one in
// directory order. Any score above the zero baseline is accepted, even a
// very weak one: warning generation downstream, not the matcher, is the
// quality gate.
func MatchEmployees(names []string, known []schema.Employee) []schema.ParsedEmployee {
	matched := make([]schema.ParsedEmployee, 0, len(names))

	for _, name := range names {
		best := schema.ParsedEmployee{OriginalName: name}

		for _, emp := range known {
			score := schema.Similarity(name, emp.Name)
			if score > best.Confidence {
				best = schema.ParsedEmployee{
					OriginalName: name,
					MatchedID:    emp.ID,
					MatchedName:  emp.Name,
					Confidence:   score,
				}
			}
		}

		matched = append(matched, best)
	}

	return matched
}
