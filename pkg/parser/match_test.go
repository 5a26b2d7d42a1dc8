package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterkit/pkg/schema"
)

func TestMatchEmployeesExact(t *testing.T) {
	known := []schema.Employee{
		{ID: "e1", Name: "John Smith"},
		{ID: "e2", Name: "Sarah Johnson"},
	}

	got := MatchEmployees([]string{"John Smith", "sarah johnson"}, known)
	require.Len(t, got, 2)

	assert.Equal(t, "e1", got[0].MatchedID)
	assert.Equal(t, 1.0, got[0].Confidence)
	assert.Equal(t, "e2", got[1].MatchedID)
	assert.Equal(t, 1.0, got[1].Confidence)
	assert.Equal(t, "Sarah Johnson", got[1].MatchedName)
}

func TestMatchEmployeesTieKeepsFirst(t *testing.T) {
	known := []schema.Employee{
		{ID: "e1", Name: "Ann"},
		{ID: "e2", Name: "Ann"},
	}

	got := MatchEmployees([]string{"Ann"}, known)
	require.Len(t, got, 1)
	assert.Equal(t, "e1", got[0].MatchedID)
}

func TestMatchEmployeesWeakMatchStillAccepted(t *testing.T) {
	known := []schema.Employee{{ID: "e1", Name: "John Smith"}}

	got := MatchEmployees([]string{"J Smith"}, known)
	require.Len(t, got, 1)
	assert.Equal(t, "e1", got[0].MatchedID)
	assert.Greater(t, got[0].Confidence, 0.0)
	assert.Less(t, got[0].Confidence, 0.8)
}

func TestMatchEmployeesZeroScoreUnmatched(t *testing.T) {
	known := []schema.Employee{{ID: "e1", Name: "aaaaaaaaaa"}}

	got := MatchEmployees([]string{"zzzzzzzzzz"}, known)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].MatchedID)
	assert.Zero(t, got[0].Confidence)
}
