package schema

import "strings"

// Similarity scores how alike two names are on a [0, 1] scale. Both inputs
// are trimmed and lowercased first. Exact equality scores 1.0, substring
// containment in either direction scores 0.8, and everything else falls back
// to a normalized Levenshtein ratio.
func Similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	if a == b {
		return 1.0
	}

	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 0.8
	}

	aLen := len([]rune(a))
	bLen := len([]rune(b))
	maxLen := aLen
	if bLen > maxLen {
		maxLen = bLen
	}

	score := 1.0 - float64(levenshteinDistance(a, b))/float64(maxLen)
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score
}

// levenshteinDistance computes the minimum number of single-character edits
// (insertions, deletions, or substitutions) required to transform a into b.
// The distance between any string and the empty string is its length.
func levenshteinDistance(a, b string) int {
	aRunes := []rune(a)
	bRunes := []rune(b)
	aLen := len(aRunes)
	bLen := len(bRunes)

	if aLen == 0 {
		return bLen
	}
	if bLen == 0 {
		return aLen
	}

	// Two rows instead of a full matrix; iterate the shorter string in the
	// inner loop.
	if aLen > bLen {
		aRunes, bRunes = bRunes, aRunes
		aLen, bLen = bLen, aLen
	}

	prevRow := make([]int, aLen+1)
	currRow := make([]int, aLen+1)

	for i := 0; i <= aLen; i++ {
		prevRow[i] = i
	}

	for j := 1; j <= bLen; j++ {
		currRow[0] = j
		for i := 1; i <= aLen; i++ {
			cost := 1
			if aRunes[i-1] == bRunes[j-1] {
				cost = 0
			}

			deletion := prevRow[i] + 1
			insertion := currRow[i-1] + 1
			substitution := prevRow[i-1] + cost

			currRow[i] = min3(deletion, insertion, substitution)
		}
		prevRow, currRow = currRow, prevRow
	}

	return prevRow[aLen]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
