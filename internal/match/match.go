// Package match finds the closest known identifier to a misspelled one.
package match

import "component-store/internal/ident"

// Levenshtein computes the edit distance between two strings: the minimum
// number of single-byte insertions, deletions or substitutions turning a into b.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	// Keep a as the shorter string so the rows stay small.
	if len(a) > len(b) {
		a, b = b, a
	}

	if len(a) == 0 {
		return len(b)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Closest returns the candidate nearest to word, ignoring ASCII case, if its
// distance is at most maxDist. Ties go to the earliest candidate.
func Closest(word string, candidates []string, maxDist int) (string, bool) {
	folded := ident.LowerCase(word)

	best, bestDist := "", maxDist+1

	for _, c := range candidates {
		if d := Levenshtein(folded, ident.LowerCase(c)); d < bestDist {
			best, bestDist = c, d
		}
	}

	return best, bestDist <= maxDist
}
