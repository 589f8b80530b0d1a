package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"components", "components", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single edits
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"abc", "ab", 1},
		{"componets", "components", 1},
		{"componentz", "components", 1},

		// Multiple edits
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},

		// Case-sensitive
		{"Components", "components", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestClosest(t *testing.T) {
	candidates := []string{"components"}

	got, ok := Closest("Components", candidates, 2)
	assert.True(t, ok)
	assert.Equal(t, "components", got)

	got, ok = Closest("compnents", candidates, 2)
	assert.True(t, ok)
	assert.Equal(t, "components", got)

	_, ok = Closest("entities", candidates, 2)
	assert.False(t, ok)

	_, ok = Closest("anything", nil, 2)
	assert.False(t, ok)

	// Ties keep the first candidate.
	got, ok = Closest("cat", []string{"bat", "hat"}, 1)
	assert.True(t, ok)
	assert.Equal(t, "bat", got)
}
