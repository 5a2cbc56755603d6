package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCityName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"comma segments dropped", "Pune, Maharashtra, India", "pune"},
		{"admin stopword removed", "Mumbai City", "mumbai"},
		{"area stopword removed", "Andheri Area, Mumbai", "andheri"},
		{"country token removed", "Jaipur India", "jaipur"},
		{"whitespace collapsed", "  New   Delhi  ", "new delhi"},
		{"already clean", "kochi", "kochi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractCityName(tt.in))
		})
	}
}

func TestSameCity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"typo within edit distance", "banglore", "bangalore", true},
		{"different cities", "pune", "mumbai", false},
		{"suffix stripped containment", "Hyderabad", "hydera", true},
		{"substring containment", "navi mumbai", "mumbai", true},
		{"short strings need exact match", "go", "goa", false},
		{"short exact match", "go", "go", true},
		{"nagar suffix stripped", "indiranagar", "indira", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SameCity(tt.a, tt.b))
		})
	}
}

func TestExtractStateKeywords(t *testing.T) {
	// Gazetteer order is preserved in the output.
	assert.Equal(t, []string{"maharashtra", "pune"}, ExtractStateKeywords("Pune, Maharashtra"))
	assert.Empty(t, ExtractStateKeywords("somewhere unrecognized"))
	assert.Equal(t, []string{"delhi"}, ExtractStateKeywords("South Delhi"))
}

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 0, levenshtein("pune", "pune"))
	assert.Equal(t, 1, levenshtein("banglore", "bangalore"))
	assert.Equal(t, 3, levenshtein("kitten", "sitting"))
	assert.Equal(t, 4, levenshtein("", "pune"))
}
