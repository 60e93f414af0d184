package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"both empty", "", "", 0},
		{"a empty", "", "hello", 5},
		{"b empty", "hello", "", 5},
		{"identical", "hello", "hello", 0},
		{"simple substitution", "kitten", "sitten", 1},
		{"simple insertion", "apple", "applye", 1},
		{"simple deletion", "banana", "banna", 1},
		{"multiple edits", "saturday", "sunday", 3},
		{"order matters reverse", "applye", "apple", 1},
		{"longer strings", "algorithm", "altruistic", 6},
		{"transposition costs two", "ab", "ba", 2},
		{"unicode chars (same len)", "cliché", "cliche", 1}, // é -> e is 1 substitution
		{"unicode chars (diff len)", "résumé", "resume", 2}, // é -> e twice is 2 substitutions
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LevenshteinDistance(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("LevenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDamerauLevenshteinDistance(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"both empty", "", "", 0},
		{"a empty", "", "abc", 3},
		{"identical", "search", "search", 0},
		{"adjacent transposition", "ab", "ba", 1},
		{"transposition in word", "recieve", "receive", 1},
		{"substitution", "kitten", "sitten", 1},
		{"mixed edits", "saturday", "sunday", 3},
		{"unicode transposition", "çé", "éç", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DamerauLevenshteinDistance(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("DamerauLevenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilarityNormalization(t *testing.T) {
	assert.Equal(t, 1.0, LevenshteinSimilarity("", ""))
	assert.Equal(t, 1.0, LevenshteinSimilarity("apple", "apple"))
	assert.Equal(t, 0.0, LevenshteinSimilarity("abc", "xyz"))
	assert.InDelta(t, 1-1.0/6.0, LevenshteinSimilarity("apple", "applle"), 1e-9)
	assert.InDelta(t, 0.5, DamerauLevenshteinSimilarity("ab", "ba"), 1e-9)
	assert.Equal(t, 0.0, LevenshteinSimilarity("ab", "ba"))
}
