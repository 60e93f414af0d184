package similarity

import "unicode/utf8"

// LevenshteinSimilarity normalizes the Levenshtein distance to a score:
// 1 - distance / max(len(a), len(b)), measured in runes. Two empty strings
// are identical.
func LevenshteinSimilarity(a, b string) float64 {
	return normalize(LevenshteinDistance(a, b), a, b)
}

// DamerauLevenshteinSimilarity is LevenshteinSimilarity with adjacent
// transpositions counted as a single edit.
func DamerauLevenshteinSimilarity(a, b string) float64 {
	return normalize(DamerauLevenshteinDistance(a, b), a, b)
}

func normalize(distance int, a, b string) float64 {
	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 1
	}
	return clamp(1 - float64(distance)/float64(longest))
}

// LevenshteinDistance computes the Levenshtein distance between two strings.
// It represents the minimum number of single-character edits (insertions, deletions, or substitutions)
// required to change one word into the other.
// This implementation properly handles Unicode characters by working with runes.
func LevenshteinDistance(a, b string) int {
	runesA := []rune(a)
	runesB := []rune(b)

	lenA := len(runesA)
	lenB := len(runesB)

	if lenA == 0 {
		return lenB
	}
	if lenB == 0 {
		return lenA
	}

	// Only the previous row of the distance matrix is needed
	prevRow := make([]int, lenB+1)
	currRow := make([]int, lenB+1)
	for j := 0; j <= lenB; j++ {
		prevRow[j] = j
	}

	for i := 1; i <= lenA; i++ {
		currRow[0] = i
		for j := 1; j <= lenB; j++ {
			cost := 0
			if runesA[i-1] != runesB[j-1] {
				cost = 1
			}

			// Minimum of (deletion, insertion, substitution)
			currRow[j] = min(prevRow[j]+1, currRow[j-1]+1, prevRow[j-1]+cost)
		}
		prevRow, currRow = currRow, prevRow
	}

	return prevRow[lenB]
}

// DamerauLevenshteinDistance computes the (optimal string alignment) Damerau-Levenshtein distance.
// Transpositions of two adjacent characters count as one edit.
func DamerauLevenshteinDistance(a, b string) int {
	runesA := []rune(a)
	runesB := []rune(b)

	lenA := len(runesA)
	lenB := len(runesB)

	if lenA == 0 {
		return lenB
	}
	if lenB == 0 {
		return lenA
	}

	// For Damerau-Levenshtein, we need three rows instead of two to handle transpositions
	// prevPrevRow: i-2 row (needed for transposition)
	// prevRow: i-1 row
	// currRow: i row (current)
	prevPrevRow := make([]int, lenB+1)
	prevRow := make([]int, lenB+1)
	currRow := make([]int, lenB+1)

	for j := 0; j <= lenB; j++ {
		prevRow[j] = j
	}

	for i := 1; i <= lenA; i++ {
		currRow[0] = i

		for j := 1; j <= lenB; j++ {
			cost := 0
			if runesA[i-1] != runesB[j-1] {
				cost = 1
			}

			currRow[j] = min(prevRow[j]+1, currRow[j-1]+1, prevRow[j-1]+cost)

			// Transposition operation (Damerau extension)
			if i > 1 && j > 1 &&
				runesA[i-1] == runesB[j-2] &&
				runesA[i-2] == runesB[j-1] {
				if transposition := prevPrevRow[j-2] + cost; transposition < currRow[j] {
					currRow[j] = transposition
				}
			}
		}

		// Rotate rows: prevPrevRow <- prevRow <- currRow
		prevPrevRow, prevRow, currRow = prevRow, currRow, prevPrevRow
	}

	return prevRow[lenB]
}
