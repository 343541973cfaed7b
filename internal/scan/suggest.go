package scan

// maxSuggestDistance is the largest edit distance reported as a likely
// misspelling of the macro name.
const maxSuggestDistance = 2

// similar reports whether name looks like a misspelling of macro.
func similar(name, macro string) bool {
	if name == macro || len(name) < 3 {
		return false
	}

	return levenshtein(name, macro) <= maxSuggestDistance
}

// levenshtein computes the edit distance between a and b using two rows.
func levenshtein(a, b string) int {
	if len(a) > len(b) {
		a, b = b, a
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
