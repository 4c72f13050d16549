// Package editgate bounds how far a freet may drift from its original text.
package editgate

// MaxDrift is the smallest edit distance that is rejected.
const MaxDrift = 10

// Allowed reports whether proposed is within MaxDrift edits of original.
// Callers pass the post's original content, not its current one, so the
// cumulative drift is what gets bounded.
func Allowed(original, proposed string) bool {
	return Distance(original, proposed) < MaxDrift
}

// Distance returns the Levenshtein distance between a and b, counted in runes.
//
// d(i, j) is the distance between the suffixes a[i:] and b[j:]. Only two rows
// of the table are kept: next holds d(i+1, ·) while cur is filled for d(i, ·).
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n, m := len(ra), len(rb)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}

	next := make([]int, m+1)
	cur := make([]int, m+1)
	for j := 0; j <= m; j++ {
		next[j] = m - j
	}

	for i := n - 1; i >= 0; i-- {
		cur[m] = n - i
		for j := m - 1; j >= 0; j-- {
			if ra[i] == rb[j] {
				cur[j] = next[j+1]
				continue
			}
			insert := cur[j+1]
			remove := next[j]
			replace := next[j+1]
			cur[j] = 1 + min(insert, remove, replace)
		}
		next, cur = cur, next
	}
	return next[0]
}
