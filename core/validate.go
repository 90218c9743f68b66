// Package core - validation helpers shared by the constructors.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only wrapped sentinels.
//   - O(n) per list with a reusable "seen" buffer; O(n²) per instance.
package core

// copyLists validates every list of one side and returns a private deep copy.
// Agents are reported 1-based, e.g. "hospital 2 preferences are not a valid
// permutation of 1..3".
func copyLists(side Side, n int, src [][]int) ([][]int, error) {
	out := make([][]int, n)
	seen := make([]bool, n+1) // index 0 unused
	var id int
	for id = 1; id <= n; id++ {
		l := src[id-1]
		if len(l) != n {
			return nil, malformed(ErrWrongCount, "%s %d has %d preferences, expected %d", side, id, len(l), n)
		}
		if !isPermutation(l, seen) {
			return nil, malformed(ErrNotPermutation, "%s %d preferences are not a valid permutation of 1..%d", side, id, n)
		}
		out[id-1] = append([]int(nil), l...)
	}

	return out, nil
}

// isPermutation reports whether l is a permutation of 1..len(l).
// seen must have length len(l)+1; it is cleared before returning.
// Complexity: O(len(l)).
func isPermutation(l []int, seen []bool) bool {
	ok := true
	var v int
	for _, v = range l {
		if v < 1 || v >= len(seen) || seen[v] {
			ok = false
			break
		}
		seen[v] = true
	}
	// Reset only what was touched.
	for _, v = range l {
		if v >= 1 && v < len(seen) {
			seen[v] = false
		}
	}

	return ok
}

// IsPermutation reports whether l is a permutation of 1..n.
func IsPermutation(l []int, n int) bool {
	if len(l) != n {
		return false
	}

	return isPermutation(l, make([]bool, n+1))
}
