// SPDX-License-Identifier: MIT
// Package: stablematch/builder
//
// impl_lists.go - list generators behind the public constructors.
//
// Determinism:
//   - Random lists are drawn agent by agent in ascending id order, hospitals
//     before students, so a fixed seed fixes the whole instance.

package builder

// randomLists draws n independent uniform permutations of 1..n.
func randomLists(n int, cfg builderConfig) [][]int {
	out := make([][]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		out[i] = cfg.rng.Perm(n) // 0-based permutation
		for j = range out[i] {
			out[i][j]++
		}
	}

	return out
}

// shiftedLists returns n copies of 1..n rotated left by shift.
func shiftedLists(n, shift int) [][]int {
	out := make([][]int, n)
	for i := range out {
		out[i] = cyclicRow(n, shift, +1)
	}

	return out
}

// cyclicLists returns, for agent i (0-based), the cycle starting at
// i+offset and stepping by dir (+1 or -1) modulo n.
func cyclicLists(n, offset, dir int) [][]int {
	out := make([][]int, n)
	for i := range out {
		out[i] = cyclicRow(n, i+offset, dir)
	}

	return out
}

// cyclicRow returns start, start+dir, … (mod n) as 1-based ids.
func cyclicRow(n, start, dir int) []int {
	row := make([]int, n)
	for k := range row {
		row[k] = ((start+dir*k)%n+n)%n + 1
	}

	return row
}
