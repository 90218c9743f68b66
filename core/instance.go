// SPDX-License-Identifier: MIT
// Package: stablematch/core
//
// instance.go - the immutable, validated preference instance.
//
// Design:
//   • Lists are stored densely: lists[side][id-1] is agent id's permutation.
//   • Both rank tables are built once in the constructor; every consumer
//     (engine, verifier, benchmarks) shares them read-only.
//   • Constructors copy their input, so later caller mutations cannot break
//     the validated invariants.

package core

import "sort"

// Instance is a validated one-to-one preference profile of size n.
// The zero value is an empty instance (N() == 0) and is rejected by the
// engine and the verifier.
type Instance struct {
	n     int
	lists [2][][]int
	ranks [2]*RankTable
}

// New validates and wraps the two preference families. hospitals[i] is the
// list of hospital i+1, students[j] the list of student j+1; n is
// len(hospitals).
//
// Validation (in order, first failure wins):
//  1. n ≥ 1                                   (ErrBadSize)
//  2. len(students) == n                      (ErrWrongCount)
//  3. every list has exactly n entries        (ErrWrongCount)
//  4. every list is a permutation of 1..n     (ErrNotPermutation)
//
// Every returned error also matches ErrMalformedInput.
// Complexity: O(n²) time, O(n²) space.
func New(hospitals, students [][]int) (*Instance, error) {
	n := len(hospitals)
	if n < 1 {
		return nil, malformed(ErrBadSize, "got n=%d", n)
	}
	if len(students) != n {
		return nil, malformed(ErrWrongCount, "expected %d students, got %d", n, len(students))
	}

	inst := &Instance{n: n}
	families := [2][][]int{hospitals, students}
	for _, side := range []Side{Hospitals, Students} {
		lists, err := copyLists(side, n, families[side])
		if err != nil {
			return nil, err
		}
		inst.lists[side] = lists
		inst.ranks[side] = newRankTable(lists)
	}

	return inst, nil
}

// FromMaps builds an Instance from lists keyed by agent id 1..n. Both maps
// must contain exactly the keys 1..n.
// Complexity: O(n²) time, O(n²) space.
func FromMaps(n int, hospitals, students map[int][]int) (*Instance, error) {
	if n < 1 {
		return nil, malformed(ErrBadSize, "got n=%d", n)
	}
	h, err := denseLists(Hospitals, n, hospitals)
	if err != nil {
		return nil, err
	}
	s, err := denseLists(Students, n, students)
	if err != nil {
		return nil, err
	}

	return New(h, s)
}

// N returns the number of agents on each side.
func (inst *Instance) N() int { return inst.n }

// List returns the preference list of agent id on side. The slice is shared
// with the instance and MUST NOT be modified.
// Panics if id is outside [1,n].
func (inst *Instance) List(side Side, id int) []int {
	return inst.lists[side][id-1]
}

// Rank returns the rank table of side. The table is shared and read-only.
func (inst *Instance) Rank(side Side) *RankTable {
	return inst.ranks[side]
}

// Prefs returns a fresh copy of side's preference lists keyed by agent id.
// Complexity: O(n²).
func (inst *Instance) Prefs(side Side) map[int][]int {
	out := make(map[int][]int, inst.n)
	for i, l := range inst.lists[side] {
		out[i+1] = append([]int(nil), l...)
	}

	return out
}

// denseLists converts an id-keyed family into the slice form used by New,
// reporting the smallest missing id or the smallest unexpected key.
func denseLists(side Side, n int, m map[int][]int) ([][]int, error) {
	out := make([][]int, n)
	var id int
	for id = 1; id <= n; id++ {
		l, ok := m[id]
		if !ok {
			return nil, malformed(ErrWrongCount, "missing %s %d", side, id)
		}
		out[id-1] = l
	}
	if len(m) != n {
		extra := make([]int, 0, len(m)-n)
		for id = range m {
			if id < 1 || id > n {
				extra = append(extra, id)
			}
		}
		sort.Ints(extra)
		return nil, malformed(ErrWrongCount, "unexpected %s %d", side, extra[0])
	}

	return out, nil
}
