package core

import (
	"sort"

	"golang.org/x/exp/maps"
)

// Matching maps hospital id → student id.
//
// A valid matching of size n is a bijection {1..n} → {1..n}. The type itself
// does not enforce that: the verifier must be able to inspect arbitrary,
// externally produced (possibly broken) matchings.
type Matching map[int]int

// Hospitals returns the hospital ids present in m, ascending.
func (m Matching) Hospitals() []int {
	ids := maps.Keys(m)
	sort.Ints(ids)

	return ids
}

// Students returns the student ids assigned in m, in ascending hospital
// order. Duplicates are preserved.
func (m Matching) Students() []int {
	hs := m.Hospitals()
	out := make([]int, len(hs))
	for i, h := range hs {
		out[i] = m[h]
	}

	return out
}

// Inverse returns the student → hospital map. When a student is assigned to
// several hospitals the highest hospital id wins; call it on valid matchings.
func (m Matching) Inverse() map[int]int {
	inv := make(map[int]int, len(m))
	for _, h := range m.Hospitals() {
		inv[m[h]] = h
	}

	return inv
}

// Pairs returns the assignments sorted by hospital id.
func (m Matching) Pairs() []Pair {
	hs := m.Hospitals()
	out := make([]Pair, len(hs))
	for i, h := range hs {
		out[i] = Pair{Hospital: h, Student: m[h]}
	}

	return out
}

// Equal reports whether m and o hold exactly the same assignments.
func (m Matching) Equal(o Matching) bool {
	return maps.Equal(m, o)
}

// Clone returns an independent copy of m.
func (m Matching) Clone() Matching {
	return maps.Clone(m)
}
