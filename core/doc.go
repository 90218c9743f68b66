// Package core defines the shared data model of stablematch: the two sides
// of a one-to-one market, validated preference tables, dense rank tables and
// the hospital → student Matching.
//
// 🚀 What lives here?
//
//   - Side:      Hospitals or Students; agents on each side are numbered 1..n
//     independently (hospital 3 and student 3 are different agents).
//   - Instance:  an immutable pair of preference families. Every agent ranks
//     every agent of the opposite side exactly once (a permutation of 1..n).
//   - RankTable: per side, an n×n arena answering "at which 0-based position
//     does agent a list agent b?" in O(1), without hashing.
//   - Matching:  map from hospital id to student id. The engine always returns
//     a bijection; the verifier accepts arbitrary (possibly broken) matchings.
//
// Construction is the single preprocessing contract shared by the engine and
// the verifier: New / FromMaps either return a fully validated *Instance or an
// error wrapping ErrMalformedInput with a human-readable reason.
//
// Errors (sentinel):
//
//	ErrMalformedInput        - umbrella for every validation failure below.
//	ErrBadSize               - n < 1.
//	ErrWrongCount            - wrong number of agents or list entries.
//	ErrNotPermutation        - a list is not a permutation of 1..n.
//	ErrInvalidPreferenceData - an id outside 1..n reached a rank lookup.
//
// Complexity:
//
//   - New / FromMaps: O(n²) time, O(n²) space (lists + two rank tables).
//   - RankTable.Rank, Prefers: O(1).
//
// Concurrency: an *Instance is never mutated after construction, so it may be
// shared freely between goroutines (e.g. parallel benchmark sweeps).
//
// Example:
//
//	inst, err := core.New(
//	    [][]int{{1, 2}, {1, 2}}, // hospitals 1 and 2
//	    [][]int{{2, 1}, {1, 2}}, // students 1 and 2
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(inst.Rank(core.Students).Prefers(1, 2, 1)) // true
package core
