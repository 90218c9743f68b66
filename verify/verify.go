package verify

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/stablematch/core"
)

// CheckValidity reports whether m is a bijection between hospitals {1..n}
// and students {1..n}. It returns nil or an *InvalidMatchingError describing
// the first failing category.
// Complexity: O(n log n) time, O(n) space.
func CheckValidity(n int, m core.Matching) error {
	// (a) Hospital key set must equal {1..n}.
	var missing, extra []int
	var id int
	for id = 1; id <= n; id++ {
		if _, ok := m[id]; !ok {
			missing = append(missing, id)
		}
	}
	for _, id = range m.Hospitals() {
		if id < 1 || id > n {
			extra = append(extra, id)
		}
	}
	if len(missing) > 0 || len(extra) > 0 {
		return &InvalidMatchingError{Kind: MismatchedHospitals, Missing: missing, Extra: extra}
	}

	// (b) Exactly n assignments whose student set equals {1..n}.
	if len(m) != n {
		return &InvalidMatchingError{Kind: WrongAssignmentCount}
	}
	count := make([]int, n+1)
	outside := make(map[int]struct{})
	var s int
	for _, s = range m {
		if s < 1 || s > n {
			outside[s] = struct{}{}
			continue
		}
		count[s]++
	}
	var dups []int
	for id = 1; id <= n; id++ {
		switch {
		case count[id] == 0:
			missing = append(missing, id)
		case count[id] > 1:
			dups = append(dups, id)
		}
	}
	if len(missing) > 0 || len(outside) > 0 {
		return &InvalidMatchingError{
			Kind:       MismatchedStudents,
			Missing:    missing,
			Extra:      sortedKeys(outside),
			Duplicates: dups,
		}
	}

	// (c) No student assigned twice. Unreachable once (a) and (b) hold, kept
	// as an explicit guard of the bijection.
	if len(dups) > 0 {
		return &InvalidMatchingError{Kind: DuplicateStudents, Duplicates: dups}
	}

	return nil
}

// CheckStability searches for a blocking pair in m. It returns nil when m is
// stable, or an *UnstableMatchingError for the first pair found, scanning
// hospitals in ascending id order and, per hospital, students in its
// preference order.
//
// Precondition: CheckValidity(inst.N(), m) == nil. Ids outside 1..n or a
// student assigned twice are reported as ErrInvalidMatching instead of
// producing a wrong verdict.
//
// Complexity: O(n²) time worst case, O(n) space.
func CheckStability(inst *core.Instance, m core.Matching) error {
	if inst == nil {
		return ErrNilInstance
	}
	n := inst.N()

	// Stage 1: dense inverse matching (student → hospital).
	holder := make([]int, n+1)
	var h, s int
	for h = 1; h <= n; h++ {
		s = m[h]
		if s < 1 || s > n {
			return fmt.Errorf("%w: hospital %d assigned to student %d outside 1..%d", ErrInvalidMatching, h, s, n)
		}
		if holder[s] != 0 {
			return fmt.Errorf("%w: student %d assigned to hospitals %d and %d", ErrInvalidMatching, s, holder[s], h)
		}
		holder[s] = h
	}

	// Stage 2: every student h ranks above its partner is a candidate.
	hr := inst.Rank(core.Hospitals)
	sr := inst.Rank(core.Students)
	var cutoff, cur int
	for h = 1; h <= n; h++ {
		s = m[h]
		cutoff = hr.Rank(h, s)
		for _, cand := range inst.List(core.Hospitals, h)[:cutoff] {
			cur = holder[cand]
			if sr.Prefers(cand, h, cur) {
				return &UnstableMatchingError{Hospital: h, Student: cand, HospitalMatch: s, StudentMatch: cur}
			}
		}
	}

	return nil
}

// Verify runs CheckValidity and then CheckStability; nil means the matching
// is a valid, stable bijection.
func Verify(inst *core.Instance, m core.Matching) error {
	if inst == nil {
		return ErrNilInstance
	}
	if err := CheckValidity(inst.N(), m); err != nil {
		return err
	}

	return CheckStability(inst, m)
}

// sortedKeys returns the keys of set in ascending order.
func sortedKeys(set map[int]struct{}) []int {
	if len(set) == 0 {
		return nil
	}
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
