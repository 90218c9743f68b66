// SPDX-License-Identifier: MIT
// Package: stablematch/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - All public constructors are declared here, implemented in impl_*.go.
//   - Functional options resolve into an immutable builderConfig (no globals).
//   - Determinism: same n/kind/seed ⇒ identical instance.
//   - Safety: never panic; return wrapped sentinels.

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/stablematch/core"
)

// Kind names an instance family for Build.
type Kind string

// Supported instance families.
const (
	KindRandom      Kind = "random"
	KindIdentical   Kind = "identical"
	KindMutualFirst Kind = "mutual"
	KindLatin       Kind = "latin"
)

// Kinds lists every Kind accepted by Build, in documentation order.
func Kinds() []Kind {
	return []Kind{KindRandom, KindIdentical, KindMutualFirst, KindLatin}
}

// ParseKind resolves a case-insensitive kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}

	return "", builderErrorf(MethodBuild, ErrUnknownKind, "%q", s)
}

// Build dispatches to the constructor of kind. Options are ignored by the
// deterministic kinds.
func Build(kind Kind, n int, opts ...BuilderOption) (*core.Instance, error) {
	switch kind {
	case KindRandom:
		return Random(n, opts...)
	case KindIdentical:
		return Identical(n)
	case KindMutualFirst:
		return MutualFirst(n)
	case KindLatin:
		return Latin(n)
	default:
		return nil, builderErrorf(MethodBuild, ErrUnknownKind, "%q", string(kind))
	}
}

// Random returns an instance whose 2n lists are independent uniform random
// permutations (Fisher–Yates via rand.Perm). Requires WithSeed or WithRand.
// Complexity: O(n²) time and space.
func Random(n int, opts ...BuilderOption) (*core.Instance, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateMin(MethodRandom, n); err != nil {
		return nil, err
	}
	if err := validateRNG(MethodRandom, cfg); err != nil {
		return nil, err
	}

	return finish(MethodRandom, randomLists(n, cfg), randomLists(n, cfg))
}

// Identical returns the instance where every agent ranks the other side
// 1, 2, …, n. Hospital k ends with student k after being rejected k-1 times.
// Complexity: O(n²).
func Identical(n int) (*core.Instance, error) {
	if err := validateMin(MethodIdentical, n); err != nil {
		return nil, err
	}

	return finish(MethodIdentical, shiftedLists(n, 0), shiftedLists(n, 0))
}

// MutualFirst returns cyclic lists where hospital i lists i, i+1, … and
// student i lists i, i-1, …; every pair (i,i) is a mutual first choice.
// Complexity: O(n²).
func MutualFirst(n int) (*core.Instance, error) {
	if err := validateMin(MethodMutualFirst, n); err != nil {
		return nil, err
	}

	return finish(MethodMutualFirst, cyclicLists(n, 0, +1), cyclicLists(n, 0, -1))
}

// Latin returns cyclic lists where hospital h lists h, h+1, … and student s
// lists s+1, s+2, …, s. Hospitals proposing yields h→h; students proposing
// yields h→h-1 (cyclically), each hospital's last choice.
// Complexity: O(n²).
func Latin(n int) (*core.Instance, error) {
	if err := validateMin(MethodLatin, n); err != nil {
		return nil, err
	}

	return finish(MethodLatin, cyclicLists(n, 0, +1), cyclicLists(n, 1, +1))
}

// finish validates generated lists through the core constructor so every
// builder output satisfies the same invariants as parsed input.
func finish(method string, hospitals, students [][]int) (*core.Instance, error) {
	inst, err := core.New(hospitals, students)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return inst, nil
}
