// SPDX-License-Identifier: MIT
// Package: stablematch/core
//
// types.go - sentinel errors, Side and Pair.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Every validation failure wraps ErrMalformedInput AND a specific
//     sentinel (ErrBadSize, ErrWrongCount, ErrNotPermutation) so both the
//     coarse and the fine class are observable.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for instance construction and rank lookups.
var (
	// ErrMalformedInput is the umbrella error for preference data that cannot
	// form a valid Instance.
	ErrMalformedInput = errors.New("core: malformed input")

	// ErrBadSize indicates n < 1.
	ErrBadSize = errors.New("core: n must be at least 1")

	// ErrWrongCount indicates a missing or extra agent, or a preference list
	// whose length differs from n.
	ErrWrongCount = errors.New("core: wrong record count")

	// ErrNotPermutation indicates a preference list that repeats or omits ids.
	ErrNotPermutation = errors.New("core: not a permutation")

	// ErrInvalidPreferenceData indicates an id outside [1,n] reached a rank
	// lookup. Validated instances never produce it.
	ErrInvalidPreferenceData = errors.New("core: invalid preference data")
)

// malformed wraps both ErrMalformedInput and the specific sentinel kind.
func malformed(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %w: %s", ErrMalformedInput, kind, fmt.Sprintf(format, args...))
}

// Side selects one of the two agent families.
type Side int

const (
	// Hospitals is the side that proposes by default.
	Hospitals Side = iota
	// Students is the receiving side by default.
	Students
)

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == Hospitals {
		return Students
	}

	return Hospitals
}

// String returns the singular, lower-case agent noun ("hospital", "student").
func (s Side) String() string {
	switch s {
	case Hospitals:
		return "hospital"
	case Students:
		return "student"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// Pair is one hospital–student assignment.
type Pair struct {
	Hospital int
	Student  int
}
