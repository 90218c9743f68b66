package verify

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors matched by the typed verdicts.
var (
	// ErrInvalidMatching is matched by *InvalidMatchingError.
	ErrInvalidMatching = errors.New("verify: invalid matching")

	// ErrUnstableMatching is matched by *UnstableMatchingError.
	ErrUnstableMatching = errors.New("verify: unstable matching")

	// ErrNilInstance indicates a nil instance was passed to CheckStability.
	ErrNilInstance = errors.New("verify: instance is nil")
)

// Violation classifies an invalid matching by the first failing category.
type Violation int

const (
	// MismatchedHospitals: the key set is not exactly {1..n}.
	MismatchedHospitals Violation = iota + 1
	// WrongAssignmentCount: the matching does not hold n assignments.
	WrongAssignmentCount
	// MismatchedStudents: the assigned student set is not exactly {1..n}.
	MismatchedStudents
	// DuplicateStudents: a student is assigned to several hospitals.
	DuplicateStudents
)

// String returns a short name of the category.
func (v Violation) String() string {
	switch v {
	case MismatchedHospitals:
		return "mismatched hospitals"
	case WrongAssignmentCount:
		return "wrong assignment count"
	case MismatchedStudents:
		return "mismatched students"
	case DuplicateStudents:
		return "duplicate students"
	default:
		return fmt.Sprintf("violation(%d)", int(v))
	}
}

// InvalidMatchingError reports why a matching is not a bijection.
//
// For MismatchedHospitals, Missing/Extra are hospital ids; for
// MismatchedStudents they are unmatched and out-of-range student ids. Duplicates
// lists students assigned more than once and is filled whenever they exist.
type InvalidMatchingError struct {
	Kind       Violation
	Missing    []int
	Extra      []int
	Duplicates []int
}

// Error renders the verdict, e.g. "Invalid: Missing hospitals: [2]".
func (e *InvalidMatchingError) Error() string {
	var parts []string
	switch e.Kind {
	case MismatchedHospitals:
		parts = appendIDs(parts, "Missing hospitals", e.Missing)
		parts = appendIDs(parts, "Extra hospitals", e.Extra)
	case WrongAssignmentCount:
		parts = append(parts, "Matching does not contain n assignments")
	case MismatchedStudents:
		parts = appendIDs(parts, "Unmatched students", e.Missing)
		parts = appendIDs(parts, "Invalid students", e.Extra)
		parts = appendIDs(parts, "Duplicate student assignments", e.Duplicates)
	case DuplicateStudents:
		parts = appendIDs(parts, "Duplicate student assignments", e.Duplicates)
	}

	return "Invalid: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrInvalidMatching) true.
func (e *InvalidMatchingError) Is(target error) bool { return target == ErrInvalidMatching }

// UnstableMatchingError reports the first blocking pair found: Hospital and
// Student prefer each other to HospitalMatch (Hospital's student) and
// StudentMatch (Student's hospital).
type UnstableMatchingError struct {
	Hospital      int
	Student       int
	HospitalMatch int
	StudentMatch  int
}

// Error renders the blocking pair with both current partners.
func (e *UnstableMatchingError) Error() string {
	return fmt.Sprintf("Unstable: Blocking pair (Hospital %d, Student %d). "+
		"Hospital %d prefers %d over its match %d, "+
		"and Student %d prefers %d over its match %d.",
		e.Hospital, e.Student,
		e.Hospital, e.Student, e.HospitalMatch,
		e.Student, e.Hospital, e.StudentMatch)
}

// Is makes errors.Is(err, ErrUnstableMatching) true.
func (e *UnstableMatchingError) Is(target error) bool { return target == ErrUnstableMatching }

// appendIDs adds "label: [a b c]" rendered with commas when ids is non-empty.
func appendIDs(parts []string, label string, ids []int) []string {
	if len(ids) == 0 {
		return parts
	}
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = fmt.Sprint(id)
	}

	return append(parts, fmt.Sprintf("%s: [%s]", label, strings.Join(s, ", ")))
}
