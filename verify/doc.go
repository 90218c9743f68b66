// Package verify checks an externally supplied hospital → student matching
// against a preference instance.
//
// Two independent checks, meant to run in this order:
//
//   - CheckValidity(n, m): is m a bijection {1..n} → {1..n}?
//     Categories are tested in order and only the first failing one is
//     reported, with the offending ids enumerated:
//     (a) hospital ids present   - "Missing hospitals: [2]", "Extra hospitals: [7]"
//     (b) assignment count and student ids - "Unmatched students: [..]",
//     "Invalid students: [..]"
//     (c) duplicate assignments - "Duplicate student assignments: [..]"
//
//   - CheckStability(inst, m): does a blocking pair exist? For each hospital
//     h (ascending) only students ranked by h above its partner are scanned;
//     the first student that also prefers h to its own partner is reported.
//     Precondition: m passed CheckValidity.
//
// Verify runs both. Verdicts are returned as typed errors so callers can
// branch with errors.Is / errors.As:
//
//	err := verify.Verify(inst, m)
//	var unstable *verify.UnstableMatchingError
//	switch {
//	case err == nil:
//	    fmt.Println("VALID STABLE")
//	case errors.As(err, &unstable):
//	    fmt.Println(unstable.Hospital, unstable.Student)
//	case errors.Is(err, verify.ErrInvalidMatching):
//	    fmt.Println(err)
//	}
//
// Complexity:
//
//   - CheckValidity:  O(n log n) (sorted id lists for stable diagnostics).
//   - CheckStability: O(n²) worst case; O(1) per comparison via rank tables.
//
// Nothing here mutates its inputs; repeated calls return identical verdicts.
package verify
