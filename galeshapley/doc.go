// Package galeshapley computes a stable one-to-one matching between hospitals
// and students with the deferred-acceptance algorithm.
//
// What & Why:
//
//	Given a validated core.Instance (every agent ranks every agent of the other
//	side), Match returns the proposer-optimal stable matching: no hospital and
//	student outside each other's assignment both prefer each other to their
//	partners, and among all stable matchings every proposer gets its best
//	achievable partner. With hospitals proposing (the default) the result is
//	hospital-optimal and student-pessimal.
//
// Algorithm outline:
//
//  1. Every proposer is free; each keeps a pointer into its own list.
//  2. A free proposer with candidates left proposes to the next one.
//  3. A free receiver accepts; a held receiver keeps the better of its current
//     partner and the new proposer (by its rank table), freeing the other.
//  4. Stop when no free proposer has candidates left.
//
// Each proposer proposes to each receiver at most once, so Proposals ≤ n².
// The final matching and the proposal count do not depend on which free
// proposer moves first (see Order); in fact
//
//	Proposals == Σ_p (rank_p(partner(p)) + 1).
//
// Options:
//
//   - WithProposer(side)   – core.Hospitals (default) or core.Students.
//   - WithOrder(order)     – FIFO (default), LIFO, LowestID.
//   - WithOnProposal(fn)   – hook called after each proposal is resolved.
//
// Errors:
//
//   - ErrOptionViolation            – invalid option value.
//   - ErrNilInstance                – inst == nil.
//   - core.ErrInvalidPreferenceData – empty instance or a broken invariant.
//
// Example:
//
//	res, err := galeshapley.Match(inst)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range res.Matching.Pairs() {
//	    fmt.Println(p.Hospital, p.Student)
//	}
//
// The engine performs no I/O and keeps no state between calls; independent
// calls may run concurrently on shared instances.
package galeshapley
