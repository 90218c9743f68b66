// Package galeshapley implements deferred acceptance (Gale–Shapley) on a
// validated core.Instance.
//
// The proposing side walks down its preference lists; each receiver holds on
// to the best proposal seen so far and trades up whenever a strictly better
// proposer arrives. The result is the proposer-optimal stable matching.
//
// Complexity:
//
//   - Time:  O(n²) - every proposer proposes to every receiver at most once
//     and each proposal is resolved in O(1) via the receiver's rank table
//     (O(log n) extra per worklist operation under LowestID).
//   - Space: O(n) on top of the instance (pointers, partners, worklist).
//
// Notes on implementation choices:
//
//   - Free proposers live in an explicit worklist instead of being found by a
//     linear rescan, so selecting the next proposer is O(1).
//   - A proposer whose pointer reached n is never pushed again.
//   - Rank lookups are bounds checked; a failure is reported as
//     core.ErrInvalidPreferenceData instead of panicking.
package galeshapley

import (
	"fmt"

	"github.com/katalvlaran/stablematch/core"
)

// Match runs deferred acceptance on inst and returns the stable matching
// together with the number of proposals made.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. inst must be non-nil (ErrNilInstance).
//  3. inst must be non-empty (core.ErrInvalidPreferenceData).
//
// Options customization:
//
//   - WithProposer(core.Students): student-proposing run (student-optimal).
//   - WithOrder(o): free-proposer policy; does not change the result.
//   - WithOnProposal(fn): observe each proposal.
//
// Complexity:
//
//   - Time:  O(n²)
//   - Space: O(n)
func Match(inst *core.Instance, opts ...Option) (*Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate the instance.
	if inst == nil {
		return nil, ErrNilInstance
	}
	n := inst.N()
	if n < 1 {
		return nil, fmt.Errorf("galeshapley: %w: empty instance", core.ErrInvalidPreferenceData)
	}

	// 3) Prepare the runner; every proposer starts free at pointer 0.
	r := &runner{
		inst:     inst,
		opts:     cfg,
		n:        n,
		proposer: cfg.Proposer,
		ranks:    inst.Rank(cfg.Proposer.Other()),
		next:     make([]int, n),
		partnerP: make([]int, n),
		partnerR: make([]int, n),
		free:     newWorklist(cfg.Order, n),
	}
	r.init()

	// 4) Main loop.
	if err := r.process(); err != nil {
		return nil, err
	}

	// 5) Freeze the matching.
	return r.result()
}

// runner holds the mutable state of a single Match call. It is never shared.
type runner struct {
	inst     *core.Instance
	opts     Options
	n        int
	proposer core.Side
	ranks    *core.RankTable // receivers' rank table
	next     []int           // next[p-1]: position of p's next candidate
	partnerP []int           // partnerP[p-1]: receiver held by p, 0 if free
	partnerR []int           // partnerR[r-1]: proposer held by r, 0 if free
	free     worklist
	count    int
}

// init pushes every proposer onto the worklist in ascending id order.
func (r *runner) init() {
	for id := 1; id <= r.n; id++ {
		r.free.push(id)
	}
}

// process drains the worklist. A popped proposer with an exhausted list is
// dropped; otherwise it makes exactly one proposal.
func (r *runner) process() error {
	var p int
	for r.free.len() > 0 {
		p = r.free.pop()
		if r.next[p-1] >= r.n {
			continue
		}
		if err := r.propose(p); err != nil {
			return err
		}
	}

	return nil
}

// propose sends p's next proposal and resolves it against the receiver's
// current partner.
func (r *runner) propose(p int) error {
	// Candidate at p's pointer; advance and count.
	recv := r.inst.List(r.proposer, p)[r.next[p-1]]
	r.next[p-1]++
	r.count++

	cur := r.partnerR[recv-1]
	if cur == 0 {
		r.engage(p, recv)
		r.opts.OnProposal(Proposal{Side: r.proposer, Proposer: p, Receiver: recv, Accepted: true})
		return nil
	}

	// Strictly lower rank wins; ties cannot occur between distinct proposers.
	newRank, err := r.ranks.Lookup(recv, p)
	if err != nil {
		return fmt.Errorf("galeshapley: %w", err)
	}
	curRank, err := r.ranks.Lookup(recv, cur)
	if err != nil {
		return fmt.Errorf("galeshapley: %w", err)
	}
	if newRank < curRank {
		r.partnerP[cur-1] = 0
		r.free.push(cur) // pointer untouched: cur resumes further down its list
		r.engage(p, recv)
		r.opts.OnProposal(Proposal{Side: r.proposer, Proposer: p, Receiver: recv, Accepted: true, Displaced: cur})
		return nil
	}

	// Rejected: p stays free and will try its next candidate.
	r.free.push(p)
	r.opts.OnProposal(Proposal{Side: r.proposer, Proposer: p, Receiver: recv})

	return nil
}

// engage records the (provisional) pair p ↔ recv.
func (r *runner) engage(p, recv int) {
	r.partnerP[p-1] = recv
	r.partnerR[recv-1] = p
}

// result converts the partner arrays into a hospital → student Matching.
// With complete lists on both sides everybody is matched; an unmatched
// proposer means the instance violated its invariants.
func (r *runner) result() (*Result, error) {
	m := make(core.Matching, r.n)
	var id int
	for id = 1; id <= r.n; id++ {
		if r.partnerP[id-1] == 0 {
			return nil, fmt.Errorf("galeshapley: %w: %s %d exhausted its list unmatched",
				core.ErrInvalidPreferenceData, r.proposer, id)
		}
		if r.proposer == core.Hospitals {
			m[id] = r.partnerP[id-1]
		} else {
			m[r.partnerP[id-1]] = id
		}
	}

	return &Result{Matching: m, Proposals: r.count, Proposer: r.proposer}, nil
}
