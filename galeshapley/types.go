// Package galeshapley defines options, hooks and results for the
// deferred-acceptance engine.
package galeshapley

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stablematch/core"
)

// Sentinel errors returned by Match.
var (
	// ErrNilInstance indicates that a nil *core.Instance was passed to Match.
	ErrNilInstance = errors.New("galeshapley: instance is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("galeshapley: invalid option supplied")
)

// Order selects which free proposer moves next. The final matching and the
// proposal count do not depend on it; only the interleaving of proposals
// (observable through OnProposal) does.
type Order int

const (
	// FIFO serves free proposers in arrival order (default).
	FIFO Order = iota
	// LIFO serves the most recently freed proposer first.
	LIFO
	// LowestID always serves the free proposer with the smallest id.
	LowestID
)

// String returns the lower-case policy name used by the CLI.
func (o Order) String() string {
	switch o {
	case FIFO:
		return "fifo"
	case LIFO:
		return "lifo"
	case LowestID:
		return "lowest"
	default:
		return fmt.Sprintf("order(%d)", int(o))
	}
}

// ParseOrder is the inverse of Order.String.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "fifo":
		return FIFO, nil
	case "lifo":
		return LIFO, nil
	case "lowest":
		return LowestID, nil
	}

	return FIFO, fmt.Errorf("%w: unknown order %q", ErrOptionViolation, s)
}

// Proposal describes a single proposal as reported to OnProposal.
type Proposal struct {
	Side      core.Side // proposing side
	Proposer  int       // id on Side
	Receiver  int       // id on Side.Other()
	Accepted  bool      // receiver (provisionally) accepted
	Displaced int       // proposer dumped by Receiver on acceptance; 0 if none
}

// Options configures Match.
type Options struct {
	// Proposer is the proposing side. Hospitals (default) yields the
	// hospital-optimal, student-pessimal stable matching.
	Proposer core.Side

	// Order is the free-proposer selection policy.
	Order Order

	// OnProposal, if set, is called after every proposal is resolved.
	OnProposal func(p Proposal)

	// internal error recorded during option parsing
	err error
}

// Option configures Match via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when Match is invoked.
type Option func(*Options)

// DefaultOptions returns hospital-proposing, FIFO, no hook.
func DefaultOptions() Options {
	return Options{
		Proposer:   core.Hospitals,
		Order:      FIFO,
		OnProposal: func(Proposal) {},
	}
}

// WithProposer selects the proposing side.
func WithProposer(side core.Side) Option {
	return func(o *Options) {
		if side != core.Hospitals && side != core.Students {
			o.err = fmt.Errorf("%w: unknown proposer side %d", ErrOptionViolation, int(side))
			return
		}
		o.Proposer = side
	}
}

// WithOrder selects the free-proposer policy.
func WithOrder(order Order) Option {
	return func(o *Options) {
		switch order {
		case FIFO, LIFO, LowestID:
			o.Order = order
		default:
			o.err = fmt.Errorf("%w: unknown order %d", ErrOptionViolation, int(order))
		}
	}
}

// WithOnProposal registers a hook observing each proposal. nil is ignored.
func WithOnProposal(fn func(p Proposal)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProposal = fn
		}
	}
}

// Result is the outcome of a deferred-acceptance run.
type Result struct {
	// Matching is always expressed hospital → student, whichever side proposed.
	Matching core.Matching

	// Proposals is the number of proposals made; at most n².
	Proposals int

	// Proposer is the side that proposed.
	Proposer core.Side
}
