package core

import "fmt"

// RankTable maps (agent, other) to the 0-based position of other in agent's
// preference list. Rows are stored back to back in a single arena:
//
//	rank[(agent-1)*n + (other-1)]
//
// Invariant: every row is a bijection onto {0,…,n-1}.
type RankTable struct {
	n    int
	rank []int32
}

// newRankTable builds the table for lists, where lists[i] is the preference
// list of agent i+1. lists must already be validated permutations.
// Complexity: O(n²) time and space.
func newRankTable(lists [][]int) *RankTable {
	n := len(lists)
	rt := &RankTable{n: n, rank: make([]int32, n*n)}

	var row []int32 // arena slice of the current agent
	var pos, other int
	for agent := range lists {
		row = rt.rank[agent*n : (agent+1)*n]
		for pos, other = range lists[agent] {
			row[other-1] = int32(pos)
		}
	}

	return rt
}

// Len returns n, the number of agents on each side.
func (rt *RankTable) Len() int { return rt.n }

// Rank returns the position of other in agent's list (0 = most preferred).
// Both ids must lie in [1,n]; use Lookup when that is not guaranteed.
func (rt *RankTable) Rank(agent, other int) int {
	return int(rt.rank[(agent-1)*rt.n+(other-1)])
}

// Lookup is the bounds-checked form of Rank. It fails with
// ErrInvalidPreferenceData when either id is outside [1,n].
func (rt *RankTable) Lookup(agent, other int) (int, error) {
	if agent < 1 || agent > rt.n || other < 1 || other > rt.n {
		return -1, fmt.Errorf("%w: rank lookup (%d, %d) outside 1..%d",
			ErrInvalidPreferenceData, agent, other, rt.n)
	}

	return rt.Rank(agent, other), nil
}

// Prefers reports whether agent strictly prefers a over b.
func (rt *RankTable) Prefers(agent, a, b int) bool {
	return rt.Rank(agent, a) < rt.Rank(agent, b)
}
