// Package galeshapley_test provides runnable, deterministic examples.
package galeshapley_test

import (
	"fmt"

	"github.com/katalvlaran/stablematch/core"
	"github.com/katalvlaran/stablematch/galeshapley"
)

// ExampleMatch resolves two hospitals competing for the same student.
func ExampleMatch() {
	inst, err := core.FromMaps(2,
		map[int][]int{1: {1, 2}, 2: {1, 2}}, // both hospitals want student 1
		map[int][]int{1: {2, 1}, 2: {1, 2}}, // student 1 prefers hospital 2
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := galeshapley.Match(inst)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, p := range res.Matching.Pairs() {
		fmt.Println(p.Hospital, p.Student)
	}
	fmt.Println("proposals:", res.Proposals)
	// Output:
	// 1 2
	// 2 1
	// proposals: 3
}

// ExampleWithProposer compares both proposing sides on a 3×3 Latin instance.
func ExampleWithProposer() {
	inst, _ := core.New(
		[][]int{{1, 2, 3}, {2, 3, 1}, {3, 1, 2}},
		[][]int{{2, 3, 1}, {3, 1, 2}, {1, 2, 3}},
	)
	for _, side := range []core.Side{core.Hospitals, core.Students} {
		res, _ := galeshapley.Match(inst, galeshapley.WithProposer(side))
		fmt.Printf("%ss propose: %v\n", side, res.Matching.Students())
	}
	// Output:
	// hospitals propose: [1 2 3]
	// students propose: [3 1 2]
}

// ExampleWithOnProposal prints the proposal trace.
func ExampleWithOnProposal() {
	inst, _ := core.New(
		[][]int{{1, 2}, {1, 2}},
		[][]int{{1, 2}, {1, 2}},
	)
	_, _ = galeshapley.Match(inst, galeshapley.WithOnProposal(func(p galeshapley.Proposal) {
		fmt.Printf("%s %d -> %d accepted=%v\n", p.Side, p.Proposer, p.Receiver, p.Accepted)
	}))
	// Output:
	// hospital 1 -> 1 accepted=true
	// hospital 2 -> 1 accepted=false
	// hospital 2 -> 2 accepted=true
}
