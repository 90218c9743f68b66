package core_test

import (
	"fmt"

	"github.com/katalvlaran/stablematch/core"
)

// ExampleNew builds a 2×2 instance and queries the student rank table.
func ExampleNew() {
	inst, err := core.New(
		[][]int{{1, 2}, {1, 2}}, // hospitals
		[][]int{{2, 1}, {1, 2}}, // students
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	sr := inst.Rank(core.Students)
	fmt.Println("n:", inst.N())
	fmt.Println("student 1 ranks hospital 2 at", sr.Rank(1, 2))
	fmt.Println("student 1 prefers 2 over 1:", sr.Prefers(1, 2, 1))
	// Output:
	// n: 2
	// student 1 ranks hospital 2 at 0
	// student 1 prefers 2 over 1: true
}

// ExampleNew_malformed shows the descriptive error for a repeated id.
func ExampleNew_malformed() {
	_, err := core.New([][]int{{1, 1}, {1, 2}}, [][]int{{1, 2}, {2, 1}})
	fmt.Println(err)
	// Output:
	// core: malformed input: core: not a permutation: hospital 1 preferences are not a valid permutation of 1..2
}
