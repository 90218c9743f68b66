package verify_test

import (
	"fmt"

	"github.com/katalvlaran/stablematch/core"
	"github.com/katalvlaran/stablematch/verify"
)

// ExampleVerify checks a stable and an unstable matching on the same instance.
func ExampleVerify() {
	inst, _ := core.New(
		[][]int{{1, 2}, {1, 2}},
		[][]int{{2, 1}, {1, 2}},
	)
	for _, m := range []core.Matching{{1: 2, 2: 1}, {1: 1, 2: 2}, {1: 1}} {
		if err := verify.Verify(inst, m); err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println("VALID STABLE")
	}
	// Output:
	// VALID STABLE
	// Unstable: Blocking pair (Hospital 2, Student 1). Hospital 2 prefers 1 over its match 2, and Student 1 prefers 2 over its match 1.
	// Invalid: Missing hospitals: [2]
}
