package path_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/einplan/path"
)

// ////////////////////////////////////////////////////////////////////////////
// ExamplePlan
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Contract a three-matrix chain ab,bc,cd->ad. The greedy planner must
//	combine the two cheapest matrices first and leave the final step to
//	produce the declared output order.
//
// Complexity: O(n³) planning for n operands.
func ExamplePlan() {
	operands := []path.Operand{{'a', 'b'}, {'b', 'c'}, {'c', 'd'}}
	output := []path.Label{'a', 'd'}
	sizes := path.SizeMap{'a': 2, 'b': 8, 'c': 8, 'd': 2}

	res, err := path.Plan(context.Background(), operands, output, sizes, path.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("path:", res.Path)
	fmt.Println("steps:", len(res.Instructions))
	// Output:
	// path: [[0 1] [0 1]]
	// steps: 2
}

// ////////////////////////////////////////////////////////////////////////////
// ExampleReduce
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	One contraction step of ab,bc->ac: b is needed by nothing outside the
//	group, so it is summed away; a and c survive.
func ExampleReduce() {
	remaining := []path.Operand{{'a', 'b'}, {'b', 'c'}}
	res := path.Reduce(path.Group{0, 1}, remaining, []path.Label{'a', 'c'})

	fmt.Printf("surviving=%c removed=%c\n", res.Surviving, res.Removed)
	// Output:
	// surviving=[a c] removed=[b]
}
