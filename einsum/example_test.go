package einsum_test

import (
	"fmt"

	"github.com/katalvlaran/einplan/einsum"
)

// ////////////////////////////////////////////////////////////////////////////
// ExampleContract
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Multiply two 2×2 matrices through the subscript notation. The planner
//	takes the two-operand shortcut and the executor lowers the step onto a
//	single GEMM.
func ExampleContract() {
	a, _ := einsum.FromData([]float64{1, 2, 3, 4}, 2, 2)
	b, _ := einsum.FromData([]float64{5, 6, 7, 8}, 2, 2)

	out, err := einsum.Contract("ij,jk->ik", []*einsum.Tensor{a, b}, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("shape:", out.Shape())
	fmt.Println("data:", out.Data())
	// Output:
	// shape: [2 2]
	// data: [19 22 43 50]
}

// ////////////////////////////////////////////////////////////////////////////
// ExampleContractPath
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Plan a three-matrix chain without executing it. With b and c large the
//	greedy search contracts the two leftmost operands first.
func ExampleContractPath() {
	ab, _ := einsum.New(2, 8)
	bc, _ := einsum.New(8, 8)
	cd, _ := einsum.New(8, 2)

	p, _, err := einsum.ContractPath("ab,bc,cd->ad", []*einsum.Tensor{ab, bc, cd}, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("path:", p)
	// Output:
	// path: [[0 1] [0 1]]
}
