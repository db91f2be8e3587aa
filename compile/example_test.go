package compile_test

import (
	"fmt"

	"github.com/diogosbr/prioritizr/boundary"
	"github.com/diogosbr/prioritizr/compile"
	"github.com/diogosbr/prioritizr/problem"
)

// ExampleCompile builds a small minimum-set problem on a 2×2 grid with a
// boundary penalty and inspects the compiled program.
func ExampleCompile() {
	costs := [][]float64{{1}, {2}, {3}, {4}}
	amounts := []problem.AmountEntry{
		{PU: 0, Feature: 0, Amount: 2},
		{PU: 1, Feature: 0, Amount: 3},
		{PU: 2, Feature: 1, Amount: 4},
		{PU: 3, Feature: 1, Amount: 1},
	}
	p, _ := problem.New(costs, amounts)
	_ = p.SetObjective(problem.MinimumSetObjective{})
	_ = p.AddTargets(problem.RelativeTargets{Fractions: []float64{0.5}})

	grid, _ := boundary.FromGrid(2, 2, 1)
	_ = p.AddPenalty(problem.BoundaryPenalty{Weight: 1, EdgeFactor: 0.5, Boundary: grid})

	prog, err := compile.Compile(p)
	if err != nil {
		fmt.Println("compile failed:", err)
		return
	}
	fmt.Println("variables:", prog.NumVars())
	fmt.Println("rows:", prog.NumRows())
	primary, _ := prog.Block(compile.PrimaryBlock)
	fmt.Println("primary block:", primary.Len)

	// Output:
	// variables: 8
	// rows: 10
	// primary block: 4
}
