// Package prioritizr builds and solves systematic conservation planning
// problems as mixed-integer programs.
//
// 🚀 What is prioritizr?
//
//	A modeling layer for reserve design: describe planning units, zones,
//	features and goals declaratively, then hand the compiled program to an
//	exact solver:
//		• problem/    — the canonical model plus the modifier stack
//		                (objectives, targets, constraints, penalties, decisions)
//		• boundary/   — sparse boundary-length and connectivity matrices
//		• compile/    — deterministic compilation into one mip.Program
//		• mip/        — the solver-agnostic program and solution types
//		• solver/     — backend registry: HiGHS (build tag "highs") and an
//		                exact enumeration fallback for small binary programs
//		• presolve/   — advisory screening for numeric and structural issues
//		• importance/ — replacement-cost scores for solved selections
//		• marxan/     — readers for the classic Marxan table formats
//		• simulate/   — seeded synthetic datasets on rectangular grids
//
// ✨ Why this shape?
//
//   - Declarative first – a problem is data; compilation is a pure function
//     of it, so equal problems always produce bit-identical programs
//   - Exact answers – targets are constraints, not penalized wishes; the
//     optimum either meets them or the problem is reported infeasible
//   - Solver-agnostic – the compiled program carries named variable blocks,
//     so any backend's raw vector maps back onto the planning grid
//
// Quick ASCII example, a 2×3 grid of planning units:
//
//	┌───┬───┬───┐
//	│ 0 │ 1 │ 2 │
//	├───┼───┼───┤
//	│ 3 │ 4 │ 5 │
//	└───┴───┴───┘
//
//	p, _ := problem.New(costs, amounts)
//	_ = p.SetObjective(problem.MinimumSetObjective{})
//	_ = p.AddTargets(problem.RelativeTargets{Fractions: []float64{0.3}})
//	grid, _ := boundary.FromGrid(2, 3, 1)
//	_ = p.AddPenalty(problem.BoundaryPenalty{Weight: 2, EdgeFactor: 1, Boundary: grid})
//	prog, _ := compile.Compile(p)
//	sol, _ := solver.Solve(ctx, prog)
//
// See each package's doc.go for contracts, error semantics and complexity
// notes.
//
//	go get github.com/diogosbr/prioritizr
package prioritizr
