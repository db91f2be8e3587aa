package mip

import (
	"time"

	"gonum.org/v1/gonum/mat"
)

// Status is the outcome of a solve.
type Status uint8

const (
	// StatusUnknown means the backend reported nothing usable.
	StatusUnknown Status = iota
	// StatusOptimal means the solution is proven optimal within the gap.
	StatusOptimal
	// StatusSuboptimal means a feasible incumbent was returned without an
	// optimality proof (time limit reached, or first-feasible short-circuit).
	StatusSuboptimal
	// StatusInfeasible means no feasible assignment exists.
	StatusInfeasible
	// StatusUnbounded means the objective can improve without limit.
	StatusUnbounded
)

// String returns the conventional solver status label.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "OPTIMAL"
	case StatusSuboptimal:
		return "SUBOPTIMAL"
	case StatusInfeasible:
		return "INFEASIBLE"
	case StatusUnbounded:
		return "UNBOUNDED"
	default:
		return "UNKNOWN"
	}
}

// Solution is the result of solving a Program. Values holds one entry per
// program variable in layout order; Blocks of the source program locate the
// primary decisions inside it. A Solution is never mutated after creation.
type Solution struct {
	Values    *mat.VecDense
	Objective float64
	// Bound is the best objective bound proven by the backend; equal to
	// Objective for optimal solutions.
	Bound   float64
	Gap     float64
	Status  Status
	Runtime time.Duration
}

// Value returns the solution value of variable col, or 0 out of range.
func (s *Solution) Value(col int) float64 {
	if s.Values == nil || col < 0 || col >= s.Values.Len() {
		return 0
	}
	return s.Values.AtVec(col)
}

// BlockValues extracts the values of a named block from the solution.
func (s *Solution) BlockValues(p *Program, name string) []float64 {
	b, ok := p.Block(name)
	if !ok || s.Values == nil {
		return nil
	}
	out := make([]float64, b.Len)
	for i := 0; i < b.Len; i++ {
		out[i] = s.Values.AtVec(b.Offset + i)
	}
	return out
}
