//go:build highs

package solver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/bartolsthoorn/gohighs/highs"
	"gonum.org/v1/gonum/mat"

	"github.com/diogosbr/prioritizr/mip"
)

// HiGHS is the branch-and-cut backend linked against the HiGHS C library via
// cgo. It handles every program shape the compiler emits; the whole Config is
// passed through the binding's option API, and a solve cut short by the time
// limit still returns its incumbent flagged StatusSuboptimal.
type HiGHS struct{}

func init() { Register(HiGHS{}) }

func (HiGHS) Name() string { return "highs" }

func (HiGHS) Solve(ctx context.Context, prog *mip.Program, cfg Config) (*mip.Solution, error) {
	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeLimit
		}
		return nil, err
	}
	start := time.Now()

	n := prog.NumVars()
	lp := &highs.Model{
		Maximize: prog.Sense == mip.Maximize,
		ColCosts: make([]float64, n),
		ColLower: make([]float64, n),
		ColUpper: make([]float64, n),
		VarTypes: make([]highs.VariableType, n),
	}
	for col := 0; col < n; col++ {
		lp.ColCosts[col] = prog.Objective[col]
		lp.ColLower[col] = prog.Lower[col]
		lp.ColUpper[col] = prog.Upper[col]
		if prog.Types[col] == mip.Continuous {
			lp.VarTypes[col] = highs.Continuous
		} else {
			lp.VarTypes[col] = highs.Integer
		}
	}

	inf := math.Inf(1)
	for i, r := range prog.Rows {
		lb, ub := -inf, inf
		switch r.Op {
		case mip.LE:
			ub = r.RHS
		case mip.GE:
			lb = r.RHS
		default:
			lb, ub = r.RHS, r.RHS
		}
		lp.RowLower = append(lp.RowLower, lb)
		lp.RowUpper = append(lp.RowUpper, ub)
		for _, c := range r.Coefs {
			lp.ConstMatrix = append(lp.ConstMatrix, highs.Nonzero{Row: i, Col: c.Col, Val: c.Val})
		}
	}

	solution, err := lp.Solve(solveOptions(ctx, cfg)...)
	if err != nil {
		return nil, fmt.Errorf("solver: highs: %w", err)
	}
	runtime := time.Since(start)

	st := solution.Status
	hasIncumbent := len(solution.ColValues) >= n
	switch st {
	case highs.ModelStatusOptimal:
	case highs.ModelStatusInfeasible, highs.ModelStatusUnboundedOrInfeasible:
		return nil, ErrInfeasible
	case highs.ModelStatusUnbounded:
		return nil, ErrUnbounded
	case highs.ModelStatusTimeLimit:
		if !hasIncumbent {
			return nil, ErrTimeLimit
		}
	default:
		// Iteration/solution limits can still carry a usable incumbent.
		if !hasIncumbent {
			return nil, fmt.Errorf("solver: highs status %s", st)
		}
	}

	values := append([]float64(nil), solution.ColValues[:n]...)
	sol := &mip.Solution{
		Values:    mat.NewVecDense(n, values),
		Objective: solution.Objective,
		Bound:     solution.Objective,
		Status:    mip.StatusOptimal,
		Runtime:   runtime,
	}
	if st != highs.ModelStatusOptimal {
		sol.Status = mip.StatusSuboptimal
		sol.Gap = math.Inf(1)
		if prog.Sense == mip.Maximize {
			sol.Bound = math.Inf(1)
		} else {
			sol.Bound = math.Inf(-1)
		}
	}
	return sol, nil
}

// solveOptions translates the Config into binding options. The context
// deadline and the configured time limit fold into one HiGHS time_limit,
// whichever is tighter.
func solveOptions(ctx context.Context, cfg Config) []highs.SolveOption {
	opts := []highs.SolveOption{
		// The binding logs to the process stdout; the structured summary
		// lines still go to cfg.Verbose from Solve.
		highs.WithOutput(cfg.Verbose != nil),
		highs.WithMIPRelGap(cfg.Gap),
	}
	if cfg.Threads > 0 {
		opts = append(opts, highs.WithThreads(cfg.Threads))
	}
	if !cfg.Presolve {
		opts = append(opts, highs.WithPresolve("off"))
	}
	if cfg.FirstFeasible {
		opts = append(opts, highs.WithIntOption("mip_max_improving_sols", 1))
	}
	if cfg.NumericFocus {
		opts = append(opts,
			highs.WithFloatOption("primal_feasibility_tolerance", 1e-9),
			highs.WithFloatOption("mip_feasibility_tolerance", 1e-9))
	}
	limit := cfg.TimeLimit
	if deadline, ok := ctx.Deadline(); ok {
		if rem := time.Until(deadline); limit == 0 || rem < limit {
			limit = rem
		}
	}
	if limit > 0 {
		opts = append(opts, highs.WithTimeLimit(limit.Seconds()))
	}
	return opts
}
