package solver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/diogosbr/prioritizr/mip"
)

// MaxEnumerationVars bounds the free binary variables the enumeration
// backend will search over (2^30 assignments at the extreme).
const MaxEnumerationVars = 30

// feasTol is the constraint satisfaction tolerance of the enumeration
// backend.
const feasTol = 1e-9

// deadlineStride is how many assignments are tried between deadline checks.
const deadlineStride = 1 << 12

// Enumeration is an exact backend for small all-binary programs. It tries
// every assignment of the free binary variables, so its answers are proven
// optima with zero gap. Variables fixed by their bounds are not enumerated.
type Enumeration struct{}

func init() { Register(Enumeration{}) }

func (Enumeration) Name() string { return "enumeration" }

func (Enumeration) Solve(ctx context.Context, prog *mip.Program, cfg Config) (*mip.Solution, error) {
	start := time.Now()

	n := prog.NumVars()
	x := make([]float64, n)
	free := make([]int, 0, n)
	for col := 0; col < n; col++ {
		lo, hi := prog.Lower[col], prog.Upper[col]
		if lo == hi {
			x[col] = lo
			continue
		}
		if prog.Types[col] != mip.Binary || lo != 0 || hi != 1 {
			return nil, fmt.Errorf("%w: enumeration needs an all-binary program (variable %d)", ErrUnsupported, col)
		}
		free = append(free, col)
	}
	if len(free) > MaxEnumerationVars {
		return nil, fmt.Errorf("%w: %d free variables exceed the enumeration limit of %d",
			ErrUnsupported, len(free), MaxEnumerationVars)
	}

	deadline, hasDeadline := ctx.Deadline()
	if cfg.TimeLimit > 0 {
		if limit := start.Add(cfg.TimeLimit); !hasDeadline || limit.Before(deadline) {
			deadline = limit
			hasDeadline = true
		}
	}

	var (
		best    []float64
		bestObj float64
		found   bool
		stopErr error
	)
	better := func(obj float64) bool {
		if !found {
			return true
		}
		if prog.Sense == mip.Maximize {
			return obj > bestObj
		}
		return obj < bestObj
	}

search:
	for mask := uint64(0); mask < 1<<uint(len(free)); mask++ {
		if mask%deadlineStride == 0 {
			if err := ctx.Err(); err != nil {
				stopErr = err
				if errors.Is(err, context.DeadlineExceeded) {
					stopErr = ErrTimeLimit
				}
				break
			}
			if hasDeadline && time.Now().After(deadline) {
				stopErr = ErrTimeLimit
				break
			}
		}
		for i, col := range free {
			x[col] = float64((mask >> uint(i)) & 1)
		}
		for _, row := range prog.Rows {
			if !row.Evaluate(x, feasTol) {
				continue search
			}
		}
		var obj float64
		for col, c := range prog.Objective {
			obj += c * x[col]
		}
		if better(obj) {
			best = append(best[:0], x...)
			bestObj = obj
			found = true
			if cfg.Verbose != nil {
				fmt.Fprintf(cfg.Verbose, "enumeration: incumbent objective=%g\n", obj)
			}
			if cfg.FirstFeasible {
				break
			}
		}
	}

	runtime := time.Since(start)
	if !found {
		if stopErr != nil {
			return nil, stopErr
		}
		return nil, ErrInfeasible
	}

	sol := &mip.Solution{
		Values:    mat.NewVecDense(n, append([]float64(nil), best...)),
		Objective: bestObj,
		Bound:     bestObj,
		Status:    mip.StatusOptimal,
		Runtime:   runtime,
	}
	if stopErr != nil || cfg.FirstFeasible {
		// The search stopped early, so the incumbent carries no proof.
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
