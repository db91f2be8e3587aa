package compile

import (
	"fmt"
	"math"

	"github.com/diogosbr/prioritizr/mip"
	"github.com/diogosbr/prioritizr/problem"
)

// PrimaryBlock names the block of primary (unit, zone) decision variables in
// every compiled program.
const PrimaryBlock = "primary"

// state carries the partially built program through the compilation walk.
type state struct {
	p    *problem.Problem
	prog *mip.Program

	nPU, nZ, nF int
}

// varOf maps a (unit, zone) pair to its primary variable column. The layout
// is unit-major: unit u's zone variables are contiguous.
func (s *state) varOf(u, z int) int { return u*s.nZ + z }

// Compile builds the mathematical program for p. The walk order is fixed —
// layout, locks, zone exclusivity, objective (with targets), constraints,
// penalties — and every iteration is index-ordered, so identical problems
// compile to bit-identical programs.
//
// Time: O(vars + entries + constraint structure), Memory: same.
func Compile(p *problem.Problem) (*mip.Program, error) {
	if p.Objective() == nil {
		return nil, ErrNoObjective
	}

	s := &state{
		p:    p,
		prog: &mip.Program{},
		nPU:  p.NumPlanningUnits(),
		nZ:   p.NumZones(),
		nF:   p.NumFeatures(),
	}

	s.layoutPrimary()
	if err := s.applyLocks(); err != nil {
		return nil, err
	}
	if err := s.zoneExclusivity(); err != nil {
		return nil, err
	}
	if err := s.applyObjective(); err != nil {
		return nil, err
	}
	if err := s.applyConstraints(); err != nil {
		return nil, err
	}
	if err := s.applyPenalties(); err != nil {
		return nil, err
	}
	if err := checkFinite(s.prog); err != nil {
		return nil, err
	}
	return s.prog, nil
}

// layoutPrimary appends the primary decision block typed by the decision
// modifier (binary when none is attached).
func (s *state) layoutPrimary() {
	var (
		t        = mip.Binary
		lo, hi   = 0.0, 1.0
		decision = s.p.Decision()
	)
	switch d := decision.(type) {
	case problem.ProportionDecision:
		t = mip.Continuous
	case problem.BoundedIntegerDecision:
		t = mip.Integer
		hi = float64(d.Cap)
	}
	s.prog.AddVars(PrimaryBlock, s.nPU*s.nZ, t, lo, hi)
}

// auxDomain returns the type and upper bound for auxiliary variables that
// mirror differences or products of primary decisions.
func (s *state) auxDomain() (mip.VarType, float64) {
	switch d := s.p.Decision().(type) {
	case problem.ProportionDecision:
		return mip.Continuous, 1
	case problem.BoundedIntegerDecision:
		return mip.Continuous, float64(d.Cap)
	default:
		return mip.Binary, 1
	}
}

// zoneExclusivity caps each unit's total allocation across zones at one full
// allocation: a zone is a management action, and a unit is managed one way.
// The "selected somewhere" lock-in rows and the per-zone penalty and
// contiguity formulations all rely on this invariant.
func (s *state) zoneExclusivity() error {
	if s.nZ == 1 {
		return nil
	}
	limit := 1.0
	if d, ok := s.p.Decision().(problem.BoundedIntegerDecision); ok {
		limit = float64(d.Cap)
	}
	for u := 0; u < s.nPU; u++ {
		coefs := make([]mip.Nonzero, s.nZ)
		for z := 0; z < s.nZ; z++ {
			coefs[z] = mip.Nonzero{Col: s.varOf(u, z), Val: 1}
		}
		if err := s.prog.AddRow(mip.LE, limit, coefs...); err != nil {
			return err
		}
	}
	return nil
}

// applyLocks turns construction-time and constraint locks into variable
// bounds. In multi-zone problems a construction lock-in becomes a
// "selected somewhere" row rather than a bound, since it names no zone.
func (s *state) applyLocks() error {
	for u := 0; u < s.nPU; u++ {
		if s.p.LockedIn(u) {
			if s.nZ == 1 {
				if err := s.lockIn(u, 0); err != nil {
					return err
				}
				continue
			}
			coefs := make([]mip.Nonzero, s.nZ)
			for z := 0; z < s.nZ; z++ {
				coefs[z] = mip.Nonzero{Col: s.varOf(u, z), Val: 1}
			}
			if err := s.prog.AddRow(mip.GE, 1, coefs...); err != nil {
				return err
			}
		}
		if s.p.LockedOut(u) {
			for z := 0; z < s.nZ; z++ {
				if err := s.lockOut(u, z); err != nil {
					return err
				}
			}
		}
	}
	for _, c := range s.p.Constraints() {
		switch c := c.(type) {
		case problem.LockedInConstraint:
			for _, u := range c.Units {
				if err := s.lockIn(u, c.Zone); err != nil {
					return err
				}
			}
		case problem.LockedOutConstraint:
			for _, u := range c.Units {
				if err := s.lockOut(u, c.Zone); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// lockIn pins (u,z) to its full allocation; lockOut pins it to zero. A unit
// pinned both ways is a modifier conflict.
func (s *state) lockIn(u, z int) error {
	col := s.varOf(u, z)
	if s.prog.Upper[col] == 0 {
		return fmt.Errorf("%w: unit %d locked both in and out", problem.ErrModifierConflict, u)
	}
	s.prog.Lower[col] = s.prog.Upper[col]
	return nil
}

func (s *state) lockOut(u, z int) error {
	col := s.varOf(u, z)
	if s.prog.Lower[col] > 0 {
		return fmt.Errorf("%w: unit %d locked both in and out", problem.ErrModifierConflict, u)
	}
	s.prog.Upper[col] = 0
	return nil
}

// penaltySign is +1 for minimization and −1 for maximization, so penalties
// always worsen the objective of fragmented configurations.
func (s *state) penaltySign() float64 {
	if s.prog.Sense == mip.Maximize {
		return -1
	}
	return 1
}

// checkFinite scans the finished program for NaN/±Inf coefficients. Inputs
// are validated at attach time, but compilation multiplies and sums them;
// this is the compile-time guarantee the solver relies on.
func checkFinite(prog *mip.Program) error {
	for _, v := range prog.Objective {
		if !finite(v) {
			return fmt.Errorf("%w: objective", ErrNonFiniteCoefficient)
		}
	}
	for i, r := range prog.Rows {
		for _, c := range r.Coefs {
			if !finite(c.Val) {
				return fmt.Errorf("%w: row %d", ErrNonFiniteCoefficient, i)
			}
		}
		if !finite(r.RHS) {
			return fmt.Errorf("%w: row %d RHS", ErrNonFiniteCoefficient, i)
		}
	}
	for col := range prog.Lower {
		if math.IsNaN(prog.Lower[col]) || math.IsNaN(prog.Upper[col]) {
			return fmt.Errorf("%w: bounds of variable %d", ErrNonFiniteCoefficient, col)
		}
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
