package compile

import (
	"github.com/diogosbr/prioritizr/mip"
	"github.com/diogosbr/prioritizr/problem"
)

// Names of the auxiliary blocks appended by penalty modifiers.
const (
	// BoundaryDiffBlock holds one deviation variable per adjacent pair per
	// zone, forced to at least |x_u − x_v|.
	BoundaryDiffBlock = "boundary_diff"
	// ConnectivityAndBlock holds one co-selection variable per related pair
	// per zone, capped at min(x_u, x_v).
	ConnectivityAndBlock = "connectivity_and"
)

// applyPenalties adds the weighted terms of every attached penalty, in
// attach order.
func (s *state) applyPenalties() error {
	for _, pe := range s.p.Penalties() {
		var err error
		switch pe := pe.(type) {
		case problem.BoundaryPenalty:
			err = s.boundaryPenalty(pe)
		case problem.ConnectivityPenalty:
			err = s.connectivityPenalty(pe)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// boundaryPenalty charges Weight × the exposed boundary of the solution.
// A shared boundary is exposed when exactly one of its two units is
// allocated to the zone; the deviation variable d ≥ |x_u − x_v| carries the
// charge, and minimization pressure (penaltySign keeps the pressure direction
// under maximization too) holds d at the absolute difference. Diagonal
// entries charge EdgeFactor × the outer boundary of allocated edge units
// directly on the primary variables.
func (s *state) boundaryPenalty(pe problem.BoundaryPenalty) error {
	sign := s.penaltySign()
	t, hi := s.auxDomain()
	pairs := pe.Boundary.Pairs()

	diff := s.prog.AddVars(BoundaryDiffBlock, len(pairs)*s.nZ, t, 0, hi)
	for k, e := range pairs {
		for z := 0; z < s.nZ; z++ {
			d := diff + k*s.nZ + z
			xu, xv := s.varOf(e.I, z), s.varOf(e.J, z)
			if err := s.prog.AddRow(mip.GE, 0,
				mip.Nonzero{Col: d, Val: 1},
				mip.Nonzero{Col: xu, Val: -1},
				mip.Nonzero{Col: xv, Val: 1},
			); err != nil {
				return err
			}
			if err := s.prog.AddRow(mip.GE, 0,
				mip.Nonzero{Col: d, Val: 1},
				mip.Nonzero{Col: xv, Val: -1},
				mip.Nonzero{Col: xu, Val: 1},
			); err != nil {
				return err
			}
			if err := s.prog.AddObjective(d, sign*pe.Weight*e.Length); err != nil {
				return err
			}
		}
	}

	if pe.EdgeFactor > 0 {
		for _, e := range pe.Boundary.Diagonal() {
			for z := 0; z < s.nZ; z++ {
				charge := sign * pe.Weight * pe.EdgeFactor * e.Length
				if err := s.prog.AddObjective(s.varOf(e.I, z), charge); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// connectivityPenalty rewards co-selection: the auxiliary variable y is
// capped at both endpoints' allocations, and its objective term improves the
// solution by Weight × strength, so the solver drives y to min(x_u, x_v).
// Diagonal entries reward the unit's own allocation directly.
func (s *state) connectivityPenalty(pe problem.ConnectivityPenalty) error {
	sign := s.penaltySign()
	t, hi := s.auxDomain()
	pairs := pe.Connectivity.Pairs()

	and := s.prog.AddVars(ConnectivityAndBlock, len(pairs)*s.nZ, t, 0, hi)
	for k, e := range pairs {
		for z := 0; z < s.nZ; z++ {
			y := and + k*s.nZ + z
			for _, end := range []int{e.I, e.J} {
				if err := s.prog.AddRow(mip.GE, 0,
					mip.Nonzero{Col: s.varOf(end, z), Val: 1},
					mip.Nonzero{Col: y, Val: -1},
				); err != nil {
					return err
				}
			}
			if err := s.prog.AddObjective(y, -sign*pe.Weight*e.Length); err != nil {
				return err
			}
		}
	}

	for _, e := range pe.Connectivity.Diagonal() {
		for z := 0; z < s.nZ; z++ {
			if err := s.prog.AddObjective(s.varOf(e.I, z), -sign*pe.Weight*e.Length); err != nil {
				return err
			}
		}
	}
	return nil
}
