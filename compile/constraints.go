package compile

import (
	"github.com/diogosbr/prioritizr/mip"
	"github.com/diogosbr/prioritizr/problem"
)

// applyConstraints emits rows for the attached constraint modifiers, in
// attach order. Lock constraints are handled earlier, in applyLocks, since
// they map to variable bounds rather than rows.
func (s *state) applyConstraints() error {
	for _, c := range s.p.Constraints() {
		var err error
		switch c := c.(type) {
		case problem.LockedInConstraint, problem.LockedOutConstraint:
			// bounds, already applied
		case problem.NeighborConstraint:
			err = s.neighborRows(c)
		case problem.ContiguityConstraint:
			err = s.contiguityRows(c.Boundary, false)
		case problem.MultiZoneContiguityConstraint:
			err = s.contiguityRows(c.Boundary, true)
		case problem.LinearConstraint:
			err = s.linearRow(c)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// neighborRows: a unit allocated to a zone must have at least K neighbours
// allocated to the same zone. For each (u, z):
//
//	sum over v in N(u) of x(v,z) − K·x(u,z) ≥ 0
//
// Unselected units satisfy the row trivially.
func (s *state) neighborRows(c problem.NeighborConstraint) error {
	k := float64(c.MinNeighbors)
	for u := 0; u < s.nPU; u++ {
		neighbors := c.Boundary.Neighbors(u)
		for z := 0; z < s.nZ; z++ {
			coefs := make([]mip.Nonzero, 0, len(neighbors)+1)
			for _, v := range neighbors {
				coefs = append(coefs, mip.Nonzero{Col: s.varOf(v, z), Val: 1})
			}
			coefs = append(coefs, mip.Nonzero{Col: s.varOf(u, z), Val: -k})
			if err := s.prog.AddRow(mip.GE, 0, coefs...); err != nil {
				return err
			}
		}
	}
	return nil
}

// linearRow emits one manual row over the primary variables.
func (s *state) linearRow(c problem.LinearConstraint) error {
	var op mip.Op
	switch c.Op {
	case problem.LessEqual:
		op = mip.LE
	case problem.GreaterEqual:
		op = mip.GE
	default:
		op = mip.EQ
	}
	coefs := make([]mip.Nonzero, 0, s.nPU*s.nZ)
	for u := 0; u < s.nPU; u++ {
		for z := 0; z < s.nZ; z++ {
			if v := c.Coefficients[u][z]; v != 0 {
				coefs = append(coefs, mip.Nonzero{Col: s.varOf(u, z), Val: v})
			}
		}
	}
	return s.prog.AddRow(op, c.RHS, coefs...)
}
