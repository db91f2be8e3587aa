package compile

import (
	"fmt"

	"github.com/diogosbr/prioritizr/boundary"
	"github.com/diogosbr/prioritizr/mip"
)

// Contiguity is enforced with a single-commodity flow system. One unit may
// act as the root (sum of roots ≤ 1, so empty selections stay feasible); the
// root injects enough flow to reach every allocated unit, flow travels only
// along adjacency arcs between allocated units, and every allocated unit
// must retain one unit of flow. Summing the balance rows shows a selection
// disconnected from the root cannot cover its own retention, so any feasible
// non-empty selection is one connected component.

// contiguityRows emits a flow system per zone, or one aggregated system over
// all zones when multi is set.
func (s *state) contiguityRows(m *boundary.Matrix, multi bool) error {
	pairs := m.Pairs()
	if multi {
		alloc := func(u int) []mip.Nonzero {
			coefs := make([]mip.Nonzero, s.nZ)
			for z := 0; z < s.nZ; z++ {
				coefs[z] = mip.Nonzero{Col: s.varOf(u, z), Val: 1}
			}
			return coefs
		}
		return s.flowSystem("contiguity", pairs, alloc, float64(s.nPU*s.nZ))
	}
	for z := 0; z < s.nZ; z++ {
		z := z
		alloc := func(u int) []mip.Nonzero {
			return []mip.Nonzero{{Col: s.varOf(u, z), Val: 1}}
		}
		name := fmt.Sprintf("contiguity_z%d", z)
		if err := s.flowSystem(name, pairs, alloc, float64(s.nPU)); err != nil {
			return err
		}
	}
	return nil
}

// flowSystem appends one root indicator per unit and one flow variable per
// directed adjacency arc, then ties them together:
//
//	sum r_u ≤ 1
//	alloc(u) − r_u ≥ 0                                  (roots are allocated)
//	flow_in(u) − flow_out(u) − alloc(u) + cap·r_u ≥ 0   (retention)
//	(cap−1)·alloc(tail) − f ≥ 0, same for head          (arc capacity)
//
// alloc(u) gives the allocation of unit u as objective-space nonzeros and
// cap bounds the total allocation of the system.
func (s *state) flowSystem(name string, pairs []boundary.Entry, alloc func(u int) []mip.Nonzero, cap float64) error {
	root := s.prog.AddVars(name+"_root", s.nPU, mip.Binary, 0, 1)
	flow := s.prog.AddVars(name+"_flow", 2*len(pairs), mip.Continuous, 0, cap)

	rootSum := make([]mip.Nonzero, s.nPU)
	for u := 0; u < s.nPU; u++ {
		rootSum[u] = mip.Nonzero{Col: root + u, Val: 1}
	}
	if err := s.prog.AddRow(mip.LE, 1, rootSum...); err != nil {
		return err
	}

	// Arc 2k runs pairs[k].I → pairs[k].J; arc 2k+1 the reverse.
	inflow := make([][]int, s.nPU)
	outflow := make([][]int, s.nPU)
	for k, e := range pairs {
		fwd, rev := flow+2*k, flow+2*k+1
		outflow[e.I] = append(outflow[e.I], fwd)
		inflow[e.J] = append(inflow[e.J], fwd)
		outflow[e.J] = append(outflow[e.J], rev)
		inflow[e.I] = append(inflow[e.I], rev)
	}

	for u := 0; u < s.nPU; u++ {
		a := alloc(u)

		coefs := make([]mip.Nonzero, 0, len(a)+1)
		coefs = append(coefs, a...)
		coefs = append(coefs, mip.Nonzero{Col: root + u, Val: -1})
		if err := s.prog.AddRow(mip.GE, 0, coefs...); err != nil {
			return err
		}

		coefs = make([]mip.Nonzero, 0, len(inflow[u])+len(outflow[u])+len(a)+1)
		for _, col := range inflow[u] {
			coefs = append(coefs, mip.Nonzero{Col: col, Val: 1})
		}
		for _, col := range outflow[u] {
			coefs = append(coefs, mip.Nonzero{Col: col, Val: -1})
		}
		for _, c := range a {
			coefs = append(coefs, mip.Nonzero{Col: c.Col, Val: -c.Val})
		}
		coefs = append(coefs, mip.Nonzero{Col: root + u, Val: cap})
		if err := s.prog.AddRow(mip.GE, 0, coefs...); err != nil {
			return err
		}
	}

	for k, e := range pairs {
		arcs := [2][2]int{{flow + 2*k, e.I}, {flow + 2*k + 1, e.J}}
		for _, arc := range arcs {
			f, tail := arc[0], arc[1]
			head := e.I + e.J - tail
			for _, end := range []int{tail, head} {
				a := alloc(end)
				coefs := make([]mip.Nonzero, 0, len(a)+1)
				for _, c := range a {
					coefs = append(coefs, mip.Nonzero{Col: c.Col, Val: (cap - 1) * c.Val})
				}
				coefs = append(coefs, mip.Nonzero{Col: f, Val: -1})
				if err := s.prog.AddRow(mip.GE, 0, coefs...); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
