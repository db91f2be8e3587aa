package boundary

import (
	"math"
	"sort"
)

// newMatrix allocates an empty matrix over n units.
func newMatrix(n int) *Matrix {
	m := &Matrix{
		n:       n,
		shared:  make([]map[int]float64, n),
		exposed: make(map[int]float64),
	}
	for i := range m.shared {
		m.shared[i] = make(map[int]float64)
	}
	return m
}

// FromEntries builds a Matrix over n planning units from explicit entries.
// Entries may appear in either (u,v) or (v,u) orientation; a pair supplied
// twice must carry the same length, otherwise ErrAsymmetry is returned.
// Repeated identical entries are collapsed, never summed.
//
// Time: O(E log E) in the worst case, Memory: O(E).
func FromEntries(n int, entries []Entry) (*Matrix, error) {
	if n <= 0 {
		return nil, ErrNoUnits
	}
	m := newMatrix(n)
	for _, e := range entries {
		if e.I < 0 || e.I >= n || e.J < 0 || e.J >= n {
			return nil, ErrUnitRange
		}
		if math.IsNaN(e.Length) || math.IsInf(e.Length, 0) {
			return nil, ErrNonFinite
		}
		if e.Length < 0 {
			return nil, ErrNegativeLength
		}
		if e.I == e.J {
			if prev, ok := m.exposed[e.I]; ok && prev != e.Length {
				return nil, ErrAsymmetry
			}
			m.exposed[e.I] = e.Length
			continue
		}
		u, v := e.I, e.J
		if u > v {
			u, v = v, u
		}
		if prev, ok := m.shared[u][v]; ok && prev != e.Length {
			return nil, ErrAsymmetry
		}
		m.shared[u][v] = e.Length
		m.shared[v][u] = e.Length
	}
	return m, nil
}

// FromGrid builds a Matrix for an nrow×ncol raster of square cells with the
// given side length. Planning unit u corresponds to cell (u/ncol, u%ncol).
// Orthogonally adjacent cells share one edge of length side; each cell's
// diagonal entry accumulates side for every edge facing outside the grid.
//
// Time: O(nrow·ncol), Memory: O(nrow·ncol).
func FromGrid(nrow, ncol int, side float64) (*Matrix, error) {
	if nrow <= 0 || ncol <= 0 {
		return nil, ErrNoUnits
	}
	if math.IsNaN(side) || math.IsInf(side, 0) {
		return nil, ErrNonFinite
	}
	if side <= 0 {
		return nil, ErrNegativeLength
	}
	m := newMatrix(nrow * ncol)
	for r := 0; r < nrow; r++ {
		for c := 0; c < ncol; c++ {
			u := r*ncol + c
			// Shared edges with the east and south neighbours; symmetry
			// covers west and north.
			if c+1 < ncol {
				v := u + 1
				m.shared[u][v] = side
				m.shared[v][u] = side
			}
			if r+1 < nrow {
				v := u + ncol
				m.shared[u][v] = side
				m.shared[v][u] = side
			}
			// Exposed perimeter: one side per edge on the grid border.
			edge := 0
			if r == 0 {
				edge++
			}
			if r == nrow-1 {
				edge++
			}
			if c == 0 {
				edge++
			}
			if c == ncol-1 {
				edge++
			}
			if edge > 0 {
				m.exposed[u] = float64(edge) * side
			}
		}
	}
	return m, nil
}

// KNearest builds a connectivity Matrix from point geometries: each point is
// linked to its k nearest neighbours with strength 1/distance, and the
// relation is symmetrised (an entry exists if either endpoint selected the
// other). No diagonal entries are produced.
//
// Time: O(n² log n), Memory: O(n·k).
func KNearest(xs, ys []float64, k int) (*Matrix, error) {
	n := len(xs)
	if n == 0 {
		return nil, ErrNoUnits
	}
	if len(ys) != n {
		return nil, ErrSelectionLength
	}
	if k < 1 || k >= n {
		return nil, ErrBadNeighbourCount
	}
	m := newMatrix(n)
	dist := make([]float64, n)
	order := make([]int, n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			dx, dy := xs[u]-xs[v], ys[u]-ys[v]
			dist[v] = math.Hypot(dx, dy)
			order[v] = v
		}
		sort.Slice(order, func(a, b int) bool {
			if dist[order[a]] != dist[order[b]] {
				return dist[order[a]] < dist[order[b]]
			}
			return order[a] < order[b] // stable tie-break for determinism
		})
		taken := 0
		for _, v := range order {
			if v == u {
				continue
			}
			if taken == k {
				break
			}
			d := dist[v]
			if d == 0 {
				return nil, ErrCoincidentPoints
			}
			s := 1 / d
			m.shared[u][v] = s
			m.shared[v][u] = s
			taken++
		}
	}
	return m, nil
}

// Neighbors returns the units sharing a boundary with u, in ascending order.
func (m *Matrix) Neighbors(u int) []int {
	if u < 0 || u >= m.n {
		return nil
	}
	out := make([]int, 0, len(m.shared[u]))
	for v := range m.shared[u] {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// Pairs returns every stored off-diagonal entry exactly once, ordered by
// (I, J) with I < J. The order is deterministic for a given matrix, which
// downstream formulation code relies on.
func (m *Matrix) Pairs() []Entry {
	var out []Entry
	for u := 0; u < m.n; u++ {
		vs := make([]int, 0, len(m.shared[u]))
		for v := range m.shared[u] {
			if v > u {
				vs = append(vs, v)
			}
		}
		sort.Ints(vs)
		for _, v := range vs {
			out = append(out, Entry{I: u, J: v, Length: m.shared[u][v]})
		}
	}
	return out
}

// Diagonal returns every stored diagonal entry, ordered by unit index.
func (m *Matrix) Diagonal() []Entry {
	us := make([]int, 0, len(m.exposed))
	for u := range m.exposed {
		us = append(us, u)
	}
	sort.Ints(us)
	out := make([]Entry, 0, len(us))
	for _, u := range us {
		out = append(out, Entry{I: u, J: u, Length: m.exposed[u]})
	}
	return out
}
