// Package boundary: core types and sentinel errors.
package boundary

import "errors"

// Sentinel errors for boundary-matrix construction and queries.
var (
	// ErrNoUnits indicates the matrix would cover zero planning units.
	ErrNoUnits = errors.New("boundary: number of planning units must be positive")
	// ErrUnitRange indicates a unit index outside [0, n).
	ErrUnitRange = errors.New("boundary: unit index out of range")
	// ErrNegativeLength indicates a negative boundary length or strength.
	ErrNegativeLength = errors.New("boundary: negative boundary length")
	// ErrNonFinite indicates a NaN or ±Inf boundary length.
	ErrNonFinite = errors.New("boundary: boundary length is not finite")
	// ErrAsymmetry indicates duplicate (u,v)/(v,u) entries with differing values.
	ErrAsymmetry = errors.New("boundary: asymmetric duplicate entry")
	// ErrSelectionLength indicates a selection mask whose length differs from the unit count.
	ErrSelectionLength = errors.New("boundary: selection mask length mismatch")
	// ErrBadNeighbourCount indicates KNearest called with an unusable k.
	ErrBadNeighbourCount = errors.New("boundary: neighbour count must be in [1, points-1]")
	// ErrCoincidentPoints indicates two input points at zero distance.
	ErrCoincidentPoints = errors.New("boundary: coincident points have no finite inverse distance")
)

// Entry is a single stored relation. For off-diagonal entries I < J always
// holds; diagonal entries (I == J) carry the unit's exposed boundary.
type Entry struct {
	I, J   int
	Length float64
}

// Matrix is a symmetric sparse boundary-length matrix over n planning units.
// Off-diagonal entries store the boundary shared by two units; the diagonal
// stores each unit's exposed boundary. Absent entries mean "no relation".
// A Matrix is immutable once built.
type Matrix struct {
	n       int
	shared  []map[int]float64 // shared[u][v] for v != u, mirrored both ways
	exposed map[int]float64   // diagonal, stored only where present
}

// NumUnits returns the number of planning units the matrix covers.
func (m *Matrix) NumUnits() int { return m.n }

// Length returns the boundary shared by u and v and whether an entry exists.
// Length(u,u) reports the exposed boundary of u.
func (m *Matrix) Length(u, v int) (float64, bool) {
	if u < 0 || u >= m.n || v < 0 || v >= m.n {
		return 0, false
	}
	if u == v {
		l, ok := m.exposed[u]
		return l, ok
	}
	l, ok := m.shared[u][v]
	return l, ok
}

// Exposed returns the exposed (outer) boundary of unit u, or zero when no
// diagonal entry is stored.
func (m *Matrix) Exposed(u int) float64 {
	if u < 0 || u >= m.n {
		return 0
	}
	return m.exposed[u]
}

// TotalPerimeter returns the full perimeter of unit u: its exposed boundary
// plus every boundary it shares with a neighbour.
func (m *Matrix) TotalPerimeter(u int) float64 {
	if u < 0 || u >= m.n {
		return 0
	}
	total := m.exposed[u]
	for _, l := range m.shared[u] {
		total += l
	}
	return total
}
