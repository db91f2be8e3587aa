package problem

import (
	"fmt"

	"github.com/diogosbr/prioritizr/boundary"
)

// Relation is the comparison operator of a manual linear constraint.
type Relation uint8

const (
	// LessEqual constrains the row to ≤ RHS.
	LessEqual Relation = iota
	// GreaterEqual constrains the row to ≥ RHS.
	GreaterEqual
	// Equal constrains the row to = RHS.
	Equal
)

// LockedInConstraint forces the listed planning units into Zone.
type LockedInConstraint struct {
	Units []int
	Zone  int
}

func (c LockedInConstraint) Validate(p *Problem) error {
	return validateUnitZone(p, c.Units, c.Zone)
}
func (LockedInConstraint) isConstraint() {}

// LockedOutConstraint excludes the listed planning units from Zone.
type LockedOutConstraint struct {
	Units []int
	Zone  int
}

func (c LockedOutConstraint) Validate(p *Problem) error {
	return validateUnitZone(p, c.Units, c.Zone)
}
func (LockedOutConstraint) isConstraint() {}

// NeighborConstraint requires every selected unit to have at least
// MinNeighbors selected neighbours under the boundary adjacency.
type NeighborConstraint struct {
	MinNeighbors int
	Boundary     *boundary.Matrix
}

func (c NeighborConstraint) Validate(p *Problem) error {
	if c.MinNeighbors < 1 {
		return fmt.Errorf("%w: minimum neighbour count must be positive", ErrInvalidParameterRange)
	}
	return validateRelationMatrix(p, c.Boundary)
}
func (NeighborConstraint) isConstraint() {}

// ContiguityConstraint requires the units selected in each zone to form a
// single connected component under the boundary adjacency.
type ContiguityConstraint struct {
	Boundary *boundary.Matrix
}

func (c ContiguityConstraint) Validate(p *Problem) error {
	return validateRelationMatrix(p, c.Boundary)
}
func (ContiguityConstraint) isConstraint() {}

// MultiZoneContiguityConstraint requires the union of all zones' selected
// units to form one connected network.
type MultiZoneContiguityConstraint struct {
	Boundary *boundary.Matrix
}

func (c MultiZoneContiguityConstraint) Validate(p *Problem) error {
	return validateRelationMatrix(p, c.Boundary)
}
func (MultiZoneContiguityConstraint) isConstraint() {}

// LinearConstraint is a manual row over the primary decision variables:
// sum of Coefficients[u][z] · x(u,z) Op RHS.
type LinearConstraint struct {
	Coefficients [][]float64 // [unit][zone]
	Op           Relation
	RHS          float64
}

func (c LinearConstraint) Validate(p *Problem) error {
	if len(c.Coefficients) != p.NumPlanningUnits() {
		return fmt.Errorf("%w: %d coefficient rows for %d units",
			ErrInvalidParameterLength, len(c.Coefficients), p.NumPlanningUnits())
	}
	for u, row := range c.Coefficients {
		if len(row) != p.NumZones() {
			return fmt.Errorf("%w: coefficient row %d has %d zones, want %d",
				ErrInvalidParameterLength, u, len(row), p.NumZones())
		}
		for _, v := range row {
			if !isFinite(v) {
				return fmt.Errorf("%w: linear constraint coefficient", ErrNonFinite)
			}
		}
	}
	if c.Op > Equal {
		return fmt.Errorf("%w: unknown relation %d", ErrInvalidParameterRange, c.Op)
	}
	if !isFinite(c.RHS) {
		return fmt.Errorf("%w: linear constraint RHS", ErrNonFinite)
	}
	return nil
}
func (LinearConstraint) isConstraint() {}

func validateUnitZone(p *Problem, units []int, zone int) error {
	if zone < 0 || zone >= p.NumZones() {
		return fmt.Errorf("%w: zone %d", ErrInvalidParameterRange, zone)
	}
	if len(units) == 0 {
		return fmt.Errorf("%w: empty unit list", ErrInvalidParameterLength)
	}
	for _, u := range units {
		if u < 0 || u >= p.NumPlanningUnits() {
			return fmt.Errorf("%w: unit %d", ErrInvalidParameterRange, u)
		}
	}
	return nil
}

func validateRelationMatrix(p *Problem, m *boundary.Matrix) error {
	if m == nil {
		return fmt.Errorf("%w: nil boundary matrix", ErrInvalidParameterLength)
	}
	if m.NumUnits() != p.NumPlanningUnits() {
		return fmt.Errorf("%w: boundary matrix covers %d units, problem has %d",
			ErrInvalidParameterLength, m.NumUnits(), p.NumPlanningUnits())
	}
	return nil
}
