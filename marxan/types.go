package marxan

import "errors"

// Sentinel errors for table parsing and scenario assembly.
var (
	// ErrMissingColumn indicates a required column is absent from a header.
	ErrMissingColumn = errors.New("marxan: missing required column")
	// ErrBadValue indicates a cell that fails to parse as its column's type.
	ErrBadValue = errors.New("marxan: malformed value")
	// ErrBadStatus indicates a planning-unit status outside 0..3.
	ErrBadStatus = errors.New("marxan: planning unit status must be 0..3")
	// ErrConflictingTarget indicates a spec row with both prop and target.
	ErrConflictingTarget = errors.New("marxan: feature sets both prop and target")
	// ErrDuplicateID indicates an identifier repeated within one table.
	ErrDuplicateID = errors.New("marxan: duplicate identifier")
	// ErrUnknownID indicates a reference to an id absent from its table.
	ErrUnknownID = errors.New("marxan: reference to unknown identifier")
)

// Planning-unit statuses as used in pu.dat.
const (
	// StatusAvailable units are free for the solver to pick.
	StatusAvailable = 0
	// StatusInitial units seed Marxan's annealing; here they are free too.
	StatusInitial = 1
	// StatusLockedIn units must appear in the solution.
	StatusLockedIn = 2
	// StatusLockedOut units may never appear in the solution.
	StatusLockedOut = 3
)

// PlanningUnit is one row of pu.dat.
type PlanningUnit struct {
	ID     int
	Cost   float64
	Status int
}

// Feature is one row of spec.dat. Exactly one of HasProp/HasTarget may be
// set; neither means a zero target.
type Feature struct {
	ID   int
	Name string
	// Prop is the target as a fraction of the feature's total abundance.
	Prop    float64
	HasProp bool
	// Target is the target as an absolute amount.
	Target    float64
	HasTarget bool
	// SPF is Marxan's species penalty factor, kept for round-tripping.
	SPF float64
}

// Amount is one row of puvspr.dat.
type Amount struct {
	FeatureID int
	UnitID    int
	Amount    float64
}

// BoundaryRecord is one row of bound.dat.
type BoundaryRecord struct {
	ID1, ID2 int
	Length   float64
}

// Scenario aggregates the parsed tables of one Marxan dataset.
type Scenario struct {
	Units      []PlanningUnit
	Features   []Feature
	Amounts    []Amount
	Boundaries []BoundaryRecord
}
