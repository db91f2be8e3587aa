package problem

import "errors"

// Sentinel errors for model construction and modifier attachment.
// All are matched with errors.Is.
var (
	// ErrNoPlanningUnits indicates a model with zero planning units.
	ErrNoPlanningUnits = errors.New("problem: at least one planning unit is required")

	// ErrNoFeatures indicates a model with zero features.
	ErrNoFeatures = errors.New("problem: at least one feature is required")

	// ErrDimensionMismatch indicates disagreeing data extents, e.g. an amount
	// entry referencing a planning unit or zone outside the cost table.
	ErrDimensionMismatch = errors.New("problem: dimension mismatch")

	// ErrModifierConflict indicates two mutually exclusive modifiers, such as
	// a second objective, a second decision type, or contradictory locks.
	ErrModifierConflict = errors.New("problem: conflicting modifiers")

	// ErrInvalidParameterLength indicates a modifier parameter vector whose
	// length disagrees with the model shape.
	ErrInvalidParameterLength = errors.New("problem: invalid parameter length")

	// ErrInvalidParameterRange indicates a modifier parameter outside its
	// legal range (negative amount, fraction outside [0,1], and so on).
	ErrInvalidParameterRange = errors.New("problem: parameter out of range")

	// ErrNonFinite indicates a NaN or ±Inf where a finite value is required.
	ErrNonFinite = errors.New("problem: value is not finite")
)
