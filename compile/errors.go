package compile

import "errors"

// Sentinel errors surfaced at compile time.
var (
	// ErrNoObjective indicates compilation without an attached objective.
	ErrNoObjective = errors.New("compile: no objective attached")

	// ErrUnresolvedTarget indicates the attached objective requires targets
	// and the problem carries none.
	ErrUnresolvedTarget = errors.New("compile: targets are not fully specified")

	// ErrNonFiniteCoefficient indicates a NaN or ±Inf coefficient in the
	// compiled program.
	ErrNonFiniteCoefficient = errors.New("compile: non-finite coefficient")
)
