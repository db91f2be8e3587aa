package solver

import "errors"

// Sentinel errors surfaced by Solve and the backends.
var (
	// ErrUnavailable indicates the requested backend is not registered.
	ErrUnavailable = errors.New("solver: backend unavailable")
	// ErrUnsupported indicates the backend cannot handle the program's shape.
	ErrUnsupported = errors.New("solver: program not supported by backend")
	// ErrInfeasible indicates no assignment satisfies every constraint.
	ErrInfeasible = errors.New("solver: problem is infeasible")
	// ErrUnbounded indicates the objective can improve without limit.
	ErrUnbounded = errors.New("solver: problem is unbounded")
	// ErrTimeLimit indicates the time limit expired with no feasible incumbent.
	ErrTimeLimit = errors.New("solver: time limit reached without a solution")
	// ErrInvalidOption indicates an option value outside its valid range.
	ErrInvalidOption = errors.New("solver: invalid option value")
)
