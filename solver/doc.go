// Package solver hands compiled programs to a mixed-integer backend and
// normalizes the result.
//
// What:
//
//   - Solve picks a registered backend (explicitly via WithBackend, or the
//     best available one) and runs it under the configured gap, time limit
//     and verbosity. Results always come back as a mip.Solution with a
//     normalized status.
//   - Backends self-register: the exhaustive Enumeration backend is always
//     available for small all-binary programs, and the HiGHS backend joins
//     it when the package is built with the "highs" tag (it links against
//     the HiGHS C library).
//
// Why a registry: solving is deliberately decoupled from modeling, so a
// program compiled once can be handed to whichever solver the deployment
// actually ships with, and tests can run against the exact enumeration
// backend without native dependencies.
//
// Errors:
//
//   - ErrUnavailable: the requested backend is not registered in this build.
//   - ErrUnsupported: the backend cannot handle this program's shape.
//   - ErrInfeasible, ErrUnbounded: the program has no usable optimum.
//   - ErrTimeLimit: the time limit expired before any feasible solution.
//   - ErrInvalidOption: an option value is out of range.
package solver
