// Package presolve screens problems and compiled programs for numeric and
// structural issues before they reach a solver.
//
// What:
//
//   - Check inspects a problem's inputs: cost, amount, target, weight and
//     penalty magnitudes that would strain floating-point tolerances inside
//     branch-and-bound solvers, plus structural red flags (every cost
//     negative, every unit locked in, every unit locked out).
//   - CheckProgram inspects a compiled program directly, after all weights
//     and penalties have been multiplied through.
//
// Both are advisory: they return warnings, never errors, and a failing check
// does not stop compilation or solving. Magnitudes are compared against
// RatioThreshold; penalty-derived values are screened after scaling by their
// weight, since that is what lands in the objective.
//
// Why: badly scaled coefficients are the most common cause of "optimal"
// solutions that violate targets by more than the tolerance, and of solvers
// grinding on numerically degenerate trees. Screening inputs is cheap and
// names the offending component, which a solver log cannot.
package presolve
