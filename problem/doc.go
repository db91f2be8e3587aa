// Package problem holds the canonical in-memory representation of a
// conservation prioritization problem and the modifier stack attached to it.
//
// What:
//
//   - Problem: planning units × zones × features, per-zone costs, a sparse
//     feature-by-unit amount matrix, and optional locked-in/out sets. The
//     shape is immutable after New; the only mutation is attaching modifiers.
//   - Modifiers: five closed categories — Objective, Targets, Constraint,
//     Penalty, Decision — each a small set of variant types behind an
//     interface with an unexported marker method. A Problem holds at most
//     one Objective and at most one Decision; Targets, Constraints and
//     Penalties compose freely.
//   - Every modifier validates itself against the Problem's shape at attach
//     time, so malformed parameters fail immediately rather than at compile.
//
// The package is purely declarative: turning a Problem into a mathematical
// program is the compile package's job.
//
// Errors:
//
//   - ErrDimensionMismatch: data extents disagree (costs vs amounts vs zones).
//   - ErrModifierConflict: a second Objective or Decision was attached,
//     or a unit is locked both in and out.
//   - ErrInvalidParameterLength: a modifier parameter vector has the wrong length.
//   - ErrInvalidParameterRange: a modifier parameter is out of its legal range.
//   - ErrNonFinite: a NaN or ±Inf value where a finite one is required.
//   - ErrNoPlanningUnits, ErrNoFeatures: empty model dimensions.
package problem
