// Package compile turns a problem.Problem and its modifier stack into one
// normalized mip.Program.
//
// What:
//
//   - Variable layout: the primary block holds one variable per (unit, zone)
//     pair, unit-major, typed by the attached decision modifier (binary by
//     default). Every auxiliary structure — boundary-penalty deviations,
//     connectivity rewards, contiguity roots and arc flows, feature/branch
//     indicators — is appended as a named block with a recorded offset, so a
//     raw solution vector can always be sliced back to the planning grid.
//   - Objective assembly: the objective contributes base terms (costs for
//     minimum set, utilities for maximum utility, indicator weights for
//     maximum features / phylogenetic diversity), then every penalty adds
//     its weighted terms. Penalties always worsen fragmented configurations:
//     positive boundary terms under minimization, negative under
//     maximization.
//   - Constraint rows: one ≥-row per resolved (feature, zone) target, lock
//     bounds, neighbour-count rows, manual linear rows, and a
//     single-commodity flow system per contiguity constraint.
//   - Determinism: all iteration is index-ordered, so compiling the same
//     problem twice yields bit-identical programs.
//
// The boundary penalty is linearized with one auxiliary variable per
// adjacent pair per zone and two inequality rows (the |x_u − x_v| scheme).
// Contiguity uses a flow formulation rather than exponential cutsets: a
// root indicator per unit, one flow variable per directed adjacency arc,
// and per-unit flow-balance rows, which keeps constraint growth polynomial.
//
// Errors:
//
//   - ErrNoObjective: compilation attempted without an objective.
//   - ErrUnresolvedTarget: the objective needs targets and none are attached.
//   - ErrNonFiniteCoefficient: a NaN or ±Inf reached the compiled program.
package compile
