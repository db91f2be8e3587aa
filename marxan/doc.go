// Package marxan reads Marxan-format input tables and assembles them into a
// problem.
//
// What: the four classic tables are supported, each with a header row and
// either comma- or tab-separated columns (the delimiter is sniffed from the
// header line):
//
//   - pu.dat:      id, cost, status
//   - spec.dat:    id, prop or target, optional spf and name
//   - puvspr.dat:  species, pu, amount
//   - bound.dat:   id1, id2, boundary
//
// Identifiers may be arbitrary positive integers; they are mapped to dense
// zero-based indices in ascending order. Scenario.Problem builds a
// single-zone minimum-set problem: statuses 2 and 3 become locks, prop rows
// become fraction-of-abundance targets, target rows become absolute targets.
// Boundary records come back as a boundary.Matrix so the caller can decide
// the penalty weight.
//
// A spec row carrying both prop and target is rejected: Marxan itself would
// silently prefer prop, which has burned enough users that refusing is
// kinder.
//
// Errors:
//
//   - ErrMissingColumn: a required column is absent from the header.
//   - ErrBadValue: a cell fails to parse.
//   - ErrBadStatus: a pu status outside 0..3.
//   - ErrConflictingTarget: a spec row sets both prop and target.
//   - ErrDuplicateID: the same identifier appears twice in one table.
//   - ErrUnknownID: an amount or boundary row references an absent id.
package marxan
