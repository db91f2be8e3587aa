// Package mip defines the normalized mixed-integer-program representation
// produced by the compile package and consumed by solver backends.
//
// What:
//
//   - Program: typed decision variables with bounds, an objective vector and
//     sense, and sparse constraint rows. Built once, then treated as
//     read-only; backends translate it, never mutate it.
//   - Blocks record where each named variable block starts inside the
//     variable vector, so callers can slice the primary (unit, zone)
//     decisions out of a raw solution that also carries auxiliary variables.
//   - Solution: decision values plus solver metadata (objective, bound, gap,
//     status, runtime).
//
// The row builders mirror the usual MIP-binding surface (sparse coefficient
// list, relational operator, right-hand side) and ToCSR exports the
// compressed row form most solver APIs ingest.
package mip
