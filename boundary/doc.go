// Package boundary derives and stores spatial relationships between
// planning units as a symmetric sparse boundary-length matrix.
//
// What:
//
//   - Matrix maps unordered unit pairs (u,v) to a shared boundary length
//     (or, more generally, a connectivity strength).
//   - Diagonal entries hold each unit's own exposed boundary: the part of
//     its perimeter shared with no other unit. They feed the edge-correction
//     term of boundary penalties.
//   - Constructors cover the three common data sources: explicit pairwise
//     entries (FromEntries), raster cell adjacency (FromGrid), and
//     k-nearest-neighbour point connectivity (KNearest).
//   - ConnectedComponents reuses the same adjacency to group a candidate
//     selection of units into contiguous blocks.
//
// Sparsity policy:
//
//   - An absent entry means "no relation". It is never conflated with an
//     explicit zero-length entry; component analysis walks stored entries
//     only, so an absent pair can never act as a zero-strength edge.
//
// Errors:
//
//   - ErrNoUnits: the matrix would cover zero planning units.
//   - ErrUnitRange: a unit index falls outside [0, n).
//   - ErrNegativeLength: a negative boundary length was supplied.
//   - ErrNonFinite: a NaN or ±Inf length was supplied.
//   - ErrAsymmetry: duplicate (u,v)/(v,u) entries disagree.
//   - ErrSelectionLength: a selection mask has the wrong length.
//   - ErrBadNeighbourCount: KNearest called with k < 1 or k ≥ number of points.
//   - ErrCoincidentPoints: KNearest found two points at zero distance.
package boundary
