// Package simulate generates deterministic synthetic planning datasets on
// rectangular grids, for examples, benchmarks and tests.
//
// What:
//
//   - Grid builds a dataset over an nrow×ncol raster: a smooth cost surface
//     with seeded noise, one spatial distribution per feature (a Gaussian
//     bump around a randomly placed centre, truncated for sparsity), and the
//     matching boundary matrix.
//   - Data.Problem assembles the pieces into a problem ready for modifiers.
//
// Determinism: every stochastic choice flows from the single seeded RNG and
// all iteration is index-ordered, so the same seed and dimensions always
// produce an identical dataset. Two seeds differ in both costs and feature
// placement.
//
// Errors:
//
//   - ErrBadDimensions: a grid dimension below 1.
//   - ErrBadCount: a feature or zone count below 1.
package simulate
