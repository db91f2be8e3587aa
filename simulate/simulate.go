package simulate

import (
	"errors"
	"math"
	"math/rand"

	"github.com/diogosbr/prioritizr/boundary"
	"github.com/diogosbr/prioritizr/problem"
)

// Sentinel errors for dataset generation.
var (
	// ErrBadDimensions indicates a grid dimension below 1.
	ErrBadDimensions = errors.New("simulate: grid dimensions must be positive")
	// ErrBadCount indicates a feature or zone count below 1.
	ErrBadCount = errors.New("simulate: count must be positive")
)

// Defaults applied when an option is not given.
const (
	// DefaultSeed drives the RNG when WithSeed is absent.
	DefaultSeed = int64(1)
	// DefaultFeatures is the number of simulated features.
	DefaultFeatures = 3
	// DefaultZones is the number of management zones.
	DefaultZones = 1
)

// Generation constants: a cost surface oscillating around baseCost, feature
// bumps of height peakAmount, truncated below amountCutoff to keep the
// amount matrix sparse.
const (
	baseCost      = 10.0
	costAmplitude = 4.0
	costNoise     = 1.0
	zoneSpread    = 0.15
	peakAmount    = 10.0
	amountCutoff  = 0.05
)

// Option configures dataset generation.
type Option func(*config)

type config struct {
	seed     int64
	features int
	zones    int
}

// WithSeed fixes the RNG seed. Equal seeds give identical datasets.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithFeatures sets the number of simulated features.
func WithFeatures(n int) Option {
	return func(c *config) { c.features = n }
}

// WithZones sets the number of management zones.
func WithZones(n int) Option {
	return func(c *config) { c.zones = n }
}

// Data is one simulated dataset over a grid of planning units, unit indices
// row-major.
type Data struct {
	Rows, Cols int
	Zones      int
	// Costs holds the per-unit, per-zone cost table.
	Costs [][]float64
	// Entries is the sparse amount matrix.
	Entries []problem.AmountEntry
	// Boundary is the grid adjacency with unit edge length.
	Boundary *boundary.Matrix
}

// Grid simulates a dataset over an nrow×ncol raster.
//
// Time: O(units·(zones + features)), Memory: same.
func Grid(nrow, ncol int, opts ...Option) (*Data, error) {
	if nrow < 1 || ncol < 1 {
		return nil, ErrBadDimensions
	}
	cfg := config{seed: DefaultSeed, features: DefaultFeatures, zones: DefaultZones}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.features < 1 || cfg.zones < 1 {
		return nil, ErrBadCount
	}

	rng := rand.New(rand.NewSource(cfg.seed))
	n := nrow * ncol

	d := &Data{Rows: nrow, Cols: ncol, Zones: cfg.zones, Costs: make([][]float64, n)}

	// Smooth surface plus noise; zones scale it so no zone dominates.
	freqR := 2 * math.Pi / float64(nrow)
	freqC := 2 * math.Pi / float64(ncol)
	for u := 0; u < n; u++ {
		r, c := u/ncol, u%ncol
		surface := baseCost +
			costAmplitude*math.Sin(freqR*float64(r))*math.Cos(freqC*float64(c)) +
			costNoise*rng.Float64()
		row := make([]float64, cfg.zones)
		for z := 0; z < cfg.zones; z++ {
			row[z] = surface * (1 + zoneSpread*float64(z))
		}
		d.Costs[u] = row
	}

	// One truncated Gaussian bump per (feature, zone).
	sigma := float64(max(nrow, ncol)) / 4
	for f := 0; f < cfg.features; f++ {
		for z := 0; z < cfg.zones; z++ {
			cr := rng.Float64() * float64(nrow)
			cc := rng.Float64() * float64(ncol)
			for u := 0; u < n; u++ {
				r, c := u/ncol, u%ncol
				dr := float64(r) + 0.5 - cr
				dc := float64(c) + 0.5 - cc
				amount := peakAmount * math.Exp(-(dr*dr+dc*dc)/(2*sigma*sigma))
				if amount < amountCutoff {
					continue
				}
				d.Entries = append(d.Entries, problem.AmountEntry{
					PU: u, Feature: f, Zone: z, Amount: amount,
				})
			}
		}
	}

	var err error
	if d.Boundary, err = boundary.FromGrid(nrow, ncol, 1); err != nil {
		return nil, err
	}
	return d, nil
}

// Problem assembles the dataset into a problem. Extra construction options
// (locks, feature names) pass through.
func (d *Data) Problem(opts ...problem.Option) (*problem.Problem, error) {
	return problem.New(d.Costs, d.Entries, opts...)
}
