package problem

import (
	"fmt"
	"math"
	"sort"
)

// AmountEntry is one cell of the sparse amount matrix: the amount of Feature
// contributed when planning unit PU is allocated to Zone. Entries for the
// same (PU, Feature, Zone) triple are summed during construction.
type AmountEntry struct {
	PU      int
	Feature int
	Zone    int
	Amount  float64
}

// UnitAmount is a per-unit slice of one feature's distribution in one zone.
type UnitAmount struct {
	PU     int
	Amount float64
}

// Problem is the canonical model: planning units × zones × features, costs,
// amounts, locks, and the attached modifier stack. Shape is immutable after
// New; modifiers are attached through SetObjective, SetDecision, AddTargets,
// AddConstraint and AddPenalty.
type Problem struct {
	nPU, nF, nZ int
	costs       [][]float64 // [unit][zone]
	names       []string

	amounts       [][][]UnitAmount // [feature][zone], sorted by PU
	abundance     []float64        // per feature, summed over units and zones
	zoneAbundance [][]float64      // [feature][zone]

	lockedIn, lockedOut []bool

	objective   Objective
	decision    Decision
	targets     []Targets
	constraints []Constraint
	penalties   []Penalty
}

// Option configures Problem construction.
type Option func(*config)

type config struct {
	names     []string
	lockedIn  []int
	lockedOut []int
}

// WithFeatureNames names the features. The list may extend the feature count
// beyond what the amount matrix references, but never shrink it.
func WithFeatureNames(names []string) Option {
	return func(c *config) { c.names = names }
}

// WithLockedIn marks planning units as locked into the solution.
func WithLockedIn(units []int) Option {
	return func(c *config) { c.lockedIn = units }
}

// WithLockedOut marks planning units as locked out of the solution.
func WithLockedOut(units []int) Option {
	return func(c *config) { c.lockedOut = units }
}

// New builds a Problem from a per-unit, per-zone cost table and a sparse
// amount matrix. The zone count is the width of the cost rows; the feature
// count is inferred from the amount entries (or WithFeatureNames, whichever
// is larger). All costs must be finite; all amounts finite and non-negative.
//
// Time: O(units·zones + entries·log entries), Memory: O(units·zones + entries).
func New(costs [][]float64, amounts []AmountEntry, opts ...Option) (*Problem, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	nPU := len(costs)
	if nPU == 0 {
		return nil, ErrNoPlanningUnits
	}
	nZ := len(costs[0])
	if nZ == 0 {
		return nil, fmt.Errorf("%w: cost row has zero zones", ErrDimensionMismatch)
	}
	for u, row := range costs {
		if len(row) != nZ {
			return nil, fmt.Errorf("%w: cost row %d has %d zones, want %d", ErrDimensionMismatch, u, len(row), nZ)
		}
		for _, c := range row {
			if !isFinite(c) {
				return nil, fmt.Errorf("%w: cost of unit %d", ErrNonFinite, u)
			}
		}
	}

	nF := len(cfg.names)
	for _, e := range amounts {
		if e.Feature+1 > nF {
			nF = e.Feature + 1
		}
	}
	if nF == 0 {
		return nil, ErrNoFeatures
	}
	if len(cfg.names) > 0 && len(cfg.names) < nF {
		return nil, fmt.Errorf("%w: %d feature names for %d features", ErrDimensionMismatch, len(cfg.names), nF)
	}

	p := &Problem{
		nPU:           nPU,
		nF:            nF,
		nZ:            nZ,
		names:         make([]string, nF),
		abundance:     make([]float64, nF),
		zoneAbundance: make([][]float64, nF),
		amounts:       make([][][]UnitAmount, nF),
		lockedIn:      make([]bool, nPU),
		lockedOut:     make([]bool, nPU),
	}
	p.costs = make([][]float64, nPU)
	for u := range costs {
		p.costs[u] = append([]float64(nil), costs[u]...)
	}
	for f := 0; f < nF; f++ {
		if f < len(cfg.names) {
			p.names[f] = cfg.names[f]
		} else {
			p.names[f] = fmt.Sprintf("feature_%d", f)
		}
		p.zoneAbundance[f] = make([]float64, nZ)
		p.amounts[f] = make([][]UnitAmount, nZ)
	}

	// Aggregate entries per (feature, zone, unit), then flatten sorted by unit.
	agg := make([]map[int]float64, nF*nZ)
	for _, e := range amounts {
		if e.PU < 0 || e.PU >= nPU {
			return nil, fmt.Errorf("%w: amount references unit %d", ErrDimensionMismatch, e.PU)
		}
		if e.Zone < 0 || e.Zone >= nZ {
			return nil, fmt.Errorf("%w: amount references zone %d", ErrDimensionMismatch, e.Zone)
		}
		if e.Feature < 0 {
			return nil, fmt.Errorf("%w: amount references feature %d", ErrDimensionMismatch, e.Feature)
		}
		if !isFinite(e.Amount) {
			return nil, fmt.Errorf("%w: amount of feature %d in unit %d", ErrNonFinite, e.Feature, e.PU)
		}
		if e.Amount < 0 {
			return nil, fmt.Errorf("%w: negative amount of feature %d in unit %d", ErrInvalidParameterRange, e.Feature, e.PU)
		}
		k := e.Feature*nZ + e.Zone
		if agg[k] == nil {
			agg[k] = make(map[int]float64)
		}
		agg[k][e.PU] += e.Amount
	}
	for f := 0; f < nF; f++ {
		for z := 0; z < nZ; z++ {
			cell := agg[f*nZ+z]
			if len(cell) == 0 {
				continue
			}
			us := make([]int, 0, len(cell))
			for u := range cell {
				us = append(us, u)
			}
			sort.Ints(us)
			list := make([]UnitAmount, 0, len(us))
			for _, u := range us {
				a := cell[u]
				list = append(list, UnitAmount{PU: u, Amount: a})
				p.abundance[f] += a
				p.zoneAbundance[f][z] += a
			}
			p.amounts[f][z] = list
		}
	}

	for _, u := range cfg.lockedIn {
		if u < 0 || u >= nPU {
			return nil, fmt.Errorf("%w: locked-in unit %d", ErrDimensionMismatch, u)
		}
		p.lockedIn[u] = true
	}
	for _, u := range cfg.lockedOut {
		if u < 0 || u >= nPU {
			return nil, fmt.Errorf("%w: locked-out unit %d", ErrDimensionMismatch, u)
		}
		if p.lockedIn[u] {
			return nil, fmt.Errorf("%w: unit %d locked both in and out", ErrModifierConflict, u)
		}
		p.lockedOut[u] = true
	}

	return p, nil
}

// NumPlanningUnits returns the number of planning units.
func (p *Problem) NumPlanningUnits() int { return p.nPU }

// NumFeatures returns the number of features.
func (p *Problem) NumFeatures() int { return p.nF }

// NumZones returns the number of management zones (≥1).
func (p *Problem) NumZones() int { return p.nZ }

// Cost returns the cost of allocating unit u to zone z.
func (p *Problem) Cost(u, z int) float64 { return p.costs[u][z] }

// FeatureName returns the name of feature f.
func (p *Problem) FeatureName(f int) string { return p.names[f] }

// FeatureAbundance returns the total amount of feature f over all units and
// zones.
func (p *Problem) FeatureAbundance(f int) float64 { return p.abundance[f] }

// ZoneAbundance returns the total amount of feature f available in zone z.
func (p *Problem) ZoneAbundance(f, z int) float64 { return p.zoneAbundance[f][z] }

// AmountsFor returns feature f's distribution in zone z, sorted by unit.
// The returned slice is shared; callers must not modify it.
func (p *Problem) AmountsFor(f, z int) []UnitAmount { return p.amounts[f][z] }

// LockedIn reports whether unit u was locked in at construction.
func (p *Problem) LockedIn(u int) bool { return p.lockedIn[u] }

// LockedOut reports whether unit u was locked out at construction.
func (p *Problem) LockedOut(u int) bool { return p.lockedOut[u] }

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
