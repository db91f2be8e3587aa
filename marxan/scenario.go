package marxan

import (
	"fmt"
	"sort"

	"github.com/diogosbr/prioritizr/boundary"
	"github.com/diogosbr/prioritizr/problem"
)

// Problem assembles the scenario into a single-zone minimum-set problem with
// targets and locks attached, plus the boundary matrix when the scenario has
// boundary records (nil otherwise). The caller chooses whether and how hard
// to penalize boundary length:
//
//	p, b, err := s.Problem()
//	if b != nil {
//		err = p.AddPenalty(problem.BoundaryPenalty{Weight: blm, EdgeFactor: 1, Boundary: b})
//	}
//
// Unit and feature identifiers are mapped to dense indices in ascending
// order.
func (s *Scenario) Problem() (*problem.Problem, *boundary.Matrix, error) {
	units := append([]PlanningUnit(nil), s.Units...)
	sort.Slice(units, func(i, j int) bool { return units[i].ID < units[j].ID })
	unitIndex := make(map[int]int, len(units))
	costs := make([][]float64, len(units))
	var lockedIn, lockedOut []int
	for i, u := range units {
		if _, dup := unitIndex[u.ID]; dup {
			return nil, nil, fmt.Errorf("%w: unit %d", ErrDuplicateID, u.ID)
		}
		unitIndex[u.ID] = i
		costs[i] = []float64{u.Cost}
		switch u.Status {
		case StatusLockedIn:
			lockedIn = append(lockedIn, i)
		case StatusLockedOut:
			lockedOut = append(lockedOut, i)
		}
	}

	features := append([]Feature(nil), s.Features...)
	sort.Slice(features, func(i, j int) bool { return features[i].ID < features[j].ID })
	featureIndex := make(map[int]int, len(features))
	names := make([]string, len(features))
	for i, f := range features {
		if _, dup := featureIndex[f.ID]; dup {
			return nil, nil, fmt.Errorf("%w: feature %d", ErrDuplicateID, f.ID)
		}
		featureIndex[f.ID] = i
		if f.Name != "" {
			names[i] = f.Name
		} else {
			names[i] = fmt.Sprintf("spp_%d", f.ID)
		}
	}

	entries := make([]problem.AmountEntry, 0, len(s.Amounts))
	for _, a := range s.Amounts {
		u, ok := unitIndex[a.UnitID]
		if !ok {
			return nil, nil, fmt.Errorf("%w: puvspr references unit %d", ErrUnknownID, a.UnitID)
		}
		f, ok := featureIndex[a.FeatureID]
		if !ok {
			return nil, nil, fmt.Errorf("%w: puvspr references feature %d", ErrUnknownID, a.FeatureID)
		}
		entries = append(entries, problem.AmountEntry{PU: u, Feature: f, Amount: a.Amount})
	}

	p, err := problem.New(costs, entries,
		problem.WithFeatureNames(names),
		problem.WithLockedIn(lockedIn),
		problem.WithLockedOut(lockedOut),
	)
	if err != nil {
		return nil, nil, err
	}
	if err := p.SetObjective(problem.MinimumSetObjective{}); err != nil {
		return nil, nil, err
	}

	targets := make([]float64, len(features))
	for i, f := range features {
		switch {
		case f.HasProp:
			targets[i] = f.Prop * p.FeatureAbundance(i)
		case f.HasTarget:
			targets[i] = f.Target
		}
	}
	if err := p.AddTargets(problem.AbsoluteTargets{Amounts: targets}); err != nil {
		return nil, nil, err
	}

	var b *boundary.Matrix
	if len(s.Boundaries) > 0 {
		bentries := make([]boundary.Entry, 0, len(s.Boundaries))
		for _, rec := range s.Boundaries {
			i, ok := unitIndex[rec.ID1]
			if !ok {
				return nil, nil, fmt.Errorf("%w: bound references unit %d", ErrUnknownID, rec.ID1)
			}
			j, ok := unitIndex[rec.ID2]
			if !ok {
				return nil, nil, fmt.Errorf("%w: bound references unit %d", ErrUnknownID, rec.ID2)
			}
			bentries = append(bentries, boundary.Entry{I: i, J: j, Length: rec.Length})
		}
		if b, err = boundary.FromEntries(len(units), bentries); err != nil {
			return nil, nil, err
		}
	}
	return p, b, nil
}
