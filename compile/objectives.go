package compile

import (
	"fmt"

	"github.com/diogosbr/prioritizr/mip"
	"github.com/diogosbr/prioritizr/problem"
)

// Names of the indicator blocks appended by coverage-style objectives.
const (
	// FeatureMetBlock holds one binary indicator per (feature, zone) pair
	// (per feature, for the phylogenetic objective) that may be 1 only
	// when the corresponding target is met.
	FeatureMetBlock = "feature_met"
	// BranchMetBlock holds one binary indicator per phylogenetic branch.
	BranchMetBlock = "branch_met"
)

// applyObjective dispatches on the attached objective variant, setting the
// optimization sense, base objective terms, and target rows.
func (s *state) applyObjective() error {
	switch o := s.p.Objective().(type) {
	case problem.MinimumSetObjective:
		return s.applyMinimumSet()
	case problem.MaximumFeaturesObjective:
		return s.applyMaximumFeatures(o)
	case problem.MaximumUtilityObjective:
		return s.applyMaximumUtility(o)
	case problem.MaximumPhyloDiversityObjective:
		return s.applyMaximumPhylo(o)
	default:
		return fmt.Errorf("%w: unknown objective %T", ErrNoObjective, o)
	}
}

// applyMinimumSet: minimize total cost with every target met outright.
func (s *state) applyMinimumSet() error {
	s.prog.Sense = mip.Minimize
	targets, err := s.requireTargets()
	if err != nil {
		return err
	}
	for u := 0; u < s.nPU; u++ {
		for z := 0; z < s.nZ; z++ {
			if err := s.prog.AddObjective(s.varOf(u, z), s.p.Cost(u, z)); err != nil {
				return err
			}
		}
	}
	for _, rt := range targets {
		if err := s.targetRow(rt); err != nil {
			return err
		}
	}
	return nil
}

// applyMaximumFeatures: maximize the weighted count of met targets within a
// budget. Each (feature, zone) gets a binary indicator y that can reach 1
// only when the target row holds: sum(a·x) − T·y ≥ 0.
func (s *state) applyMaximumFeatures(o problem.MaximumFeaturesObjective) error {
	s.prog.Sense = mip.Maximize
	targets, err := s.requireTargets()
	if err != nil {
		return err
	}
	weights := o.ExpandedWeights(s.p)
	met := s.prog.AddVars(FeatureMetBlock, s.nF*s.nZ, mip.Binary, 0, 1)
	for _, rt := range targets {
		y := met + rt.Feature*s.nZ + rt.Zone
		if err := s.prog.AddObjective(y, weights[rt.Feature]); err != nil {
			return err
		}
		dist := s.p.AmountsFor(rt.Feature, rt.Zone)
		coefs := make([]mip.Nonzero, 0, len(dist)+1)
		for _, ua := range dist {
			coefs = append(coefs, mip.Nonzero{Col: s.varOf(ua.PU, rt.Zone), Val: ua.Amount})
		}
		coefs = append(coefs, mip.Nonzero{Col: y, Val: -rt.Amount})
		if err := s.prog.AddRow(mip.GE, 0, coefs...); err != nil {
			return err
		}
	}
	return s.budgetRow(o.Budget)
}

// applyMaximumUtility: maximize the weighted amount of every feature held,
// within a budget. Targets are optional here; any attached ones still emit
// plain representation rows.
func (s *state) applyMaximumUtility(o problem.MaximumUtilityObjective) error {
	s.prog.Sense = mip.Maximize
	weights := o.ExpandedWeights(s.p)
	for f := 0; f < s.nF; f++ {
		for z := 0; z < s.nZ; z++ {
			for _, ua := range s.p.AmountsFor(f, z) {
				if err := s.prog.AddObjective(s.varOf(ua.PU, z), weights[f]*ua.Amount); err != nil {
					return err
				}
			}
		}
	}
	targets, err := ResolveTargets(s.p)
	if err != nil {
		return err
	}
	for _, rt := range targets {
		if err := s.targetRow(rt); err != nil {
			return err
		}
	}
	return s.budgetRow(o.Budget)
}

// applyMaximumPhylo: maximize represented branch length. A feature counts as
// represented when its summed target across zones is met; a branch when any
// feature under it is represented.
func (s *state) applyMaximumPhylo(o problem.MaximumPhyloDiversityObjective) error {
	s.prog.Sense = mip.Maximize
	targets, err := s.requireTargets()
	if err != nil {
		return err
	}

	met := s.prog.AddVars(FeatureMetBlock, s.nF, mip.Binary, 0, 1)

	// One aggregated row per feature: sum over zones of (a·x) − T_f·y_f ≥ 0.
	total := make([]float64, s.nF)
	covered := make([]bool, s.nF)
	for _, rt := range targets {
		total[rt.Feature] += rt.Amount
		covered[rt.Feature] = true
	}
	for f := 0; f < s.nF; f++ {
		if !covered[f] {
			continue
		}
		coefs := make([]mip.Nonzero, 0)
		for z := 0; z < s.nZ; z++ {
			for _, ua := range s.p.AmountsFor(f, z) {
				coefs = append(coefs, mip.Nonzero{Col: s.varOf(ua.PU, z), Val: ua.Amount})
			}
		}
		coefs = append(coefs, mip.Nonzero{Col: met + f, Val: -total[f]})
		if err := s.prog.AddRow(mip.GE, 0, coefs...); err != nil {
			return err
		}
	}

	branch := s.prog.AddVars(BranchMetBlock, len(o.BranchLengths), mip.Binary, 0, 1)
	for b, fs := range o.BranchFeatures {
		if err := s.prog.AddObjective(branch+b, o.BranchLengths[b]); err != nil {
			return err
		}
		// y_b ≤ sum of y_f over the branch's features.
		coefs := make([]mip.Nonzero, 0, len(fs)+1)
		for _, f := range fs {
			coefs = append(coefs, mip.Nonzero{Col: met + f, Val: 1})
		}
		coefs = append(coefs, mip.Nonzero{Col: branch + b, Val: -1})
		if err := s.prog.AddRow(mip.GE, 0, coefs...); err != nil {
			return err
		}
	}
	return s.budgetRow(o.Budget)
}

// budgetRow caps total allocation cost: sum of cost(u,z)·x(u,z) ≤ budget.
func (s *state) budgetRow(budget float64) error {
	coefs := make([]mip.Nonzero, 0, s.nPU*s.nZ)
	for u := 0; u < s.nPU; u++ {
		for z := 0; z < s.nZ; z++ {
			coefs = append(coefs, mip.Nonzero{Col: s.varOf(u, z), Val: s.p.Cost(u, z)})
		}
	}
	return s.prog.AddRow(mip.LE, budget, coefs...)
}
