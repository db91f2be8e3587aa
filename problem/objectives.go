package problem

import "fmt"

// MinimumSetObjective minimizes total cost subject to every resolved target
// being met (the classic Marxan-style reserve selection goal).
type MinimumSetObjective struct{}

func (MinimumSetObjective) Validate(*Problem) error { return nil }
func (MinimumSetObjective) isObjective()            {}

// MaximumFeaturesObjective maximizes the (optionally weighted) number of
// features whose targets are met, subject to total cost staying within
// Budget.
type MaximumFeaturesObjective struct {
	Budget float64
	// Weights holds one weight per feature; empty means equal weights, a
	// single element broadcasts.
	Weights []float64
}

func (o MaximumFeaturesObjective) Validate(p *Problem) error {
	if err := validateBudget(o.Budget); err != nil {
		return err
	}
	return validateWeights(o.Weights, p.NumFeatures())
}
func (MaximumFeaturesObjective) isObjective() {}

// MaximumUtilityObjective maximizes the total (weighted) amount of all
// features held by the solution, subject to total cost staying within
// Budget. It needs no targets.
type MaximumUtilityObjective struct {
	Budget  float64
	Weights []float64
}

func (o MaximumUtilityObjective) Validate(p *Problem) error {
	if err := validateBudget(o.Budget); err != nil {
		return err
	}
	return validateWeights(o.Weights, p.NumFeatures())
}
func (MaximumUtilityObjective) isObjective() {}

// MaximumPhyloDiversityObjective maximizes the phylogenetic branch length
// represented by the solution, subject to Budget. A branch counts as
// represented when at least one feature under it meets its target.
type MaximumPhyloDiversityObjective struct {
	Budget float64
	// BranchLengths holds one length per branch of the feature tree.
	BranchLengths []float64
	// BranchFeatures lists, per branch, the features descending from it.
	BranchFeatures [][]int
}

func (o MaximumPhyloDiversityObjective) Validate(p *Problem) error {
	if err := validateBudget(o.Budget); err != nil {
		return err
	}
	if len(o.BranchLengths) == 0 || len(o.BranchLengths) != len(o.BranchFeatures) {
		return fmt.Errorf("%w: %d branch lengths for %d branches",
			ErrInvalidParameterLength, len(o.BranchLengths), len(o.BranchFeatures))
	}
	for b, l := range o.BranchLengths {
		if !isFinite(l) {
			return fmt.Errorf("%w: branch length %d", ErrNonFinite, b)
		}
		if l < 0 {
			return fmt.Errorf("%w: negative branch length %d", ErrInvalidParameterRange, b)
		}
	}
	for b, fs := range o.BranchFeatures {
		if len(fs) == 0 {
			return fmt.Errorf("%w: branch %d has no features", ErrInvalidParameterLength, b)
		}
		for _, f := range fs {
			if f < 0 || f >= p.NumFeatures() {
				return fmt.Errorf("%w: branch %d references feature %d", ErrInvalidParameterRange, b, f)
			}
		}
	}
	return nil
}
func (MaximumPhyloDiversityObjective) isObjective() {}

func validateBudget(b float64) error {
	if !isFinite(b) {
		return fmt.Errorf("%w: budget", ErrNonFinite)
	}
	if b <= 0 {
		return fmt.Errorf("%w: budget must be positive", ErrInvalidParameterRange)
	}
	return nil
}

// validateWeights checks an optional weight vector: empty, a single
// broadcast element, or exactly n entries, all finite and non-negative.
func validateWeights(ws []float64, n int) error {
	if len(ws) > 1 && len(ws) != n {
		return fmt.Errorf("%w: %d weights for %d features", ErrInvalidParameterLength, len(ws), n)
	}
	for i, w := range ws {
		if !isFinite(w) {
			return fmt.Errorf("%w: weight %d", ErrNonFinite, i)
		}
		if w < 0 {
			return fmt.Errorf("%w: negative weight %d", ErrInvalidParameterRange, i)
		}
	}
	return nil
}

// broadcastWeights expands an optional weight vector to n entries, defaulting
// to 1. Assumes validateWeights passed.
func broadcastWeights(ws []float64, n int) []float64 {
	out := make([]float64, n)
	switch len(ws) {
	case 0:
		for i := range out {
			out[i] = 1
		}
	case 1:
		for i := range out {
			out[i] = ws[0]
		}
	default:
		copy(out, ws)
	}
	return out
}

// ExpandedWeights returns the per-feature weights of a weighted objective,
// broadcast to the feature count.
func (o MaximumFeaturesObjective) ExpandedWeights(p *Problem) []float64 {
	return broadcastWeights(o.Weights, p.NumFeatures())
}

// ExpandedWeights returns the per-feature weights broadcast to the feature
// count.
func (o MaximumUtilityObjective) ExpandedWeights(p *Problem) []float64 {
	return broadcastWeights(o.Weights, p.NumFeatures())
}
