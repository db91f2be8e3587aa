package problem

import (
	"fmt"
	"math"
)

// RelativeTargets sets each feature's target as a fraction of the abundance
// available to it. Fractions holds one entry per feature, or a single entry
// broadcast to all features. In multi-zone problems the fraction applies to
// each zone's own abundance.
type RelativeTargets struct {
	Fractions []float64
}

func (t RelativeTargets) Validate(p *Problem) error {
	if len(t.Fractions) == 0 || (len(t.Fractions) > 1 && len(t.Fractions) != p.NumFeatures()) {
		return fmt.Errorf("%w: %d fractions for %d features",
			ErrInvalidParameterLength, len(t.Fractions), p.NumFeatures())
	}
	for i, f := range t.Fractions {
		if !isFinite(f) {
			return fmt.Errorf("%w: fraction %d", ErrNonFinite, i)
		}
		if f < 0 || f > 1 {
			return fmt.Errorf("%w: fraction %d outside [0,1]", ErrInvalidParameterRange, i)
		}
	}
	return nil
}

// Resolve computes absolute targets fraction × abundance per (feature, zone).
// The result is independent of planning-unit ordering because abundances are
// plain sums.
func (t RelativeTargets) Resolve(p *Problem) ([]ResolvedTarget, error) {
	fracs := broadcastWeights(t.Fractions, p.NumFeatures())
	out := make([]ResolvedTarget, 0, p.NumFeatures()*p.NumZones())
	for f := 0; f < p.NumFeatures(); f++ {
		for z := 0; z < p.NumZones(); z++ {
			out = append(out, ResolvedTarget{
				Feature: f,
				Zone:    z,
				Amount:  fracs[f] * p.ZoneAbundance(f, z),
			})
		}
	}
	return out, nil
}

// AbsoluteTargets sets each feature's target as a fixed amount. Amounts holds
// one entry per feature or a single broadcast entry; the amount applies to
// each zone.
type AbsoluteTargets struct {
	Amounts []float64
}

func (t AbsoluteTargets) Validate(p *Problem) error {
	if len(t.Amounts) == 0 || (len(t.Amounts) > 1 && len(t.Amounts) != p.NumFeatures()) {
		return fmt.Errorf("%w: %d amounts for %d features",
			ErrInvalidParameterLength, len(t.Amounts), p.NumFeatures())
	}
	for i, a := range t.Amounts {
		if !isFinite(a) {
			return fmt.Errorf("%w: amount %d", ErrNonFinite, i)
		}
		if a < 0 {
			return fmt.Errorf("%w: negative amount %d", ErrInvalidParameterRange, i)
		}
	}
	return nil
}

func (t AbsoluteTargets) Resolve(p *Problem) ([]ResolvedTarget, error) {
	amounts := broadcastWeights(t.Amounts, p.NumFeatures())
	out := make([]ResolvedTarget, 0, p.NumFeatures()*p.NumZones())
	for f := 0; f < p.NumFeatures(); f++ {
		for z := 0; z < p.NumZones(); z++ {
			out = append(out, ResolvedTarget{Feature: f, Zone: z, Amount: amounts[f]})
		}
	}
	return out, nil
}

// LoglinearTargets interpolates each feature's target fraction between two
// abundance thresholds on a log scale: features no more abundant than
// LowerAbundance get LowerFraction, features at least as abundant as
// UpperAbundance get UpperFraction, and everything between is linear in
// log(abundance). When CapAbundance is positive, features whose abundance
// reaches it have their absolute target overridden to CapTarget.
type LoglinearTargets struct {
	LowerAbundance float64
	LowerFraction  float64
	UpperAbundance float64
	UpperFraction  float64

	// CapAbundance > 0 enables the cap override.
	CapAbundance float64
	CapTarget    float64
}

func (t LoglinearTargets) Validate(*Problem) error {
	for _, v := range []float64{t.LowerAbundance, t.LowerFraction, t.UpperAbundance, t.UpperFraction, t.CapAbundance, t.CapTarget} {
		if !isFinite(v) {
			return fmt.Errorf("%w: log-linear threshold", ErrNonFinite)
		}
	}
	if t.LowerAbundance <= 0 || t.UpperAbundance < t.LowerAbundance {
		return fmt.Errorf("%w: abundance thresholds must satisfy 0 < lower ≤ upper", ErrInvalidParameterRange)
	}
	if t.LowerFraction < 0 || t.LowerFraction > 1 || t.UpperFraction < 0 || t.UpperFraction > 1 {
		return fmt.Errorf("%w: threshold fractions outside [0,1]", ErrInvalidParameterRange)
	}
	if t.CapAbundance < 0 || t.CapTarget < 0 {
		return fmt.Errorf("%w: negative cap", ErrInvalidParameterRange)
	}
	return nil
}

// Fraction returns the interpolated target fraction for the given total
// abundance, clamped to the threshold fractions outside [lower, upper].
func (t LoglinearTargets) Fraction(abundance float64) float64 {
	switch {
	case abundance <= t.LowerAbundance:
		return t.LowerFraction
	case abundance >= t.UpperAbundance:
		return t.UpperFraction
	}
	// LowerAbundance < abundance < UpperAbundance implies lower < upper here.
	span := math.Log(t.UpperAbundance) - math.Log(t.LowerAbundance)
	pos := (math.Log(abundance) - math.Log(t.LowerAbundance)) / span
	return t.LowerFraction + pos*(t.UpperFraction-t.LowerFraction)
}

func (t LoglinearTargets) Resolve(p *Problem) ([]ResolvedTarget, error) {
	out := make([]ResolvedTarget, 0, p.NumFeatures()*p.NumZones())
	for f := 0; f < p.NumFeatures(); f++ {
		total := p.FeatureAbundance(f)
		frac := t.Fraction(total)
		capped := t.CapAbundance > 0 && total >= t.CapAbundance
		for z := 0; z < p.NumZones(); z++ {
			amount := frac * p.ZoneAbundance(f, z)
			if capped {
				amount = t.CapTarget
			}
			out = append(out, ResolvedTarget{Feature: f, Zone: z, Amount: amount})
		}
	}
	return out, nil
}
