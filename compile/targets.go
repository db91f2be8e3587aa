package compile

import (
	"github.com/diogosbr/prioritizr/mip"
	"github.com/diogosbr/prioritizr/problem"
)

// ResolveTargets merges every attached target specification into one
// absolute target per (feature, zone), ordered feature-major. Later target
// modifiers override earlier ones feature by feature. An empty slice means
// no targets are attached.
func ResolveTargets(p *problem.Problem) ([]problem.ResolvedTarget, error) {
	sets := p.TargetSets()
	if len(sets) == 0 {
		return nil, nil
	}
	nZ := p.NumZones()
	merged := make([]float64, p.NumFeatures()*nZ)
	present := make([]bool, len(merged))
	for _, t := range sets {
		resolved, err := t.Resolve(p)
		if err != nil {
			return nil, err
		}
		for _, rt := range resolved {
			k := rt.Feature*nZ + rt.Zone
			merged[k] = rt.Amount
			present[k] = true
		}
	}
	out := make([]problem.ResolvedTarget, 0, len(merged))
	for f := 0; f < p.NumFeatures(); f++ {
		for z := 0; z < nZ; z++ {
			k := f*nZ + z
			if present[k] {
				out = append(out, problem.ResolvedTarget{Feature: f, Zone: z, Amount: merged[k]})
			}
		}
	}
	return out, nil
}

// requireTargets resolves targets and fails with ErrUnresolvedTarget when
// the problem carries none.
func (s *state) requireTargets() ([]problem.ResolvedTarget, error) {
	targets, err := ResolveTargets(s.p)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return nil, ErrUnresolvedTarget
	}
	return targets, nil
}

// targetRow emits the plain representation row for one resolved target:
// sum of amount(u,f,z) · x(u,z) ≥ T.
func (s *state) targetRow(rt problem.ResolvedTarget) error {
	dist := s.p.AmountsFor(rt.Feature, rt.Zone)
	coefs := make([]mip.Nonzero, 0, len(dist))
	for _, ua := range dist {
		coefs = append(coefs, mip.Nonzero{Col: s.varOf(ua.PU, rt.Zone), Val: ua.Amount})
	}
	return s.prog.AddRow(mip.GE, rt.Amount, coefs...)
}
