package presolve

import (
	"fmt"
	"math"

	"github.com/diogosbr/prioritizr/compile"
	"github.com/diogosbr/prioritizr/mip"
	"github.com/diogosbr/prioritizr/problem"
)

// RatioThreshold is the largest coefficient magnitude, and the largest
// max/min nonzero magnitude ratio, that passes screening without a warning.
const RatioThreshold = 1e9

// Warning is one advisory finding. Category names the screened component
// ("cost", "target", "boundary", ...).
type Warning struct {
	Category string
	Message  string
}

func (w Warning) String() string { return w.Category + ": " + w.Message }

// span tracks the magnitude range of one screened component.
type span struct {
	max     float64
	minNonz float64
	any     bool
}

func (s *span) add(v float64) {
	a := math.Abs(v)
	if a > s.max {
		s.max = a
	}
	if a > 0 && (!s.any || a < s.minNonz) {
		s.minNonz = a
		s.any = true
	}
}

// warn appends magnitude warnings for the span to ws and returns the result.
func (s *span) warn(ws []Warning, category string) []Warning {
	if s.max > RatioThreshold {
		ws = append(ws, Warning{category,
			fmt.Sprintf("magnitude %.3g exceeds %.0e", s.max, float64(RatioThreshold))})
	} else if s.any && s.max/s.minNonz > RatioThreshold {
		ws = append(ws, Warning{category,
			fmt.Sprintf("magnitude range [%.3g, %.3g] spans more than %.0e", s.minNonz, s.max, float64(RatioThreshold))})
	}
	return ws
}

// Check screens a problem's inputs. It reports ok=false together with one
// warning per finding; an empty warning list means the problem looks sound.
//
// Time: O(units·zones + entries + penalty entries), Memory: O(1).
func Check(p *problem.Problem) (bool, []Warning) {
	var ws []Warning

	var costs span
	negative := 0
	for u := 0; u < p.NumPlanningUnits(); u++ {
		for z := 0; z < p.NumZones(); z++ {
			c := p.Cost(u, z)
			costs.add(c)
			if c < 0 {
				negative++
			}
		}
	}
	ws = costs.warn(ws, "cost")
	if negative == p.NumPlanningUnits()*p.NumZones() {
		ws = append(ws, Warning{"cost", "all planning unit costs are negative"})
	}

	var amounts span
	for f := 0; f < p.NumFeatures(); f++ {
		for z := 0; z < p.NumZones(); z++ {
			for _, ua := range p.AmountsFor(f, z) {
				amounts.add(ua.Amount)
			}
		}
	}
	ws = amounts.warn(ws, "feature amount")

	if targets, err := compile.ResolveTargets(p); err == nil {
		var ts span
		for _, rt := range targets {
			ts.add(rt.Amount)
		}
		ws = ts.warn(ws, "target")
	}

	ws = append(ws, checkObjective(p)...)
	ws = append(ws, checkPenalties(p)...)
	ws = append(ws, checkLocks(p)...)

	return len(ws) == 0, ws
}

func checkObjective(p *problem.Problem) []Warning {
	var ws []Warning
	switch o := p.Objective().(type) {
	case problem.MaximumFeaturesObjective:
		var s span
		for _, w := range o.ExpandedWeights(p) {
			s.add(w)
		}
		ws = s.warn(ws, "target weights")
	case problem.MaximumUtilityObjective:
		var s span
		for _, w := range o.ExpandedWeights(p) {
			s.add(w)
		}
		ws = s.warn(ws, "target weights")
	case problem.MaximumPhyloDiversityObjective:
		var s span
		for _, l := range o.BranchLengths {
			s.add(l)
		}
		ws = s.warn(ws, "branch lengths")
	}
	return ws
}

// checkPenalties screens penalty terms as they will appear in the objective,
// already multiplied by their weight.
func checkPenalties(p *problem.Problem) []Warning {
	var ws []Warning
	for _, pe := range p.Penalties() {
		switch pe := pe.(type) {
		case problem.BoundaryPenalty:
			var s span
			for _, e := range pe.Boundary.Pairs() {
				s.add(pe.Weight * e.Length)
			}
			for _, e := range pe.Boundary.Diagonal() {
				s.add(pe.Weight * pe.EdgeFactor * e.Length)
			}
			ws = s.warn(ws, "boundary")
		case problem.ConnectivityPenalty:
			var s span
			for _, e := range pe.Connectivity.Pairs() {
				s.add(pe.Weight * e.Length)
			}
			for _, e := range pe.Connectivity.Diagonal() {
				s.add(pe.Weight * e.Length)
			}
			ws = s.warn(ws, "connectivity")
		}
	}
	return ws
}

func checkLocks(p *problem.Problem) []Warning {
	n := p.NumPlanningUnits()
	in, out := 0, 0
	for u := 0; u < n; u++ {
		if p.LockedIn(u) {
			in++
		}
		if p.LockedOut(u) {
			out++
		}
	}
	var ws []Warning
	if in == n {
		ws = append(ws, Warning{"locks", "every planning unit is locked in"})
	}
	if out == n {
		ws = append(ws, Warning{"locks", "every planning unit is locked out"})
	}
	return ws
}

// CheckProgram screens a compiled program: objective coefficients, constraint
// coefficients, right-hand sides and variable bounds, after all weights have
// been multiplied through.
func CheckProgram(prog *mip.Program) (bool, []Warning) {
	var ws []Warning

	var obj span
	for _, v := range prog.Objective {
		obj.add(v)
	}
	ws = obj.warn(ws, "objective")

	var coefs, rhs span
	for _, r := range prog.Rows {
		for _, c := range r.Coefs {
			coefs.add(c.Val)
		}
		rhs.add(r.RHS)
	}
	ws = coefs.warn(ws, "constraint matrix")
	ws = rhs.warn(ws, "right-hand side")

	// Infinite bounds mean "unbounded", not a magnitude problem.
	var bounds span
	for col := range prog.Lower {
		if v := prog.Lower[col]; !math.IsInf(v, 0) {
			bounds.add(v)
		}
		if v := prog.Upper[col]; !math.IsInf(v, 0) {
			bounds.add(v)
		}
	}
	ws = bounds.warn(ws, "bounds")

	return len(ws) == 0, ws
}
