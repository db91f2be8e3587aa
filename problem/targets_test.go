package problem_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/diogosbr/prioritizr/problem"
)

// TestRelativeTargets_Resolve: resolved target equals fraction × abundance,
// independent of the order amount entries were supplied in.
func TestRelativeTargets_Resolve(t *testing.T) {
	entries := []problem.AmountEntry{
		{PU: 0, Feature: 0, Zone: 0, Amount: 2},
		{PU: 1, Feature: 0, Zone: 0, Amount: 3},
		{PU: 2, Feature: 0, Zone: 0, Amount: 5},
	}
	permuted := []problem.AmountEntry{entries[2], entries[0], entries[1]}

	for _, es := range [][]problem.AmountEntry{entries, permuted} {
		p, err := problem.New(singleZoneCosts(1, 1, 1), es)
		require.NoError(t, err)

		resolved, err := problem.RelativeTargets{Fractions: []float64{0.3}}.Resolve(p)
		require.NoError(t, err)
		require.Len(t, resolved, 1)
		require.Equal(t, 0, resolved[0].Feature)
		require.Equal(t, 0, resolved[0].Zone)
		require.InDelta(t, 0.3*10.0, resolved[0].Amount, 1e-12)
	}
}

// TestAbsoluteTargets_Resolve checks broadcast and per-feature amounts.
func TestAbsoluteTargets_Resolve(t *testing.T) {
	p := newSingleZoneProblem(t)

	resolved, err := problem.AbsoluteTargets{Amounts: []float64{1.5, 4}}.Resolve(p)
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	require.Equal(t, 1.5, resolved[0].Amount)
	require.Equal(t, 4.0, resolved[1].Amount)

	broadcast, err := problem.AbsoluteTargets{Amounts: []float64{2}}.Resolve(p)
	require.NoError(t, err)
	for _, rt := range broadcast {
		require.Equal(t, 2.0, rt.Amount)
	}
}

// TestLoglinearTargets_Fraction verifies the clamped log interpolation.
func TestLoglinearTargets_Fraction(t *testing.T) {
	lt := problem.LoglinearTargets{
		LowerAbundance: 10, LowerFraction: 1.0,
		UpperAbundance: 1000, UpperFraction: 0.1,
	}

	require.Equal(t, 1.0, lt.Fraction(1))
	require.Equal(t, 1.0, lt.Fraction(10))
	require.Equal(t, 0.1, lt.Fraction(1000))
	require.Equal(t, 0.1, lt.Fraction(1e6))

	// Geometric midpoint of [10, 1000] is 100: halfway in log space.
	require.InDelta(t, 0.55, lt.Fraction(100), 1e-12)

	// Monotone non-increasing across the interpolation range.
	prev := math.Inf(1)
	for _, a := range []float64{10, 20, 50, 100, 200, 500, 1000} {
		f := lt.Fraction(a)
		require.LessOrEqual(t, f, prev)
		prev = f
	}
}

// TestLoglinearTargets_Cap: abundances past the cap override the absolute
// target regardless of the interpolated fraction.
func TestLoglinearTargets_Cap(t *testing.T) {
	// One abundant feature (100) and one rare feature (5).
	p, err := problem.New(singleZoneCosts(1, 1),
		[]problem.AmountEntry{
			{PU: 0, Feature: 0, Zone: 0, Amount: 100},
			{PU: 1, Feature: 1, Zone: 0, Amount: 5},
		})
	require.NoError(t, err)

	lt := problem.LoglinearTargets{
		LowerAbundance: 10, LowerFraction: 1.0,
		UpperAbundance: 1000, UpperFraction: 0.1,
		CapAbundance:   50, CapTarget: 7,
	}
	resolved, err := lt.Resolve(p)
	require.NoError(t, err)
	require.Len(t, resolved, 2)

	require.Equal(t, 7.0, resolved[0].Amount)             // capped
	require.InDelta(t, 1.0*5.0, resolved[1].Amount, 1e-12) // clamped to lower fraction
}
