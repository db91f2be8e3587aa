package compile

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/diogosbr/prioritizr/boundary"
	"github.com/diogosbr/prioritizr/mip"
	"github.com/diogosbr/prioritizr/problem"
)

// fourUnits builds a single-zone problem over four planning units with two
// features: feature 0 lives in units 0-1, feature 1 in units 2-3.
func fourUnits(t *testing.T) *problem.Problem {
	t.Helper()
	p, err := problem.New(
		[][]float64{{1}, {2}, {3}, {4}},
		[]problem.AmountEntry{
			{PU: 0, Feature: 0, Amount: 2},
			{PU: 1, Feature: 0, Amount: 3},
			{PU: 2, Feature: 1, Amount: 4},
			{PU: 3, Feature: 1, Amount: 1},
		},
	)
	require.NoError(t, err)
	return p
}

func TestCompile_NoObjective(t *testing.T) {
	p := fourUnits(t)
	_, err := Compile(p)
	require.ErrorIs(t, err, ErrNoObjective)
}

func TestCompile_MinimumSetRequiresTargets(t *testing.T) {
	p := fourUnits(t)
	require.NoError(t, p.SetObjective(problem.MinimumSetObjective{}))
	_, err := Compile(p)
	require.ErrorIs(t, err, ErrUnresolvedTarget)
}

func TestCompile_MinimumSet(t *testing.T) {
	p := fourUnits(t)
	require.NoError(t, p.SetObjective(problem.MinimumSetObjective{}))
	require.NoError(t, p.AddTargets(problem.RelativeTargets{Fractions: []float64{0.5}}))

	prog, err := Compile(p)
	require.NoError(t, err)

	require.Equal(t, mip.Minimize, prog.Sense)
	require.Equal(t, 4, prog.NumVars())
	require.Equal(t, []float64{1, 2, 3, 4}, prog.Objective)
	for col := 0; col < 4; col++ {
		require.Equal(t, mip.Binary, prog.Types[col])
	}

	// One ≥-row per (feature, zone) target: 0.5 of each feature's abundance.
	require.Equal(t, 2, prog.NumRows())
	require.Equal(t, mip.GE, prog.Rows[0].Op)
	require.Equal(t, []mip.Nonzero{{Col: 0, Val: 2}, {Col: 1, Val: 3}}, prog.Rows[0].Coefs)
	require.InDelta(t, 2.5, prog.Rows[0].RHS, 1e-12)
	require.Equal(t, []mip.Nonzero{{Col: 2, Val: 4}, {Col: 3, Val: 1}}, prog.Rows[1].Coefs)
	require.InDelta(t, 2.5, prog.Rows[1].RHS, 1e-12)

	primary, ok := prog.Block(PrimaryBlock)
	require.True(t, ok)
	require.Equal(t, 0, primary.Offset)
	require.Equal(t, 4, primary.Len)
}

func TestCompile_Idempotent(t *testing.T) {
	b, err := boundary.FromGrid(2, 2, 1)
	require.NoError(t, err)

	build := func() *mip.Program {
		p := fourUnits(t)
		require.NoError(t, p.SetObjective(problem.MinimumSetObjective{}))
		require.NoError(t, p.AddTargets(problem.RelativeTargets{Fractions: []float64{0.5}}))
		require.NoError(t, p.AddPenalty(problem.BoundaryPenalty{Weight: 2, EdgeFactor: 1, Boundary: b}))
		require.NoError(t, p.AddConstraint(problem.ContiguityConstraint{Boundary: b}))
		prog, err := Compile(p)
		require.NoError(t, err)
		return prog
	}

	require.True(t, reflect.DeepEqual(build(), build()))
}

func TestCompile_Locks(t *testing.T) {
	p, err := problem.New(
		[][]float64{{1}, {2}, {3}, {4}},
		[]problem.AmountEntry{{PU: 0, Feature: 0, Amount: 1}},
		problem.WithLockedIn([]int{1}),
		problem.WithLockedOut([]int{2}),
	)
	require.NoError(t, err)
	require.NoError(t, p.SetObjective(problem.MinimumSetObjective{}))
	require.NoError(t, p.AddTargets(problem.AbsoluteTargets{Amounts: []float64{1}}))

	prog, err := Compile(p)
	require.NoError(t, err)
	require.Equal(t, 1.0, prog.Lower[1])
	require.Equal(t, 1.0, prog.Upper[1])
	require.Equal(t, 0.0, prog.Upper[2])
}

func TestCompile_LockConflict(t *testing.T) {
	p, err := problem.New(
		[][]float64{{1}, {2}},
		[]problem.AmountEntry{{PU: 0, Feature: 0, Amount: 1}},
		problem.WithLockedOut([]int{1}),
	)
	require.NoError(t, err)
	require.NoError(t, p.SetObjective(problem.MinimumSetObjective{}))
	require.NoError(t, p.AddTargets(problem.AbsoluteTargets{Amounts: []float64{1}}))
	require.NoError(t, p.AddConstraint(problem.LockedInConstraint{Units: []int{1}}))

	_, err = Compile(p)
	require.ErrorIs(t, err, problem.ErrModifierConflict)
}

func TestCompile_MaximumFeatures(t *testing.T) {
	p := fourUnits(t)
	require.NoError(t, p.SetObjective(problem.MaximumFeaturesObjective{Budget: 5, Weights: []float64{1, 3}}))
	require.NoError(t, p.AddTargets(problem.RelativeTargets{Fractions: []float64{1}}))

	prog, err := Compile(p)
	require.NoError(t, err)
	require.Equal(t, mip.Maximize, prog.Sense)

	met, ok := prog.Block(FeatureMetBlock)
	require.True(t, ok)
	require.Equal(t, 2, met.Len)
	require.Equal(t, 1.0, prog.Objective[met.Offset])
	require.Equal(t, 3.0, prog.Objective[met.Offset+1])

	// Per target: sum(a·x) − T·y ≥ 0, then one budget row.
	require.Equal(t, 3, prog.NumRows())
	require.Equal(t,
		[]mip.Nonzero{{Col: 0, Val: 2}, {Col: 1, Val: 3}, {Col: met.Offset, Val: -5}},
		prog.Rows[0].Coefs)
	budget := prog.Rows[2]
	require.Equal(t, mip.LE, budget.Op)
	require.Equal(t, 5.0, budget.RHS)
	require.Equal(t, []mip.Nonzero{{Col: 0, Val: 1}, {Col: 1, Val: 2}, {Col: 2, Val: 3}, {Col: 3, Val: 4}}, budget.Coefs)
}

func TestCompile_MaximumUtility(t *testing.T) {
	p := fourUnits(t)
	require.NoError(t, p.SetObjective(problem.MaximumUtilityObjective{Budget: 6, Weights: []float64{2}}))

	prog, err := Compile(p)
	require.NoError(t, err)
	require.Equal(t, mip.Maximize, prog.Sense)
	// No targets attached: the budget row is the only constraint.
	require.Equal(t, 1, prog.NumRows())
	require.Equal(t, []float64{4, 6, 8, 2}, prog.Objective)
}

func TestCompile_MaximumPhyloDiversity(t *testing.T) {
	p := fourUnits(t)
	require.NoError(t, p.SetObjective(problem.MaximumPhyloDiversityObjective{
		Budget:         7,
		BranchLengths:  []float64{10, 4},
		BranchFeatures: [][]int{{0, 1}, {1}},
	}))
	require.NoError(t, p.AddTargets(problem.RelativeTargets{Fractions: []float64{0.4}}))

	prog, err := Compile(p)
	require.NoError(t, err)

	met, ok := prog.Block(FeatureMetBlock)
	require.True(t, ok)
	require.Equal(t, 2, met.Len)
	branch, ok := prog.Block(BranchMetBlock)
	require.True(t, ok)
	require.Equal(t, 2, branch.Len)
	require.Equal(t, 10.0, prog.Objective[branch.Offset])
	require.Equal(t, 4.0, prog.Objective[branch.Offset+1])

	// Two feature rows, two branch rows, one budget row.
	require.Equal(t, 5, prog.NumRows())
	require.Equal(t,
		[]mip.Nonzero{{Col: met.Offset, Val: 1}, {Col: met.Offset + 1, Val: 1}, {Col: branch.Offset, Val: -1}},
		prog.Rows[2].Coefs)
}

func TestCompile_NeighborRows(t *testing.T) {
	b, err := boundary.FromGrid(2, 2, 1)
	require.NoError(t, err)
	p := fourUnits(t)
	require.NoError(t, p.SetObjective(problem.MinimumSetObjective{}))
	require.NoError(t, p.AddTargets(problem.RelativeTargets{Fractions: []float64{0.1}}))
	require.NoError(t, p.AddConstraint(problem.NeighborConstraint{MinNeighbors: 2, Boundary: b}))

	prog, err := Compile(p)
	require.NoError(t, err)
	// 2 target rows + one neighbour row per unit.
	require.Equal(t, 6, prog.NumRows())
	// Unit 0 neighbours units 1 and 2 in a 2×2 grid.
	require.Equal(t,
		[]mip.Nonzero{{Col: 0, Val: -2}, {Col: 1, Val: 1}, {Col: 2, Val: 1}},
		prog.Rows[2].Coefs)
}

func TestCompile_LinearConstraint(t *testing.T) {
	p := fourUnits(t)
	require.NoError(t, p.SetObjective(problem.MaximumUtilityObjective{Budget: 10}))
	require.NoError(t, p.AddConstraint(problem.LinearConstraint{
		Coefficients: [][]float64{{1}, {0}, {1}, {0}},
		Op:           problem.Equal,
		RHS:          1,
	}))

	prog, err := Compile(p)
	require.NoError(t, err)
	row := prog.Rows[prog.NumRows()-1]
	require.Equal(t, mip.EQ, row.Op)
	require.Equal(t, []mip.Nonzero{{Col: 0, Val: 1}, {Col: 2, Val: 1}}, row.Coefs)
}

func TestCompile_ProportionDecision(t *testing.T) {
	b, err := boundary.FromGrid(2, 2, 1)
	require.NoError(t, err)
	p := fourUnits(t)
	require.NoError(t, p.SetObjective(problem.MinimumSetObjective{}))
	require.NoError(t, p.AddTargets(problem.RelativeTargets{Fractions: []float64{0.5}}))
	require.NoError(t, p.SetDecision(problem.ProportionDecision{}))
	require.NoError(t, p.AddPenalty(problem.BoundaryPenalty{Weight: 1, Boundary: b}))

	prog, err := Compile(p)
	require.NoError(t, err)
	require.Equal(t, mip.Continuous, prog.Types[0])
	diff, ok := prog.Block(BoundaryDiffBlock)
	require.True(t, ok)
	require.Equal(t, mip.Continuous, prog.Types[diff.Offset])
	require.Equal(t, 1.0, prog.Upper[diff.Offset])
}

func TestCompile_BoundaryPenalty(t *testing.T) {
	b, err := boundary.FromGrid(2, 2, 1)
	require.NoError(t, err)
	p := fourUnits(t)
	require.NoError(t, p.SetObjective(problem.MinimumSetObjective{}))
	require.NoError(t, p.AddTargets(problem.RelativeTargets{Fractions: []float64{0.5}}))
	require.NoError(t, p.AddPenalty(problem.BoundaryPenalty{Weight: 3, EdgeFactor: 1, Boundary: b}))

	prog, err := Compile(p)
	require.NoError(t, err)

	diff, ok := prog.Block(BoundaryDiffBlock)
	require.True(t, ok)
	require.Equal(t, len(b.Pairs()), diff.Len)
	require.Equal(t, mip.Binary, prog.Types[diff.Offset])
	// Minimization: each deviation costs weight × shared length (= 3·1).
	for i := 0; i < diff.Len; i++ {
		require.Equal(t, 3.0, prog.Objective[diff.Offset+i])
	}
	// Edge correction: every corner unit of a 2×2 grid exposes two sides.
	require.Equal(t, 1.0+3.0*2, prog.Objective[0])

	// Two rows per deviation variable: d − x_u + x_v ≥ 0 and the mirror.
	require.Equal(t, 2+2*diff.Len, prog.NumRows())
	first := prog.Rows[2]
	require.Equal(t, mip.GE, first.Op)
	require.Len(t, first.Coefs, 3)
}

func TestCompile_ConnectivityPenaltySignUnderMaximize(t *testing.T) {
	b, err := boundary.FromEntries(4, []boundary.Entry{
		{I: 0, J: 1, Length: 0.5},
		{I: 2, J: 2, Length: 0.25},
	})
	require.NoError(t, err)
	p := fourUnits(t)
	require.NoError(t, p.SetObjective(problem.MaximumUtilityObjective{Budget: 10}))
	require.NoError(t, p.AddPenalty(problem.ConnectivityPenalty{Weight: 2, Connectivity: b}))

	prog, err := Compile(p)
	require.NoError(t, err)

	and, ok := prog.Block(ConnectivityAndBlock)
	require.True(t, ok)
	require.Equal(t, 1, and.Len)
	// Maximization: co-selection is rewarded with a positive term.
	require.Equal(t, 1.0, prog.Objective[and.Offset])
	// Diagonal entry rewards unit 2's own selection on top of its utility (4).
	require.Equal(t, 4.0+0.5, prog.Objective[2])
}

func TestCompile_ContiguityStructure(t *testing.T) {
	b, err := boundary.FromGrid(2, 2, 1)
	require.NoError(t, err)
	p := fourUnits(t)
	require.NoError(t, p.SetObjective(problem.MinimumSetObjective{}))
	require.NoError(t, p.AddTargets(problem.RelativeTargets{Fractions: []float64{0.5}}))
	require.NoError(t, p.AddConstraint(problem.ContiguityConstraint{Boundary: b}))

	prog, err := Compile(p)
	require.NoError(t, err)

	root, ok := prog.Block("contiguity_z0_root")
	require.True(t, ok)
	require.Equal(t, 4, root.Len)
	require.Equal(t, mip.Binary, prog.Types[root.Offset])
	flow, ok := prog.Block("contiguity_z0_flow")
	require.True(t, ok)
	require.Equal(t, 2*len(b.Pairs()), flow.Len)
	require.Equal(t, mip.Continuous, prog.Types[flow.Offset])

	// Witness: units 0 and 1 selected, unit 0 rooted, one unit of flow on
	// the 0→1 arc. Every row must accept it.
	x := make([]float64, prog.NumVars())
	x[0], x[1] = 1, 1
	x[root.Offset] = 1
	pairs := b.Pairs()
	for k, e := range pairs {
		if e.I == 0 && e.J == 1 {
			x[flow.Offset+2*k] = 1
		}
	}
	for i, row := range prog.Rows {
		if i < 2 {
			continue // target rows are checked elsewhere
		}
		require.True(t, row.Evaluate(x, 1e-9), "row %d rejects a connected selection", i)
	}

	// A disconnected selection (two opposite corners, no flow) must violate
	// at least one flow-balance row.
	y := make([]float64, prog.NumVars())
	y[0], y[3] = 1, 1
	y[root.Offset] = 1
	violated := false
	for i, row := range prog.Rows {
		if i >= 2 && !row.Evaluate(y, 1e-9) {
			violated = true
			break
		}
	}
	require.True(t, violated)
}

func TestCompile_MultiZoneContiguity(t *testing.T) {
	b, err := boundary.FromGrid(2, 2, 1)
	require.NoError(t, err)
	p, err := problem.New(
		[][]float64{{1, 2}, {2, 1}, {3, 3}, {4, 1}},
		[]problem.AmountEntry{
			{PU: 0, Feature: 0, Zone: 0, Amount: 1},
			{PU: 1, Feature: 0, Zone: 1, Amount: 1},
		},
	)
	require.NoError(t, err)
	require.NoError(t, p.SetObjective(problem.MinimumSetObjective{}))
	require.NoError(t, p.AddTargets(problem.AbsoluteTargets{Amounts: []float64{1}}))
	require.NoError(t, p.AddConstraint(problem.MultiZoneContiguityConstraint{Boundary: b}))

	prog, err := Compile(p)
	require.NoError(t, err)

	root, ok := prog.Block("contiguity_root")
	require.True(t, ok)
	require.Equal(t, 4, root.Len)
	_, ok = prog.Block("contiguity_flow")
	require.True(t, ok)
}

func TestCompile_MultiZoneLockInRow(t *testing.T) {
	p, err := problem.New(
		[][]float64{{1, 2}, {2, 1}},
		[]problem.AmountEntry{{PU: 0, Feature: 0, Zone: 0, Amount: 1}},
		problem.WithLockedIn([]int{1}),
	)
	require.NoError(t, err)
	require.NoError(t, p.SetObjective(problem.MinimumSetObjective{}))
	require.NoError(t, p.AddTargets(problem.AbsoluteTargets{Amounts: []float64{1}}))

	prog, err := Compile(p)
	require.NoError(t, err)
	// The construction lock-in names no zone, so it becomes a row:
	// x(1,0) + x(1,1) ≥ 1 rather than a bound.
	require.Equal(t, 1.0, prog.Upper[2])
	row := prog.Rows[0]
	require.Equal(t, mip.GE, row.Op)
	require.Equal(t, []mip.Nonzero{{Col: 2, Val: 1}, {Col: 3, Val: 1}}, row.Coefs)
}

func TestCompile_ZoneExclusivityRows(t *testing.T) {
	p, err := problem.New(
		[][]float64{{1, 1}},
		[]problem.AmountEntry{
			{PU: 0, Feature: 0, Zone: 0, Amount: 2},
			{PU: 0, Feature: 0, Zone: 1, Amount: 3},
		},
	)
	require.NoError(t, err)
	require.NoError(t, p.SetObjective(problem.MaximumUtilityObjective{Budget: 2}))

	prog, err := Compile(p)
	require.NoError(t, err)

	// One ≤-row per unit: the unit is allocated to at most one zone.
	row := prog.Rows[0]
	require.Equal(t, mip.LE, row.Op)
	require.Equal(t, 1.0, row.RHS)
	require.Equal(t, []mip.Nonzero{{Col: 0, Val: 1}, {Col: 1, Val: 1}}, row.Coefs)
	require.False(t, row.Evaluate([]float64{1, 1}, 1e-9))
	require.True(t, row.Evaluate([]float64{0, 1}, 1e-9))
}

func TestCompile_ZoneExclusivityBoundedInteger(t *testing.T) {
	p, err := problem.New(
		[][]float64{{1, 1}, {1, 1}},
		[]problem.AmountEntry{{PU: 0, Feature: 0, Zone: 0, Amount: 1}},
	)
	require.NoError(t, err)
	require.NoError(t, p.SetObjective(problem.MaximumUtilityObjective{Budget: 10}))
	require.NoError(t, p.SetDecision(problem.BoundedIntegerDecision{Cap: 3}))

	prog, err := Compile(p)
	require.NoError(t, err)

	// The cap bounds each unit's total allocation, not each zone separately.
	require.Equal(t, mip.LE, prog.Rows[0].Op)
	require.Equal(t, 3.0, prog.Rows[0].RHS)
	require.Len(t, prog.Rows[0].Coefs, 2)
}

func TestResolveTargets_LaterOverrides(t *testing.T) {
	p := fourUnits(t)
	require.NoError(t, p.AddTargets(problem.RelativeTargets{Fractions: []float64{0.5}}))
	require.NoError(t, p.AddTargets(problem.AbsoluteTargets{Amounts: []float64{4, 4}}))

	targets, err := ResolveTargets(p)
	require.NoError(t, err)
	require.Len(t, targets, 2)
	for _, rt := range targets {
		require.Equal(t, 4.0, rt.Amount)
	}
}
