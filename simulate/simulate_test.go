package simulate

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/diogosbr/prioritizr/compile"
	"github.com/diogosbr/prioritizr/problem"
)

func TestGrid_Deterministic(t *testing.T) {
	a, err := Grid(5, 4, WithSeed(7))
	require.NoError(t, err)
	b, err := Grid(5, 4, WithSeed(7))
	require.NoError(t, err)
	require.True(t, reflect.DeepEqual(a.Costs, b.Costs))
	require.True(t, reflect.DeepEqual(a.Entries, b.Entries))
}

func TestGrid_SeedsDiffer(t *testing.T) {
	a, err := Grid(5, 4, WithSeed(1))
	require.NoError(t, err)
	b, err := Grid(5, 4, WithSeed(2))
	require.NoError(t, err)
	require.False(t, reflect.DeepEqual(a.Costs, b.Costs))
}

func TestGrid_Shape(t *testing.T) {
	d, err := Grid(3, 4, WithFeatures(2), WithZones(2))
	require.NoError(t, err)
	require.Len(t, d.Costs, 12)
	require.Len(t, d.Costs[0], 2)
	require.Equal(t, 12, d.Boundary.NumUnits())
	for _, row := range d.Costs {
		for _, c := range row {
			require.Positive(t, c)
		}
	}
	for _, e := range d.Entries {
		require.GreaterOrEqual(t, e.Amount, amountCutoff)
		require.Less(t, e.PU, 12)
	}
}

func TestGrid_Errors(t *testing.T) {
	_, err := Grid(0, 4)
	require.ErrorIs(t, err, ErrBadDimensions)
	_, err = Grid(3, 3, WithFeatures(0))
	require.ErrorIs(t, err, ErrBadCount)
	_, err = Grid(3, 3, WithZones(0))
	require.ErrorIs(t, err, ErrBadCount)
}

func TestData_ProblemCompiles(t *testing.T) {
	d, err := Grid(4, 4, WithSeed(3))
	require.NoError(t, err)
	p, err := d.Problem()
	require.NoError(t, err)
	require.Equal(t, 16, p.NumPlanningUnits())
	require.Equal(t, DefaultFeatures, p.NumFeatures())

	require.NoError(t, p.SetObjective(problem.MinimumSetObjective{}))
	require.NoError(t, p.AddTargets(problem.RelativeTargets{Fractions: []float64{0.2}}))
	require.NoError(t, p.AddPenalty(problem.BoundaryPenalty{Weight: 1, EdgeFactor: 1, Boundary: d.Boundary}))

	prog, err := compile.Compile(p)
	require.NoError(t, err)
	require.Positive(t, prog.NumRows())
}
