// Package apsp_test contains unit tests for the Shortest-Path Engine:
// computation, route reconstruction, lifecycle state and error reporting.
package apsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/apsp"
	"github.com/katalvlaran/lvroute/roadmap"
)

// buildMap registers names in order and the given roads.
func buildMap(t *testing.T, names []string, roads []roadmap.Road) *roadmap.Map {
	t.Helper()
	m, err := roadmap.NewMap()
	require.NoError(t, err)
	for _, name := range names {
		_, err = m.AddLocation(name, 0, 0)
		require.NoError(t, err)
	}
	for _, r := range roads {
		require.NoError(t, m.AddRoad(r.From, r.To, r.Weight))
	}

	return m
}

func computed(t *testing.T, m *roadmap.Map) *apsp.Engine {
	t.Helper()
	eng, err := apsp.New(m)
	require.NoError(t, err)
	require.NoError(t, eng.Compute())
	require.Equal(t, apsp.StateComputed, eng.State())

	return eng
}

// abcd is A=0, B=1, C=2 with A–B 10, B–C 5, A–C 100, and an isolated D=3.
func abcd(t *testing.T) *roadmap.Map {
	return buildMap(t, []string{"A", "B", "C", "D"}, []roadmap.Road{
		{From: 0, To: 1, Weight: 10},
		{From: 1, To: 2, Weight: 5},
		{From: 0, To: 2, Weight: 100},
	})
}

// ------------------------------------------------------------------------
// 1. Validation & lifecycle
// ------------------------------------------------------------------------

func TestNew_NilMap(t *testing.T) {
	t.Parallel()

	_, err := apsp.New(nil)
	require.ErrorIs(t, err, apsp.ErrNilMap)
}

func TestEngine_DirtyBeforeCompute(t *testing.T) {
	t.Parallel()

	eng, err := apsp.New(abcd(t))
	require.NoError(t, err)
	require.Equal(t, apsp.StateDirty, eng.State())

	_, err = eng.Query(0, 2)
	require.ErrorIs(t, err, apsp.ErrNotComputed)
	_, err = eng.Distance(0, 2)
	require.ErrorIs(t, err, apsp.ErrNotComputed)
	_, err = eng.NextHop(0, 2)
	require.ErrorIs(t, err, apsp.ErrNotComputed)
	_, err = eng.Table()
	require.ErrorIs(t, err, apsp.ErrNotComputed)
}

func TestEngine_MapEditMakesDirty(t *testing.T) {
	t.Parallel()

	m := abcd(t)
	eng := computed(t, m)

	require.NoError(t, m.AddRoad(2, 3, 1))
	require.Equal(t, apsp.StateDirty, eng.State())
	_, err := eng.Query(0, 3)
	require.ErrorIs(t, err, apsp.ErrNotComputed)

	require.NoError(t, eng.Compute())
	route, err := eng.Query(0, 3)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, route.Indices)
	require.Equal(t, int64(16), route.Distance)

	_, err = m.AddLocation("E", 0, 0)
	require.NoError(t, err)
	require.Equal(t, apsp.StateDirty, eng.State())
}

func TestEngine_RejectedEditKeepsComputed(t *testing.T) {
	t.Parallel()

	m := abcd(t)
	eng := computed(t, m)

	require.ErrorIs(t, m.AddRoad(0, 9, 1), roadmap.ErrInvalidIndex)
	require.Equal(t, apsp.StateComputed, eng.State())
}

// Raising a road weight is reflected exactly after a recompute because the
// engine always starts from the map's direct roads.
func TestEngine_RecomputeAfterWeightIncrease(t *testing.T) {
	t.Parallel()

	m := abcd(t)
	eng := computed(t, m)
	d, err := eng.Distance(0, 2)
	require.NoError(t, err)
	require.Equal(t, int64(15), d)

	require.NoError(t, m.AddRoad(1, 2, 500))
	require.NoError(t, eng.Compute())

	route, err := eng.Query(0, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C"}, route.Names)
	require.Equal(t, int64(100), route.Distance)
}

func TestEngine_EmptyMap(t *testing.T) {
	t.Parallel()

	m, err := roadmap.NewMap()
	require.NoError(t, err)
	eng := computed(t, m)
	require.Zero(t, eng.Len())

	_, err = eng.Query(0, 0)
	require.ErrorIs(t, err, apsp.ErrInvalidIndex)

	tbl, err := eng.Table()
	require.NoError(t, err)
	require.Empty(t, tbl.Names)
}

// ------------------------------------------------------------------------
// 2. Queries
// ------------------------------------------------------------------------

func TestQuery_Triangle(t *testing.T) {
	t.Parallel()

	eng := computed(t, abcd(t))

	route, err := eng.Query(0, 2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, route.Indices)
	require.Equal(t, []string{"A", "B", "C"}, route.Names)
	require.Equal(t, int64(15), route.Distance)
	require.Equal(t, 2, route.Hops())
	require.Equal(t, "A → B → C (15)", route.String())

	back, err := eng.Query(2, 0)
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 0}, back.Indices)
	require.Equal(t, route.Distance, back.Distance)

	hop, err := eng.NextHop(0, 2)
	require.NoError(t, err)
	require.Equal(t, 1, hop)
}

func TestQuery_NoPath(t *testing.T) {
	t.Parallel()

	eng := computed(t, abcd(t))

	_, err := eng.Query(0, 3)
	require.ErrorIs(t, err, apsp.ErrNoPath)
	_, err = eng.Distance(3, 1)
	require.ErrorIs(t, err, apsp.ErrNoPath)

	hop, err := eng.NextHop(0, 3)
	require.NoError(t, err)
	require.Equal(t, -1, hop)
}

func TestQuery_SameLocation(t *testing.T) {
	t.Parallel()

	eng := computed(t, abcd(t))

	// Even an isolated location reaches itself.
	route, err := eng.Query(3, 3)
	require.NoError(t, err)
	require.Equal(t, []int{3}, route.Indices)
	require.Zero(t, route.Distance)
	require.Zero(t, route.Hops())

	hop, err := eng.NextHop(1, 1)
	require.NoError(t, err)
	require.Equal(t, -1, hop)
}

func TestQuery_InvalidIndex(t *testing.T) {
	t.Parallel()

	eng := computed(t, abcd(t))
	for _, pair := range [][2]int{{-1, 0}, {0, 4}, {4, 4}} {
		_, err := eng.Query(pair[0], pair[1])
		require.ErrorIs(t, err, apsp.ErrInvalidIndex)
		require.ErrorIs(t, err, roadmap.ErrInvalidIndex)
	}
}

func TestQueryByName(t *testing.T) {
	t.Parallel()

	eng := computed(t, abcd(t))

	route, err := eng.QueryByName("a", "c")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, route.Names)

	_, err = eng.QueryByName("X", "C")
	require.ErrorIs(t, err, roadmap.ErrNotFound)
	require.Contains(t, err.Error(), "origin")

	_, err = eng.QueryByName("A", "Y")
	require.ErrorIs(t, err, roadmap.ErrNotFound)
	require.Contains(t, err.Error(), "destination")

	_, err = eng.QueryByName("A", "d")
	require.ErrorIs(t, err, apsp.ErrNoPath)
}

// Two equal-cost routes 0→3: via 1 and via 2. The lower intermediate index
// is discovered first and kept.
func TestQuery_TieIsDeterministic(t *testing.T) {
	t.Parallel()

	m := buildMap(t, []string{"S", "L", "H", "T"}, []roadmap.Road{
		{From: 0, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 1},
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 3, Weight: 1},
	})
	for i := 0; i < 3; i++ {
		route, err := computed(t, m).Query(0, 3)
		require.NoError(t, err)
		require.Equal(t, []string{"S", "L", "T"}, route.Names)
	}
}

// ------------------------------------------------------------------------
// 3. Table snapshot
// ------------------------------------------------------------------------

func TestTable(t *testing.T) {
	t.Parallel()

	eng := computed(t, abcd(t))
	tbl, err := eng.Table()
	require.NoError(t, err)

	require.Equal(t, []string{"A", "B", "C", "D"}, tbl.Names)
	require.Equal(t, apsp.Cell{Value: 15, Reachable: true}, tbl.Cells[0][2])
	require.Equal(t, apsp.Cell{Value: 0, Reachable: true}, tbl.Cells[3][3])
	require.False(t, tbl.Cells[0][3].Reachable)
	require.Equal(t, apsp.InfSymbol, tbl.Cells[3][0].String())

	out := tbl.String()
	require.Contains(t, out, "A")
	require.Contains(t, out, "15")
	require.Contains(t, out, apsp.InfSymbol)

	// The snapshot is detached from the engine.
	tbl.Names[0] = "Z"
	again, err := eng.Table()
	require.NoError(t, err)
	require.Equal(t, "A", again.Names[0])
}

func TestTable_String(t *testing.T) {
	t.Parallel()

	tbl := apsp.Table{
		Names: []string{"A", "B"},
		Cells: [][]apsp.Cell{
			{{Value: 0, Reachable: true}, {Value: 5, Reachable: true}},
			{{Value: 5, Reachable: true}, {}},
		},
	}
	want := "   A  B\n" +
		"A  0  5\n" +
		"B  5  ∞\n"
	require.Equal(t, want, tbl.String())
}

func TestState_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "dirty", apsp.StateDirty.String())
	require.Equal(t, "computed", apsp.StateComputed.String())
	require.Equal(t, "State(7)", apsp.State(7).String())
}
