// Package optimal_test covers the optimal route enumeration: input checks,
// the published maze fixtures, worker-count independence and grid restoration.
package optimal_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/internal/fixtures"
	"github.com/katalvlaran/gridroute/optimal"
	"github.com/katalvlaran/gridroute/route"
)

// twoWays has exactly two optimal routes, one around each side of the centre
// wall. Start and goal both have only two neighbours.
const twoWays = `#####
#...#
#S#E#
#...#
#####
`

func mustMaze(t testing.TB, literal string) *gridgraph.Maze {
	t.Helper()
	m, err := gridgraph.ParseMazeString(literal)
	require.NoError(t, err)
	return m
}

// mustSeed runs the plain search and returns its cost and route.
func mustSeed(t testing.TB, m *gridgraph.Maze, opts ...route.Option) (int64, []gridgraph.Point) {
	t.Helper()
	res, err := route.FindOptimal(m.Grid, m.Start, m.Goal, opts...)
	require.NoError(t, err)
	path, err := res.Path()
	require.NoError(t, err)
	return res.Cost, path
}

//---------------------------------------------------------------------------//
// Validation
//---------------------------------------------------------------------------//

func TestEnumerate_Validation(t *testing.T) {
	m := mustMaze(t, fixtures.Corridor)
	best, seed := mustSeed(t, m)

	cases := []struct {
		name string
		g    *gridgraph.GridGraph
		cost int64
		seed []gridgraph.Point
		opts []optimal.Option
		err  error
	}{
		{"nil grid", nil, best, seed, nil, optimal.ErrNilGrid},
		{"empty seed", m.Grid, best, nil, nil, optimal.ErrEmptySeed},
		{"seed misses goal", m.Grid, best, seed[:len(seed)-1], nil, optimal.ErrSeedMismatch},
		{"wrong cost", m.Grid, best + 1, seed, nil, optimal.ErrSeedMismatch},
		{"seed jumps", m.Grid, best, []gridgraph.Point{seed[0], m.Goal}, nil, optimal.ErrSeedMismatch},
		{"seed through wall", m.Grid, best, append([]gridgraph.Point{{Row: 0, Col: 1}}, seed...), nil, optimal.ErrSeedMismatch},
		{"branch degree", m.Grid, best, seed, []optimal.Option{optimal.WithMinBranchDegree(1)}, optimal.ErrBadBranchDegree},
		{"workers", m.Grid, best, seed, []optimal.Option{optimal.WithWorkers(-1)}, optimal.ErrBadWorkers},
		{"cost model", m.Grid, best, seed, []optimal.Option{optimal.WithCostModel(route.CostModel{Step: 0})}, route.ErrBadCostModel},
		{"cost model overflow", m.Grid, best, seed, []optimal.Option{optimal.WithCostModel(route.CostModel{Step: 1, Turn: math.MaxInt64})}, route.ErrBadCostModel},
		{"cost model too large for grid", m.Grid, best, seed, []optimal.Option{optimal.WithCostModel(route.CostModel{Step: 1, Turn: math.MaxInt64 / 2})}, route.ErrBadCostModel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := optimal.Enumerate(tc.g, m.Goal, tc.cost, tc.seed, tc.opts...)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestEnumerate_CancelledContext(t *testing.T) {
	m := mustMaze(t, fixtures.SmallMaze)
	best, seed := mustSeed(t, m)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := optimal.Enumerate(m.Grid, m.Goal, best, seed, optimal.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

//---------------------------------------------------------------------------//
// Fixtures
//---------------------------------------------------------------------------//

func TestEnumerate_Fixtures(t *testing.T) {
	cases := []struct {
		name   string
		maze   string
		cost   int64
		cells  int
		routes int
	}{
		{"small", fixtures.SmallMaze, 7036, 45, 3},
		{"large", fixtures.LargeMaze, 11048, 64, 2},
		{"corridor", fixtures.Corridor, 4, 5, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := mustMaze(t, tc.maze)
			best, seed := mustSeed(t, m)
			require.Equal(t, tc.cost, best)

			res, err := optimal.Enumerate(m.Grid, m.Goal, best, seed)
			require.NoError(t, err)
			assert.Equal(t, tc.cells, res.Count())
			assert.Len(t, res.Paths, tc.routes)
			assert.Equal(t, seed, res.Paths[0], "seed is recorded first")

			// Every recorded route is optimal and every cell is on one.
			union := make(map[gridgraph.Point]struct{})
			for _, p := range res.Paths {
				require.Equal(t, m.Start, p[0])
				require.Equal(t, m.Goal, p[len(p)-1])
				c, err := route.PathCost(p, route.DefaultCostModel(), gridgraph.Right)
				require.NoError(t, err)
				require.Equal(t, best, c)
				for _, q := range p {
					union[q] = struct{}{}
				}
			}
			assert.Empty(t, cmp.Diff(union, res.Cells))
		})
	}
}

func TestEnumerate_CorridorCountsPathLength(t *testing.T) {
	m := mustMaze(t, fixtures.Corridor)
	best, seed := mustSeed(t, m)

	res, err := optimal.Enumerate(m.Grid, m.Goal, best, seed)
	require.NoError(t, err)
	assert.Equal(t, len(seed), res.Count())
	assert.Zero(t, res.Trials, "no cell in a 1-wide corridor is a branch point")
}

// TestEnumerate_DiscardsFailedReroutes covers trials whose re-route cannot
// reach the goal: a side passage that dead-ends, and a branch cell right
// before the goal, where blocking the next cell blocks the goal itself.
func TestEnumerate_DiscardsFailedReroutes(t *testing.T) {
	cases := []struct {
		name  string
		maze  string
		cost  int64
		cells int
	}{
		{"dead end", "#######\n#S...E#\n##.####\n#######\n", 4, 5},
		{"goal blocked", "#####\n#S.E#\n##.##\n#####\n", 2, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := mustMaze(t, tc.maze)
			best, seed := mustSeed(t, m)
			require.Equal(t, tc.cost, best)

			for _, workers := range []int{0, 2} {
				var buf bytes.Buffer
				logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

				res, err := optimal.Enumerate(m.Grid, m.Goal, best, seed,
					optimal.WithWorkers(workers), optimal.WithLogger(logger))
				require.NoError(t, err, "workers %d", workers)
				assert.Equal(t, 1, res.Trials, "workers %d", workers)
				assert.Equal(t, 1, res.Discarded, "workers %d", workers)
				assert.Equal(t, tc.cells, res.Count(), "workers %d", workers)
				assert.Len(t, res.Paths, 1, "workers %d", workers)
				assert.Contains(t, buf.String(), "optimal: re-route discarded")
			}
		})
	}
}

func TestEnumerate_StartBranching(t *testing.T) {
	m := mustMaze(t, twoWays)
	best, seed := mustSeed(t, m)
	require.Equal(t, int64(3004), best)

	res, err := optimal.Enumerate(m.Grid, m.Goal, best, seed)
	require.NoError(t, err)
	assert.Equal(t, 8, res.Count())
	assert.Len(t, res.Paths, 2)

	// Without the relaxed start threshold nothing on the route is a branch.
	res, err = optimal.Enumerate(m.Grid, m.Goal, best, seed, optimal.WithStartBranching(false))
	require.NoError(t, err)
	assert.Equal(t, 5, res.Count())
	assert.Len(t, res.Paths, 1)
}

func TestEnumerate_UnitCostModel(t *testing.T) {
	m := mustMaze(t, twoWays)
	best, seed := mustSeed(t, m, route.WithCostModel(route.UnitCostModel()))
	require.Equal(t, int64(4), best)

	res, err := optimal.Enumerate(m.Grid, m.Goal, best, seed, optimal.WithCostModel(route.UnitCostModel()))
	require.NoError(t, err)
	assert.Equal(t, 8, res.Count())
}

//---------------------------------------------------------------------------//
// Determinism and side effects
//---------------------------------------------------------------------------//

func TestEnumerate_WorkersMatchSequential(t *testing.T) {
	for _, lit := range []string{fixtures.SmallMaze, fixtures.LargeMaze} {
		m := mustMaze(t, lit)
		best, seed := mustSeed(t, m)

		seq, err := optimal.Enumerate(m.Grid, m.Goal, best, seed)
		require.NoError(t, err)
		again, err := optimal.Enumerate(m.Grid, m.Goal, best, seed)
		require.NoError(t, err)
		par, err := optimal.Enumerate(m.Grid, m.Goal, best, seed, optimal.WithWorkers(4))
		require.NoError(t, err)

		assert.Empty(t, cmp.Diff(seq.Paths, again.Paths), "repeat run differs")
		assert.Empty(t, cmp.Diff(seq.Paths, par.Paths), "parallel run differs")
		assert.Empty(t, cmp.Diff(seq.SortedCells(), par.SortedCells()))
		assert.Equal(t, seq.Trials, par.Trials)
	}
}

func TestEnumerate_RestoresGrid(t *testing.T) {
	m := mustMaze(t, fixtures.LargeMaze)
	before := m.Grid.Passable()
	best, seed := mustSeed(t, m)

	_, err := optimal.Enumerate(m.Grid, m.Goal, best, seed, optimal.WithWorkers(3))
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(before, m.Grid.Passable()))
}

func TestEnumerate_Logger(t *testing.T) {
	m := mustMaze(t, fixtures.SmallMaze)
	best, seed := mustSeed(t, m)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := optimal.Enumerate(m.Grid, m.Goal, best, seed, optimal.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "optimal: pass done")
}

func TestResult_SortedCells(t *testing.T) {
	m := mustMaze(t, fixtures.SmallMaze)
	best, seed := mustSeed(t, m)

	res, err := optimal.Enumerate(m.Grid, m.Goal, best, seed)
	require.NoError(t, err)
	cells := res.SortedCells()
	require.Len(t, cells, res.Count())
	for i := 1; i < len(cells); i++ {
		assert.True(t, cells[i-1].Less(cells[i]), "%v before %v", cells[i-1], cells[i])
	}
	assert.True(t, res.Contains(m.Start))
	assert.True(t, res.Contains(m.Goal))
	assert.False(t, res.Contains(gridgraph.Point{}))
}
