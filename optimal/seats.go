package optimal

import (
	"fmt"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/route"
)

// Seats solves m end to end: it finds the minimum route cost from m.Start to
// m.Goal and counts the cells that lie on at least one minimum-cost route.
//
// The seed route comes from route.FindOptimal with the same cost model and
// context that opts configure. route.ErrNoPath is returned unchanged when the
// goal is unreachable.
func Seats(m *gridgraph.Maze, opts ...Option) (cost int64, cells int, err error) {
	res, err := Solve(m, opts...)
	if err != nil {
		return 0, 0, err
	}
	return res.Cost, res.Count(), nil
}

// Solution is the full outcome of Solve.
type Solution struct {
	*Result

	// Cost is the minimum route cost, shared by every path in Paths.
	Cost int64
}

// Solve is Seats with the individual routes kept.
func Solve(m *gridgraph.Maze, opts ...Option) (*Solution, error) {
	if m == nil || m.Grid == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	best, err := route.FindOptimal(m.Grid, m.Start, m.Goal,
		route.WithContext(cfg.Ctx),
		route.WithCostModel(cfg.Cost),
	)
	if err != nil {
		return nil, err
	}
	seed, err := best.Path()
	if err != nil {
		return nil, fmt.Errorf("optimal: seed route: %w", err)
	}
	cfg.Logger.Debug("optimal: seed route found",
		"cost", best.Cost, "length", len(seed), "expanded", best.Expanded)

	res, err := Enumerate(m.Grid, m.Goal, best.Cost, seed, opts...)
	if err != nil {
		return nil, err
	}

	return &Solution{Result: res, Cost: best.Cost}, nil
}
