package optimal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/route"
)

// Sentinel errors returned by Enumerate and Solve.
var (
	// ErrNilGrid indicates that a nil *gridgraph.GridGraph was passed.
	ErrNilGrid = errors.New("optimal: grid is nil")

	// ErrEmptySeed indicates a seed path with no points.
	ErrEmptySeed = errors.New("optimal: seed path is empty")

	// ErrSeedMismatch indicates a seed path that does not end at the goal or
	// whose replayed cost differs from the declared best cost.
	ErrSeedMismatch = errors.New("optimal: seed path does not match goal and best cost")

	// ErrBadBranchDegree indicates a branch threshold below 2.
	ErrBadBranchDegree = errors.New("optimal: branch degree must be ≥ 2")

	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("optimal: workers must be ≥ 0")
)

// DefaultMinBranchDegree is the passable-neighbour count at which a route
// cell counts as a branch point.
const DefaultMinBranchDegree = 3

// Options configures Enumerate and Solve.
//
// Ctx             – cancels the enumeration between and inside re-routes.
// Cost            – cost model used for re-routing and replay.
// MinBranchDegree – cells with fewer passable neighbours are not branched on.
// StartBranching  – treat the route's first cell as a branch point at degree 2.
// Workers         – number of concurrent trials; 0 or 1 runs sequentially.
// Logger          – receives debug records for discarded trials.
type Options struct {
	Ctx             context.Context
	Cost            route.CostModel
	MinBranchDegree int
	StartBranching  bool
	Workers         int
	Logger          *slog.Logger

	err error
}

// Option represents a functional option for configuring Enumerate.
type Option func(*Options)

// DefaultOptions returns:
//   - context.Background()
//   - route.DefaultCostModel()
//   - MinBranchDegree 3, StartBranching on
//   - sequential execution
//   - a logger that discards everything
func DefaultOptions() Options {
	return Options{
		Ctx:             context.Background(),
		Cost:            route.DefaultCostModel(),
		MinBranchDegree: DefaultMinBranchDegree,
		StartBranching:  true,
		Workers:         0,
		Logger:          slog.New(slog.DiscardHandler),
	}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCostModel replaces the cost model used for re-routing and replay.
func WithCostModel(m route.CostModel) Option {
	return func(o *Options) {
		if err := m.Validate(); err != nil {
			o.err = err
			return
		}
		o.Cost = m
	}
}

// WithMinBranchDegree sets the branch threshold. Values below 2 are recorded
// as ErrBadBranchDegree.
func WithMinBranchDegree(n int) Option {
	return func(o *Options) {
		if n < 2 {
			o.err = fmt.Errorf("%w: got %d", ErrBadBranchDegree, n)
			return
		}
		o.MinBranchDegree = n
	}
}

// WithStartBranching toggles the relaxed threshold at the first route cell.
// The first cell has no arrival edge, so two passable neighbours already
// give it a choice.
func WithStartBranching(on bool) Option {
	return func(o *Options) {
		o.StartBranching = on
	}
}

// WithWorkers bounds the number of trials in flight.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadWorkers, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger routes debug output to l. A nil l is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is the set of optimal routes found and the cells they cover.
//
// Paths     – distinct optimal routes; Paths[0] is the seed.
// Cells     – union of all points on all Paths.
// Trials    – number of block-and-re-route attempts made.
// Discarded – trials whose re-route failed or came out more expensive.
type Result struct {
	Paths     [][]gridgraph.Point
	Cells     map[gridgraph.Point]struct{}
	Trials    int
	Discarded int
}

// Count returns the number of distinct cells on any optimal route found.
func (r *Result) Count() int {
	return len(r.Cells)
}

// Contains reports whether p lies on some recorded route.
func (r *Result) Contains(p gridgraph.Point) bool {
	_, ok := r.Cells[p]
	return ok
}

// SortedCells returns Cells in row-major order.
func (r *Result) SortedCells() []gridgraph.Point {
	out := make([]gridgraph.Point, 0, len(r.Cells))
	for p := range r.Cells {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b gridgraph.Point) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})

	return out
}
