// Package route implements a best-first (A*) search with a turn penalty.
//
// Notes on implementation choices:
//
//   - The open set is an indexed heap: a state is in it at most once and is
//     re-positioned with heap.Fix when its f-score changes.
//   - Ties are accepted on relaxation and overwrite the predecessor.
//   - Under KeyByState a settled state is re-opened only on strict
//     improvement; an equal-cost arrival just records the new predecessor.
//     Under KeyByPosition ties re-open the state, because a different
//     predecessor changes the arrival heading and so the outgoing costs.
package route

import (
	"fmt"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// FindOptimal computes a minimum-cost route from start to goal on g.
//
// Returns:
//
//   - *Result holding the cost and the predecessor map, on success.
//   - ErrNoPath if the goal is unreachable. Callers must treat this as a
//     normal outcome.
//   - ErrNilGrid, ErrOutOfBounds, ErrBlockedEndpoint, ErrBadCostModel for
//     invalid input, or ctx.Err() if the context is cancelled.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadCostModel).
//  2. g must be non-nil (ErrNilGrid).
//  3. Step+Turn must leave every score on g within int64 (ErrBadCostModel).
//  4. start and goal must be in bounds (ErrOutOfBounds).
//  5. start and goal must be passable (ErrBlockedEndpoint).
//
// Complexity:
//
//   - Time:  O(S log S), S = number of states.
//   - Space: O(S).
func FindOptimal(g *gridgraph.GridGraph, start, goal gridgraph.Point, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate the grid, the cost model against its size, and both endpoints
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := cfg.Cost.ValidateFor(g); err != nil {
		return nil, err
	}
	for _, p := range [2]gridgraph.Point{start, goal} {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
		if !g.IsPassable(p) {
			return nil, fmt.Errorf("%w: %v", ErrBlockedEndpoint, p)
		}
	}

	// 3) Initialize runner state and run main loop.
	r := &runner{
		g:      g,
		opts:   cfg,
		goal:   goal,
		gScore: make(map[State]int64),
		prev:   make(map[State]State),
		closed: make(map[State]bool),
		open:   newOpenSet(),
	}
	r.init(start)

	return r.process()
}

// Manhattan returns |Δrow| + |Δcol|.
func Manhattan(a, b gridgraph.Point) int64 {
	return int64(abs(a.Row-b.Row) + abs(a.Col-b.Col))
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g        *gridgraph.GridGraph // The input grid; read-only within the search.
	opts     Options              // Configuration options.
	goal     gridgraph.Point      // Target cell.
	start    State                // Key of the start state.
	gScore   map[State]int64      // Best known cost from start.
	prev     map[State]State      // Predecessor on the best known route.
	closed   map[State]bool       // States taken off the open set and expanded.
	open     *openSet             // Frontier ordered by f-score.
	expanded int
}

// key maps a (point, heading) pair to the map key used under the configured KeyMode.
func (r *runner) key(p gridgraph.Point, heading gridgraph.Direction) State {
	if r.opts.KeyMode == KeyByPosition {
		return State{Point: p}
	}
	return State{Point: p, Heading: heading}
}

// heading returns the direction the route faces on arrival at s.
func (r *runner) heading(s State) gridgraph.Direction {
	if r.opts.KeyMode == KeyByState {
		return s.Heading
	}
	p, ok := r.prev[s]
	if !ok {
		return r.opts.StartHeading
	}
	d, err := gridgraph.DirectionBetween(p.Point, s.Point)
	if err != nil {
		// prev only ever links orthogonal neighbours.
		panic(err)
	}
	return d
}

// h is the admissible Manhattan heuristic scaled by the cheapest move.
func (r *runner) h(p gridgraph.Point) int64 {
	return Manhattan(p, r.goal) * r.opts.Cost.Step
}

// init seeds the open set with the start state at g = 0.
func (r *runner) init(start gridgraph.Point) {
	r.start = r.key(start, r.opts.StartHeading)
	r.gScore[r.start] = 0
	r.open.upsert(r.start, r.h(start))
}

// process is the core loop. It repeatedly takes the open state with minimum
// f-score; reaching the goal ends the search, otherwise the state is
// expanded and its neighbours relaxed.
func (r *runner) process() (*Result, error) {
	for r.open.Len() > 0 {
		if err := r.opts.Ctx.Err(); err != nil {
			return nil, err
		}

		// 1) Pop the state with the smallest f-score.
		cur := r.open.pop()
		r.expanded++

		// 2) Goal test on selection, not on discovery.
		if cur.Point == r.goal {
			return &Result{
				Cost:     r.gScore[cur],
				Prev:     r.prev,
				Start:    r.start,
				End:      cur,
				Expanded: r.expanded,
			}, nil
		}

		// 3) Mark settled and relax all passable neighbours.
		r.closed[cur] = true
		r.relax(cur)
	}

	return nil, ErrNoPath
}

// relax examines each passable neighbour of cur and accepts any arrival that
// is no worse than the best one recorded so far.
func (r *runner) relax(cur State) {
	facing := r.heading(cur)
	base := r.gScore[cur]

	for _, d := range r.opts.order {
		q := cur.Point.Add(d)
		if !r.g.IsPassable(q) {
			continue
		}
		next := r.key(q, d)
		tentative := base + r.opts.Cost.Move(facing, d)

		old, seen := r.gScore[next]
		if seen && tentative > old {
			continue
		}

		// Equal-cost arrival at a settled state: keep the alternative
		// predecessor, but do not expand the state again.
		if seen && tentative == old && r.closed[next] && r.opts.KeyMode == KeyByState {
			r.prev[next] = cur
			continue
		}

		r.prev[next] = cur
		r.gScore[next] = tentative
		delete(r.closed, next)
		r.open.upsert(next, tentative+r.h(q))
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
