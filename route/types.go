package route

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// Sentinel errors returned by the route search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.GridGraph was passed.
	ErrNilGrid = errors.New("route: grid is nil")

	// ErrOutOfBounds indicates that start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("route: endpoint out of bounds")

	// ErrBlockedEndpoint indicates that start or goal is a wall cell.
	ErrBlockedEndpoint = errors.New("route: endpoint is blocked")

	// ErrBadCostModel indicates a cost model with Step < 1 or Turn < 0, or
	// one whose prices can overflow int64.
	ErrBadCostModel = errors.New("route: Step must be ≥ 1 and Turn ≥ 0")

	// ErrNoPath indicates that the goal cannot be reached from the start.
	ErrNoPath = errors.New("route: no path")

	// ErrBrokenChain indicates that a predecessor map does not lead back to
	// the start of the search.
	ErrBrokenChain = errors.New("route: broken predecessor chain")
)

// CostModel prices single moves. A move that keeps the current heading costs
// Step; a move in any other direction costs Step+Turn.
type CostModel struct {
	Step int64
	Turn int64
}

// DefaultCostModel returns Step=1, Turn=1000.
func DefaultCostModel() CostModel {
	return CostModel{Step: 1, Turn: 1000}
}

// UnitCostModel prices every move at 1, which turns FindOptimal into a plain
// shortest-path search.
func UnitCostModel() CostModel {
	return CostModel{Step: 1, Turn: 0}
}

// Move returns the cost of stepping in direction move while facing heading.
func (m CostModel) Move(heading, move gridgraph.Direction) int64 {
	if heading == move {
		return m.Step
	}
	return m.Step + m.Turn
}

// Validate reports ErrBadCostModel if Step < 1, Turn < 0, or Step+Turn does
// not fit in an int64.
func (m CostModel) Validate() error {
	if m.Step < 1 || m.Turn < 0 {
		return fmt.Errorf("%w: got Step=%d Turn=%d", ErrBadCostModel, m.Step, m.Turn)
	}
	if m.Turn > math.MaxInt64-m.Step {
		return fmt.Errorf("%w: Step+Turn overflows int64 (Step=%d Turn=%d)", ErrBadCostModel, m.Step, m.Turn)
	}
	return nil
}

// ValidateFor runs Validate and then checks that no route on g can overflow
// an int64 score. A route visits each (cell, heading) state at most once, so
// 4·W·H moves plus the heuristic bound every f-score.
func (m CostModel) ValidateFor(g *gridgraph.GridGraph) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if g == nil {
		return ErrNilGrid
	}
	h, w := g.Dimensions()
	moves := int64(4*w*h + w + h)
	if m.Step+m.Turn > math.MaxInt64/moves {
		return fmt.Errorf("%w: Step+Turn=%d too large for a %dx%d grid", ErrBadCostModel, m.Step+m.Turn, w, h)
	}
	return nil
}

// KeyMode selects what the search keeps one g-score for.
type KeyMode int

const (
	// KeyByState keys g-scores and predecessors by (point, heading).
	KeyByState KeyMode = iota

	// KeyByPosition keys g-scores and predecessors by point alone. State
	// keys in the predecessor map then carry a zero Heading.
	KeyByPosition
)

// State is a search node: a cell together with the heading the route had
// when it arrived there.
type State struct {
	Point   gridgraph.Point
	Heading gridgraph.Direction
}

// Options configures FindOptimal.
//
// Ctx          – cancels a long search; checked once per expansion.
// Cost         – the directional cost model.
// StartHeading – heading assumed at the start cell (default Right).
// KeyMode      – KeyByState (default) or KeyByPosition.
type Options struct {
	Ctx          context.Context
	Cost         CostModel
	StartHeading gridgraph.Direction
	KeyMode      KeyMode

	// neighbour relaxation order
	order [4]gridgraph.Direction

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring FindOptimal.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with:
//   - context.Background()
//   - DefaultCostModel()
//   - StartHeading Right
//   - KeyByState
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		Cost:         DefaultCostModel(),
		StartHeading: gridgraph.Right,
		KeyMode:      KeyByState,
		order:        gridgraph.Directions(),
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

// WithCostModel replaces the cost model. An invalid model is recorded and
// surfaced as ErrBadCostModel when the search is invoked.
func WithCostModel(m CostModel) Option {
	return func(o *Options) {
		if err := m.Validate(); err != nil {
			o.err = err
			return
		}
		o.Cost = m
	}
}

// WithStartHeading sets the heading assumed at the start cell.
func WithStartHeading(d gridgraph.Direction) Option {
	return func(o *Options) {
		o.StartHeading = d
	}
}

// WithKeyMode selects KeyByState or KeyByPosition.
func WithKeyMode(mode KeyMode) Option {
	return func(o *Options) {
		o.KeyMode = mode
	}
}

// Result is the outcome of a successful search.
//
// Cost     – minimum route cost from Start to the goal.
// Prev     – predecessor map; Prev[s] is the state s was reached from.
// Start    – the state the search began in.
// End      – the goal state that was settled.
// Expanded – number of states taken off the open set.
type Result struct {
	Cost     int64
	Prev     map[State]State
	Start    State
	End      State
	Expanded int
}

// Path rebuilds the route described by r.Prev as an ordered point sequence
// from start to goal. Returns ErrBrokenChain if the chain does not end at
// r.Start.
func (r *Result) Path() ([]gridgraph.Point, error) {
	path, err := Reconstruct(r.Prev, r.End)
	if err != nil {
		return nil, err
	}
	if path[0] != r.Start.Point {
		return nil, fmt.Errorf("%w: chain ends at %v, search started at %v", ErrBrokenChain, path[0], r.Start.Point)
	}

	return path, nil
}
