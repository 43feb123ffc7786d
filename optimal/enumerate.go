package optimal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/route"
)

// Enumerate collects optimal routes to goal by perturbing a known optimal
// route: for every branch cell on a route it blocks the next cell, re-routes
// from the branch cell, and keeps the spliced route if it still costs
// bestCost. New routes are themselves perturbed until no unseen route turns up.
//
// Steps:
//  1. Record seed and put it on the worklist.
//  2. For each route of the current pass and each consecutive pair
//     (current, next), skip current unless it is a branch point.
//  3. Block next, search from current to goal with the heading the route
//     had on arrival at current, restore next.
//  4. Splice route[:i] with the new suffix and replay its full cost.
//  5. Keep it if the cost equals bestCost and the exact sequence is unseen.
//  6. Routes kept in a pass form the next pass.
//
// A failed re-route (ErrNoPath, or goal blocked) is discarded. Any other
// error aborts the enumeration.
//
// g is modified while a trial runs and restored afterwards; the caller must
// not use g concurrently.
func Enumerate(
	g *gridgraph.GridGraph,
	goal gridgraph.Point,
	bestCost int64,
	seed []gridgraph.Point,
	opts ...Option,
) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate grid and seed
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := cfg.Cost.ValidateFor(g); err != nil {
		return nil, err
	}
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}
	for _, p := range seed {
		if !g.IsPassable(p) {
			return nil, fmt.Errorf("%w: seed crosses wall or edge at %v", ErrSeedMismatch, p)
		}
	}
	if last := seed[len(seed)-1]; last != goal {
		return nil, fmt.Errorf("%w: seed ends at %v, goal is %v", ErrSeedMismatch, last, goal)
	}
	cost, err := route.PathCost(seed, cfg.Cost, gridgraph.Right)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSeedMismatch, err)
	}
	if cost != bestCost {
		return nil, fmt.Errorf("%w: seed costs %d, best is %d", ErrSeedMismatch, cost, bestCost)
	}

	// 3) Run passes until the worklist is empty
	e := &enumerator{
		g:      g,
		goal:   goal,
		best:   bestCost,
		opts:   cfg,
		seen:   make(map[string]struct{}),
		result: &Result{Cells: make(map[gridgraph.Point]struct{})},
	}
	e.record(seed)

	work := [][]gridgraph.Point{seed}
	for pass := 1; len(work) > 0; pass++ {
		if err := cfg.Ctx.Err(); err != nil {
			return nil, err
		}
		next, err := e.pass(work)
		if err != nil {
			return nil, err
		}
		cfg.Logger.Debug("optimal: pass done",
			"pass", pass, "routes", len(work), "new", len(next), "cells", len(e.result.Cells))
		work = next
	}

	return e.result, nil
}

// enumerator holds the state shared by all passes of one Enumerate call.
type enumerator struct {
	g    *gridgraph.GridGraph
	goal gridgraph.Point
	best int64
	opts Options

	// trialMu serialises block/search/restore on g.
	trialMu sync.Mutex

	seen   map[string]struct{}
	result *Result
}

// candidate is one (route, index) pair worth a trial.
type candidate struct {
	path []gridgraph.Point
	i    int
}

// pass runs every trial for the given routes and returns the routes that were
// new. The returned order follows the candidate order, not completion order.
func (e *enumerator) pass(work [][]gridgraph.Point) ([][]gridgraph.Point, error) {
	// Degrees are read here, while no cell is blocked.
	var cands []candidate
	for _, path := range work {
		for i := 0; i+1 < len(path); i++ {
			if e.isBranch(path[i], i) {
				cands = append(cands, candidate{path: path, i: i})
			}
		}
	}

	found := make([][]gridgraph.Point, len(cands))
	if e.opts.Workers <= 1 {
		for k, c := range cands {
			p, err := e.try(c)
			if err != nil {
				return nil, err
			}
			found[k] = p
		}
	} else {
		eg, ctx := errgroup.WithContext(e.opts.Ctx)
		eg.SetLimit(e.opts.Workers)
		for k, c := range cands {
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				p, err := e.try(c)
				if err != nil {
					return err
				}
				found[k] = p
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	}

	e.result.Trials += len(cands)
	var next [][]gridgraph.Point
	for _, p := range found {
		if p == nil {
			e.result.Discarded++
			continue
		}
		if e.record(p) {
			next = append(next, p)
		}
	}

	return next, nil
}

func (e *enumerator) isBranch(p gridgraph.Point, i int) bool {
	need := e.opts.MinBranchDegree
	if i == 0 && e.opts.StartBranching {
		need = 2
	}
	return e.g.Degree(p) >= need
}

// try blocks c.path[c.i+1], re-routes from c.path[c.i] and returns the spliced
// route if it is optimal. A nil route with a nil error means the trial
// produced nothing.
func (e *enumerator) try(c candidate) ([]gridgraph.Point, error) {
	cur, blocked := c.path[c.i], c.path[c.i+1]
	heading, err := route.ArrivalHeading(c.path, c.i, gridgraph.Right)
	if err != nil {
		return nil, err
	}

	suffix, err := e.reroute(cur, blocked, heading)
	switch {
	case errors.Is(err, route.ErrNoPath), errors.Is(err, route.ErrBlockedEndpoint):
		e.opts.Logger.Debug("optimal: re-route discarded",
			"from", cur.String(), "blocked", blocked.String(), "err", err)
		return nil, nil
	case err != nil:
		return nil, err
	}

	spliced := make([]gridgraph.Point, 0, c.i+len(suffix))
	spliced = append(spliced, c.path[:c.i]...)
	spliced = append(spliced, suffix...)

	cost, err := route.PathCost(spliced, e.opts.Cost, gridgraph.Right)
	if err != nil {
		return nil, err
	}
	if cost != e.best {
		e.opts.Logger.Debug("optimal: re-route too expensive",
			"from", cur.String(), "blocked", blocked.String(), "cost", cost)
		return nil, nil
	}

	return spliced, nil
}

// reroute is the critical section of a trial.
func (e *enumerator) reroute(from, blocked gridgraph.Point, heading gridgraph.Direction) ([]gridgraph.Point, error) {
	e.trialMu.Lock()
	defer e.trialMu.Unlock()

	var suffix []gridgraph.Point
	err := e.g.WithBlocked(blocked, func() error {
		res, err := route.FindOptimal(e.g, from, e.goal,
			route.WithContext(e.opts.Ctx),
			route.WithCostModel(e.opts.Cost),
			route.WithStartHeading(heading),
		)
		if err != nil {
			return err
		}
		suffix, err = res.Path()
		return err
	})

	return suffix, err
}

// record adds p to the result unless the same sequence was seen before.
func (e *enumerator) record(p []gridgraph.Point) bool {
	k := pathKey(p)
	if _, ok := e.seen[k]; ok {
		return false
	}
	e.seen[k] = struct{}{}
	e.result.Paths = append(e.result.Paths, p)
	for _, q := range p {
		e.result.Cells[q] = struct{}{}
	}

	return true
}

func pathKey(p []gridgraph.Point) string {
	var sb strings.Builder
	for _, q := range p {
		sb.WriteString(strconv.Itoa(q.Row))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(q.Col))
		sb.WriteByte(';')
	}
	return sb.String()
}
