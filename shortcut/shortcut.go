package shortcut

import (
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/route"
)

// Find returns every shortcut along path that jumps at most maxJump cells
// (Manhattan distance) and saves at least minSaved steps, mapped to the steps
// it saves.
//
// A shortcut from path[i] to path[j] with j > i saves j - i - d steps, where d
// is the Manhattan distance between the two cells: the route covers the same
// ground in j - i steps.
//
// Complexity: O(L × J²), L = route length, J = maxJump.
func Find(path []gridgraph.Point, maxJump, minSaved int, opts ...Option) (map[Shortcut]int, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if maxJump < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadJump, maxJump)
	}
	if minSaved < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadMinSaved, minSaved)
	}

	// 2) Index the route
	index, err := indexRoute(path)
	if err != nil {
		return nil, err
	}

	// 3) Scan, sequentially or in contiguous chunks of the route
	out := make(map[Shortcut]int)
	var mu sync.Mutex
	merge := func(part map[Shortcut]int) {
		mu.Lock()
		defer mu.Unlock()
		for k, v := range part {
			out[k] = v
		}
	}

	s := &scanner{path: path, index: index, maxJump: maxJump, minSaved: minSaved}
	if cfg.Workers <= 1 {
		if err := cfg.Ctx.Err(); err != nil {
			return nil, err
		}
		merge(s.scan(0, len(path)))
	} else {
		eg, ctx := errgroup.WithContext(cfg.Ctx)
		eg.SetLimit(cfg.Workers)
		chunk := (len(path) + cfg.Workers - 1) / cfg.Workers
		for lo := 0; lo < len(path); lo += chunk {
			hi := min(lo+chunk, len(path))
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				merge(s.scan(lo, hi))
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	}

	cfg.Logger.Debug("shortcut: scan done",
		"route", len(path), "max_jump", maxJump, "min_saved", minSaved, "found", len(out))

	return out, nil
}

// FindInMaze routes m with unit cost and runs Find on that route.
func FindInMaze(m *gridgraph.Maze, maxJump, minSaved int, opts ...Option) (map[Shortcut]int, error) {
	if m == nil {
		return nil, route.ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	res, err := route.FindOptimal(m.Grid, m.Start, m.Goal,
		route.WithContext(cfg.Ctx),
		route.WithCostModel(route.UnitCostModel()),
	)
	if err != nil {
		return nil, err
	}
	path, err := res.Path()
	if err != nil {
		return nil, err
	}

	return Find(path, maxJump, minSaved, opts...)
}

// Histogram counts shortcuts by the number of steps they save.
func Histogram(found map[Shortcut]int) map[int]int {
	out := make(map[int]int)
	for _, saved := range found {
		out[saved]++
	}
	return out
}

// scanner is read-only once built and is shared by all workers.
type scanner struct {
	path     []gridgraph.Point
	index    map[gridgraph.Point]int
	maxJump  int
	minSaved int
}

// scan collects the shortcuts starting at path[lo:hi].
func (s *scanner) scan(lo, hi int) map[Shortcut]int {
	out := make(map[Shortcut]int)
	for i := lo; i < hi; i++ {
		from := s.path[i]
		// Walk the diamond of radius maxJump around from.
		for dr := -s.maxJump; dr <= s.maxJump; dr++ {
			span := s.maxJump - abs(dr)
			for dc := -span; dc <= span; dc++ {
				to := gridgraph.Point{Row: from.Row + dr, Col: from.Col + dc}
				j, ok := s.index[to]
				if !ok || j <= i {
					continue
				}
				saved := j - i - abs(dr) - abs(dc)
				if saved >= s.minSaved {
					out[Shortcut{From: from, To: to}] = saved
				}
			}
		}
	}
	return out
}

func indexRoute(path []gridgraph.Point) (map[gridgraph.Point]int, error) {
	if len(path) == 0 {
		return nil, ErrEmptyRoute
	}
	index := make(map[gridgraph.Point]int, len(path))
	for i, p := range path {
		if _, dup := index[p]; dup {
			return nil, fmt.Errorf("%w: %v repeated", ErrNotARoute, p)
		}
		if i > 0 {
			if _, err := gridgraph.DirectionBetween(path[i-1], p); err != nil {
				return nil, fmt.Errorf("%w: step %d: %w", ErrNotARoute, i, err)
			}
		}
		index[p] = i
	}
	return index, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
