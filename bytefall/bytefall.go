package bytefall

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/route"
)

// ParseCoords reads one "x,y" pair per line. Blank lines are skipped.
// x is the column and y the row, so "6,1" becomes Point{Row: 1, Col: 6}.
func ParseCoords(r io.Reader) ([]gridgraph.Point, error) {
	var out []gridgraph.Point
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		xs, ys, ok := strings.Cut(text, ",")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadCoordinate, line, text)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(xs))
		y, errY := strconv.Atoi(strings.TrimSpace(ys))
		if errX != nil || errY != nil || x < 0 || y < 0 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadCoordinate, line, text)
		}
		out = append(out, gridgraph.Point{Row: y, Col: x})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("bytefall: reading coordinates: %w", err)
	}

	return out, nil
}

// FormatCoord renders p back in "x,y" form.
func FormatCoord(p gridgraph.Point) string {
	return strconv.Itoa(p.Col) + "," + strconv.Itoa(p.Row)
}

// Grid returns the size×size memory space with the first n bytes fallen.
func Grid(size int, coords []gridgraph.Point, n int) (*gridgraph.GridGraph, error) {
	cells, err := space(size, coords, n)
	if err != nil {
		return nil, err
	}
	return gridgraph.NewGridGraph(cells)
}

// ShortestSteps returns the fewest steps from the top-left corner to the
// bottom-right corner after the first n bytes have fallen.
// Returns route.ErrNoPath (or route.ErrBlockedEndpoint if a corner is hit)
// when the exit is unreachable.
func ShortestSteps(size int, coords []gridgraph.Point, n int) (int, error) {
	g, err := Grid(size, coords, n)
	if err != nil {
		return 0, err
	}
	res, err := route.FindOptimal(g, gridgraph.Point{}, exit(size), route.WithCostModel(route.UnitCostModel()))
	if err != nil {
		return 0, err
	}
	return int(res.Cost), nil
}

// FirstBlocking lets the first safe bytes fall, then drops the rest one at a
// time and returns the first byte after which the exit is unreachable.
// A new route is only searched for when a byte lands on the current one.
//
// Returns ErrNeverBlocked if every byte falls without cutting the exit off,
// and route.ErrNoPath if the exit is already unreachable after safe bytes.
func FirstBlocking(size int, coords []gridgraph.Point, safe int, opts ...Option) (gridgraph.Point, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	cells, err := space(size, coords, safe)
	if err != nil {
		return gridgraph.Point{}, err
	}
	for _, p := range coords[safe:] {
		if !inSpace(size, p) {
			return gridgraph.Point{}, fmt.Errorf("%w: %s", ErrOutsideSpace, FormatCoord(p))
		}
	}

	onRoute, err := reroute(cfg, cells, size)
	if err != nil {
		return gridgraph.Point{}, err
	}

	for k, p := range coords[safe:] {
		cells[p.Row][p.Col] = false
		if _, hit := onRoute[p]; !hit {
			continue
		}
		cfg.Logger.Debug("bytefall: byte hit route", "byte", safe+k, "at", FormatCoord(p))

		onRoute, err = reroute(cfg, cells, size)
		switch {
		case errors.Is(err, route.ErrNoPath), errors.Is(err, route.ErrBlockedEndpoint):
			return p, nil
		case err != nil:
			return gridgraph.Point{}, err
		}
	}

	return gridgraph.Point{}, ErrNeverBlocked
}

// reroute searches the current space and returns the cells of the route found.
func reroute(cfg Options, cells [][]bool, size int) (map[gridgraph.Point]struct{}, error) {
	g, err := gridgraph.NewGridGraph(cells)
	if err != nil {
		return nil, err
	}
	res, err := route.FindOptimal(g, gridgraph.Point{}, exit(size),
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

	set := make(map[gridgraph.Point]struct{}, len(path))
	for _, p := range path {
		set[p] = struct{}{}
	}
	return set, nil
}

// space builds the passability matrix with the first n bytes fallen.
func space(size int, coords []gridgraph.Point, n int) ([][]bool, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, size)
	}
	if n < 0 || n > len(coords) {
		return nil, fmt.Errorf("%w: %d of %d", ErrBadCount, n, len(coords))
	}

	cells := make([][]bool, size)
	for r := range cells {
		cells[r] = make([]bool, size)
		for c := range cells[r] {
			cells[r][c] = true
		}
	}
	for _, p := range coords[:n] {
		if !inSpace(size, p) {
			return nil, fmt.Errorf("%w: %s", ErrOutsideSpace, FormatCoord(p))
		}
		cells[p.Row][p.Col] = false
	}

	return cells, nil
}

func inSpace(size int, p gridgraph.Point) bool {
	return p.Row >= 0 && p.Row < size && p.Col >= 0 && p.Col < size
}

func exit(size int) gridgraph.Point {
	return gridgraph.Point{Row: size - 1, Col: size - 1}
}
