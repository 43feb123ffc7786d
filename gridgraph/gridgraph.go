package gridgraph

// GridGraph is a rectangular passability matrix. It is immutable once built,
// apart from the scoped toggle WithBlocked.
// Width and Height define dimensions; cells[row][col] is true for floor.
type GridGraph struct {
	Width, Height int
	cells         [][]bool
}

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// indexed [row][col]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(passable [][]bool) (*GridGraph, error) {
	if len(passable) == 0 || len(passable[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(passable), len(passable[0])
	for _, row := range passable {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]bool, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]bool, w)
		copy(cells[r], passable[r])
	}

	return &GridGraph{Width: w, Height: h, cells: cells}, nil
}

// NewOpenGrid returns a height×width grid with every cell passable.
func NewOpenGrid(height, width int) (*GridGraph, error) {
	if height <= 0 || width <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]bool, height)
	for r := range cells {
		cells[r] = make([]bool, width)
		for c := range cells[r] {
			cells[r][c] = true
		}
	}

	return &GridGraph{Width: width, Height: height, cells: cells}, nil
}

// Dimensions returns (height, width).
func (gg *GridGraph) Dimensions() (height, width int) {
	return gg.Height, gg.Width
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < gg.Height && p.Col >= 0 && p.Col < gg.Width
}

// IsPassable reports whether p is in bounds and a floor cell.
// Complexity: O(1).
func (gg *GridGraph) IsPassable(p Point) bool {
	return gg.InBounds(p) && gg.cells[p.Row][p.Col]
}

// Neighbors returns the passable orthogonal neighbours of p in the fixed
// order Up, Right, Down, Left. At most 4 points are returned.
// Complexity: O(1).
func (gg *GridGraph) Neighbors(p Point) []Point {
	out := make([]Point, 0, 4)
	for _, d := range directions {
		if q := p.Add(d); gg.IsPassable(q) {
			out = append(out, q)
		}
	}

	return out
}

// Degree returns the number of passable orthogonal neighbours of p.
// A cell of degree ≥ 3 is a branch point.
func (gg *GridGraph) Degree(p Point) int {
	n := 0
	for _, d := range directions {
		if gg.IsPassable(p.Add(d)) {
			n++
		}
	}

	return n
}

// Passable returns a deep copy of the passability matrix, [row][col].
func (gg *GridGraph) Passable() [][]bool {
	out := make([][]bool, gg.Height)
	for r := range out {
		out[r] = make([]bool, gg.Width)
		copy(out[r], gg.cells[r])
	}

	return out
}

// Clone returns an independent copy of the grid.
func (gg *GridGraph) Clone() *GridGraph {
	return &GridGraph{Width: gg.Width, Height: gg.Height, cells: gg.Passable()}
}

// WithBlocked marks p as a wall, runs fn, and restores p to floor before
// returning. Restoration happens on every exit path, including a panic in fn.
// The error from fn is returned unchanged.
//
// Returns ErrOutOfBounds if p lies outside the grid and ErrAlreadyBlocked if
// p is already a wall; fn is not called in either case.
//
// WithBlocked is not safe to call concurrently with any other use of gg.
func (gg *GridGraph) WithBlocked(p Point, fn func() error) error {
	if !gg.InBounds(p) {
		return ErrOutOfBounds
	}
	if !gg.cells[p.Row][p.Col] {
		return ErrAlreadyBlocked
	}

	gg.cells[p.Row][p.Col] = false
	defer func() { gg.cells[p.Row][p.Col] = true }()

	return fn()
}
