package gridgraph

import "fmt"

// Point is a (row, column) cell coordinate. Row grows downwards and Col grows
// to the right.
type Point struct {
	Row, Col int
}

// Add returns p shifted by one step in direction d.
func (p Point) Add(d Direction) Point {
	dr, dc := d.Delta()
	return Point{Row: p.Row + dr, Col: p.Col + dc}
}

// Less orders points row-major. Used wherever a deterministic order is needed.
func (p Point) Less(q Point) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// String renders the point as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is one of the four orthogonal unit moves.
type Direction int

const (
	// Up decreases Row.
	Up Direction = iota
	// Down increases Row.
	Down
	// Left decreases Col.
	Left
	// Right increases Col. It is the implicit initial heading of every route.
	Right
)

var directions = [4]Direction{Up, Right, Down, Left}

// Directions returns the four directions in the order neighbours are
// reported. The result is a copy.
func Directions() [4]Direction {
	return directions
}

// Delta returns the (row, col) offset of a single step in direction d.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	panic(fmt.Sprintf("gridgraph: invalid direction %d", int(d)))
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// DirectionBetween returns the direction of the unit step from a to b.
// Returns ErrNotAdjacent if a and b are not orthogonal neighbours.
func DirectionBetween(a, b Point) (Direction, error) {
	switch (Point{Row: b.Row - a.Row, Col: b.Col - a.Col}) {
	case Point{Row: -1, Col: 0}:
		return Up, nil
	case Point{Row: 1, Col: 0}:
		return Down, nil
	case Point{Row: 0, Col: -1}:
		return Left, nil
	case Point{Row: 0, Col: 1}:
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %v -> %v", ErrNotAdjacent, a, b)
}
