package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: point out of bounds")
	// ErrAlreadyBlocked indicates WithBlocked was asked to block a wall cell.
	ErrAlreadyBlocked = errors.New("gridgraph: cell is already blocked")
	// ErrNotAdjacent indicates two points are not orthogonal neighbours.
	ErrNotAdjacent = errors.New("gridgraph: points are not adjacent")

	// ErrUnknownSymbol indicates a maze literal contains a character other than '#', '.', 'S' or 'E'.
	ErrUnknownSymbol = errors.New("gridgraph: unknown maze symbol")
	// ErrMissingStart indicates a maze literal without an 'S' cell.
	ErrMissingStart = errors.New("gridgraph: maze has no start marker")
	// ErrMissingGoal indicates a maze literal without an 'E' cell.
	ErrMissingGoal = errors.New("gridgraph: maze has no goal marker")
	// ErrDuplicateMarker indicates more than one 'S' or more than one 'E'.
	ErrDuplicateMarker = errors.New("gridgraph: maze marker appears more than once")
)
