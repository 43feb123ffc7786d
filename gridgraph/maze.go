package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Maze symbols.
const (
	SymbolWall  = '#'
	SymbolFloor = '.'
	SymbolStart = 'S'
	SymbolGoal  = 'E'
)

// Maze is a parsed maze literal: the passability grid plus its two named
// points. Start and Goal are always passable.
type Maze struct {
	Grid  *GridGraph
	Start Point
	Goal  Point
}

// ParseMazeString parses a maze literal held in a string.
func ParseMazeString(s string) (*Maze, error) {
	return ParseMaze(strings.NewReader(s))
}

// ParseMaze reads a maze literal, one row per line. Blank lines are skipped.
//
// Behavior:
//  1. '#' is a wall, '.' floor, 'S' the start and 'E' the goal (both floor).
//  2. Any other symbol fails with ErrUnknownSymbol, wrapped with its position.
//  3. Exactly one 'S' and one 'E' are required (ErrMissingStart,
//     ErrMissingGoal, ErrDuplicateMarker).
//  4. All rows must have equal width (ErrNonRectangular).
//
// Complexity: O(W×H).
func ParseMaze(r io.Reader) (*Maze, error) {
	var (
		rows                [][]bool
		start, goal         Point
		haveStart, haveGoal bool
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		row := make([]bool, 0, len(line))
		rowIdx := len(rows)
		for col, ch := range []rune(line) {
			switch ch {
			case SymbolWall:
				row = append(row, false)
			case SymbolFloor:
				row = append(row, true)
			case SymbolStart:
				if haveStart {
					return nil, fmt.Errorf("%w: second %q at (%d,%d)", ErrDuplicateMarker, ch, rowIdx, col)
				}
				start, haveStart = Point{Row: rowIdx, Col: col}, true
				row = append(row, true)
			case SymbolGoal:
				if haveGoal {
					return nil, fmt.Errorf("%w: second %q at (%d,%d)", ErrDuplicateMarker, ch, rowIdx, col)
				}
				goal, haveGoal = Point{Row: rowIdx, Col: col}, true
				row = append(row, true)
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownSymbol, ch, rowIdx, col)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: reading maze: %w", err)
	}

	gg, err := NewGridGraph(rows)
	if err != nil {
		return nil, err
	}
	if !haveStart {
		return nil, ErrMissingStart
	}
	if !haveGoal {
		return nil, ErrMissingGoal
	}

	return &Maze{Grid: gg, Start: start, Goal: goal}, nil
}

// String renders the maze back into its literal form.
func (m *Maze) String() string {
	var sb strings.Builder
	sb.Grow((m.Grid.Width + 1) * m.Grid.Height)
	for r := 0; r < m.Grid.Height; r++ {
		for c := 0; c < m.Grid.Width; c++ {
			p := Point{Row: r, Col: c}
			switch {
			case p == m.Start:
				sb.WriteByte(SymbolStart)
			case p == m.Goal:
				sb.WriteByte(SymbolGoal)
			case m.Grid.IsPassable(p):
				sb.WriteByte(SymbolFloor)
			default:
				sb.WriteByte(SymbolWall)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
