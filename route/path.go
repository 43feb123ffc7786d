package route

import (
	"fmt"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// Reconstruct walks prev backwards from end until it reaches a state with no
// predecessor, and returns the visited points in forward order (that first
// state's point comes first, end's point last).
//
// The walk is iterative. A chain longer than len(prev) can only be a cycle
// and is reported as ErrBrokenChain.
//
// Complexity: O(path length).
func Reconstruct(prev map[State]State, end State) ([]gridgraph.Point, error) {
	path := []gridgraph.Point{end.Point}
	cur := end
	for {
		p, ok := prev[cur]
		if !ok {
			break
		}
		if len(path) > len(prev) {
			return nil, fmt.Errorf("%w: cycle through %v", ErrBrokenChain, p.Point)
		}
		path = append(path, p.Point)
		cur = p
	}

	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// PathCost replays model over path, starting with the given heading, and
// returns the total cost. A path of zero or one point costs 0.
// Returns an error wrapping gridgraph.ErrNotAdjacent if two consecutive
// points are not orthogonal neighbours.
func PathCost(path []gridgraph.Point, model CostModel, heading gridgraph.Direction) (int64, error) {
	var total int64
	for i := 1; i < len(path); i++ {
		d, err := gridgraph.DirectionBetween(path[i-1], path[i])
		if err != nil {
			return 0, fmt.Errorf("route: step %d: %w", i, err)
		}
		total += model.Move(heading, d)
		heading = d
	}

	return total, nil
}

// ArrivalHeading returns the heading on arrival at path[i]: the direction of
// the step path[i-1]→path[i], or initial for i == 0.
func ArrivalHeading(path []gridgraph.Point, i int, initial gridgraph.Direction) (gridgraph.Direction, error) {
	if i == 0 {
		return initial, nil
	}
	return gridgraph.DirectionBetween(path[i-1], path[i])
}
