// Package route finds a minimum-cost route across a gridgraph.GridGraph under
// a directional cost model: continuing straight costs Step, changing heading
// costs Step+Turn. The default model is Step=1, Turn=1000, and every route
// starts out heading Right (towards increasing column).
//
// Overview:
//
//   - FindOptimal runs a best-first (A*) search from start to goal with the
//     Manhattan distance (scaled by Step) as heuristic. The heuristic never
//     overestimates because no move costs less than Step.
//   - The open set is an indexed min-heap ordered by f-score, then row, then
//     column, then heading, so runs are reproducible.
//   - Relaxation accepts ties (≤): an equal-cost arrival overwrites the
//     recorded predecessor. The returned cost is the true minimum regardless
//     of tie order; which of several equal routes the predecessor map
//     describes depends on that order.
//   - Reconstruct walks the predecessor map backwards from the goal state and
//     returns the route in start→goal order. It is iterative.
//   - PathCost replays the cost model over any point sequence.
//
// Keying:
//
//   - KeyByState (default): g-scores are kept per (point, heading) pair, which
//     is exact on arbitrary grids.
//   - KeyByPosition: one g-score per point, with the arrival heading read from
//     the recorded predecessor. This mirrors the simpler formulation that is
//     only exact where corridors force the arrival direction; it is kept for
//     comparison runs.
//
// Complexity:
//
//   - Time:  O(S log S), S = 4×W×H states under KeyByState.
//   - Space: O(S) for g-scores, predecessors and the heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:          grid pointer is nil.
//   - ErrOutOfBounds:      start or goal lies outside the grid.
//   - ErrBlockedEndpoint:  start or goal is a wall.
//   - ErrBadCostModel:     Step < 1, Turn < 0, or prices large enough to
//     overflow an int64 score on the given grid.
//   - ErrNoPath:           the open set ran dry. This is a legitimate outcome,
//     not a failure of the search; callers test for it with errors.Is.
//   - ErrBrokenChain:      a predecessor map did not lead back to the start.
//     This is an internal-consistency violation.
//
// Thread safety:
//
//   - FindOptimal only reads the grid. It is not safe to run while another
//     goroutine holds a cell blocked through GridGraph.WithBlocked.
package route
