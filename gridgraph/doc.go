// Package gridgraph treats a rectangular maze of passable and blocked cells
// as an implicit 4-connected graph.
//
// What:
//
//   - GridGraph wraps a [][]bool passability matrix (true = floor).
//   - Answers adjacency queries: InBounds, IsPassable, Neighbors, Degree.
//   - Exposes exactly one mutation, WithBlocked, which blocks a single cell
//     for the duration of a callback and always restores it afterwards.
//   - ParseMaze turns a maze literal ('#' wall, '.' floor, 'S' start,
//     'E' goal) into a Maze holding the grid and both endpoints.
//
// Why:
//
//   - Route searches in package route read the grid through these queries only.
//   - Package optimal re-routes around branch points by blocking one cell at a
//     time; WithBlocked makes that a scoped operation.
//
// Complexity:
//
//   - NewGridGraph, Clone: O(W×H) time and memory.
//   - InBounds, IsPassable, Neighbors, Degree: O(1).
//   - ParseMaze: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a point lies outside the grid.
//   - ErrAlreadyBlocked: WithBlocked was asked to block a wall.
//   - ErrUnknownSymbol, ErrMissingStart, ErrMissingGoal, ErrDuplicateMarker:
//     malformed maze literal. These are input-contract violations and are
//     never returned by a search.
//
// Concurrency:
//
//   - Queries are safe for concurrent use as long as no WithBlocked call is in
//     flight. Callers that explore branches in parallel must serialise the
//     whole block/search/restore sequence (package optimal does).
package gridgraph
