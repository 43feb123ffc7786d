// Package shortcut finds wall-ignoring jumps between cells of a single
// route that save steps.
//
// What:
//
//   - Find takes a route and reports every pair of route cells within
//     maxJump (Manhattan) of each other where jumping ahead saves at least
//     minSaved steps.
//   - FindInMaze computes the unit-cost route through a maze first.
//   - Histogram groups the result by steps saved.
//
// Concurrency:
//
//   - WithWorkers(n) splits the route into n contiguous chunks scanned on an
//     errgroup. Each chunk builds its own map; chunks are merged under one
//     mutex. The route and its index are shared read-only.
//
// Errors:
//
//   - ErrEmptyRoute, ErrNotARoute: malformed route.
//   - ErrBadJump, ErrBadMinSaved, ErrBadWorkers: invalid parameters.
//   - route errors from FindInMaze (route.ErrNoPath when unreachable).
package shortcut
