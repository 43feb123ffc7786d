// Package optimal finds the cells that lie on at least one minimum-cost route
// through a maze, given one such route.
//
// What:
//
//   - Enumerate starts from a seed route of known optimal cost. At every branch
//     point on a route it blocks the next cell, re-routes from the branch point
//     with package route, and splices the result onto the prefix. Spliced
//     routes that still cost the optimum are recorded and explored in turn.
//   - Seats and Solve run the initial search and the enumeration in one call.
//
// Why:
//
//   - A single A* run yields one route. Blocking one cell at a time forces the
//     search onto the next-best alternative at that branch, so every optimal
//     detour reachable by such single-cell deviations is found.
//
// Branch points:
//
//   - A cell is branched on when it has at least MinBranchDegree (default 3)
//     passable neighbours: one to arrive by, one to leave by, one spare.
//   - The first cell of a route has no arrival edge, so with StartBranching
//     (default on) two neighbours are enough there. WithStartBranching(false)
//     restores the plain rule of degree ≥ 3 on every cell, which misses
//     detours that leave a two-way start cell.
//   - The re-route from a branch cell starts with the heading the route had
//     on arrival there, not with the initial Right. A search facing Right
//     prices the first move of the suffix wrongly and can return a suffix
//     that fails the spliced-cost check. This is not configurable.
//
// Concurrency:
//
//   - WithWorkers(n) with n > 1 runs the trials of one pass on an errgroup
//     limited to n goroutines. The grid is mutated during a trial, so the
//     block/search/restore sequence itself is serialised by one mutex;
//     splicing and cost replay run concurrently.
//   - Routes found in a pass are merged in a fixed order after the pass, so
//     results do not depend on the worker count.
//
// Complexity:
//
//   - Each pass costs one route search per branch candidate:
//     O(C × S log S), C = candidates, S = search states.
//
// Errors:
//
//   - ErrNilGrid, ErrEmptySeed, ErrSeedMismatch: invalid input.
//   - ErrBadBranchDegree, ErrBadWorkers, route.ErrBadCostModel: invalid options.
//   - route.ErrNoPath from Seats/Solve when the goal is unreachable.
//   - Context cancellation errors are returned as-is.
package optimal
