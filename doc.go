// Package gridroute finds minimum-cost routes through grid mazes where
// changing direction is expensive, and works out which cells lie on any of
// the equally cheap routes.
//
// What is in the box?
//
//	• gridgraph/   passability grid, points, directions, maze literal parser
//	• route/       A* search with a turn penalty, path reconstruction, cost replay
//	• optimal/     enumeration of all optimal routes and the cells they cover
//	• shortcut/    wall-ignoring jumps along a route and the steps they save
//	• bytefall/    routing while cells are walled off one by one
//	• config/      HCL run configuration for the command
//	• cmd/gridroute command-line front end
//
// Quick start:
//
//	m, _ := gridgraph.ParseMazeString(literal)
//	cost, cells, err := optimal.Seats(m)
//
// Cost model:
//
//	Every route starts facing Right. A step that keeps the heading costs
//	Step (1); a step in any other direction costs Step+Turn (1+1000).
//	Both are configurable through route.CostModel.
//
// Runnable programs live under examples/.
package gridroute
