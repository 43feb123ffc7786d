// Package fixtures holds the maze and coordinate literals shared by the
// package tests, examples and benchmarks.
package fixtures

// SmallMaze has a minimum cost of 7036 and 45 cells on optimal routes.
const SmallMaze = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
`

// LargeMaze has two optimal routes around the central walls: minimum cost
// 11048 and 64 cells on optimal routes.
const LargeMaze = `#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################
`

// Corridor is a single-width corridor without junctions: cost 4, 5 cells.
const Corridor = `#######
#S...E#
#######
`

// RaceTrack is a single-track race course of 84 steps used for shortcut
// discovery.
const RaceTrack = `###############
#...#...#.....#
#.#.#.#.#.###.#
#S#...#.#.#...#
#######.#.#.###
#######.#.#...#
#######.#.###.#
###..E#...#...#
###.#######.###
#...###...#...#
#.#####.#.###.#
#.#...#.#.#...#
#.#.#.#.#.#.###
#...#...#...###
###############
`

// FallingBytes are the x,y coordinates dropped onto a 7×7 memory grid.
// After 12 bytes the shortest corner-to-corner route is 22 steps; byte 6,1
// is the first to cut the corners apart.
const FallingBytes = `5,4
4,2
4,5
3,0
2,1
6,3
2,4
1,5
0,6
3,3
2,6
5,1
1,2
5,5
2,5
6,5
1,4
0,4
6,4
1,1
6,1
1,0
0,5
1,6
2,0
`
