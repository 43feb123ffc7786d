// Package route_test provides examples demonstrating the turn-penalty search.
// Each example is runnable via “go test -run Example”.
package route_test

import (
	"fmt"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/route"
)

// ExampleFindOptimal routes through a bent corridor. Leaving the start upwards
// and then turning right are both turns (1001 each); the final step is straight.
func ExampleFindOptimal() {
	m, _ := gridgraph.ParseMazeString(`
#####
#..E#
#S###
#####
`)
	res, err := route.FindOptimal(m.Grid, m.Start, m.Goal)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.Path()
	fmt.Println("cost:", res.Cost)
	fmt.Println("path:", path)
	// Output:
	// cost: 2003
	// path: [(2,1) (1,1) (1,2) (1,3)]
}

// ExamplePathCost replays the cost model over a hand-written route.
func ExamplePathCost() {
	path := []gridgraph.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}}
	cost, _ := route.PathCost(path, route.DefaultCostModel(), gridgraph.Right)
	fmt.Println(cost)
	// Output: 1003
}
