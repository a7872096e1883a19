package gridpath_test

import (
	"fmt"

	"github.com/katalvlaran/lvlgrid/gridgraph"
	"github.com/katalvlaran/lvlgrid/gridpath"
)

// ExamplePathfinder_Solve demonstrates a crucible that must travel at least
// two cells before turning and at most three.
func ExamplePathfinder_Solve() {
	costs, _ := gridgraph.ParseCostMap(`
1191
9111
9991
`)
	pf, err := gridpath.New(costs, gridpath.WithMinRun(2), gridpath.WithMaxRun(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := pf.SolvePath(gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 2, Col: 3})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cost:", res.Cost)
	fmt.Println("moves:", res.Moves)
	// Output:
	// cost: 13
	// moves: [E E E S S]
}
