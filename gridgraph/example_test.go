// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/lvlgrid/direction"
	"github.com/katalvlaran/lvlgrid/gridgraph"
)

// ExampleParseCostMap parses a digit grid and walks one step east.
func ExampleParseCostMap() {
	m, _ := gridgraph.ParseCostMap("241\n321")
	c := gridgraph.Cell{Row: 1, Col: 0}
	next := c.Step(direction.East)
	fmt.Println(m.Rows, m.Cols, m.InBounds(next), m.Weight(next))
	// Output: 2 3 true 2
}
