// Package polygon measures lattice polygons: shoelace area, Pick's theorem
// for interior lattice points, and the dig-plan trenches built from runs of
// orthogonal moves.
//
// All arithmetic is integer. Areas are kept doubled internally so that
// half-integer areas never round.
package polygon

import "github.com/katalvlaran/lvlgrid/gridgraph"

// DoubledArea returns twice the absolute shoelace area of the closed polygon
// through vertices (the last vertex joins back to the first).
// Complexity: O(n).
func DoubledArea(vertices []gridgraph.Cell) int {
	n := len(vertices)
	if n < 3 {
		return 0
	}
	sum := 0
	for i, v := range vertices {
		w := vertices[(i+1)%n]
		sum += v.Col*w.Row - w.Col*v.Row
	}
	if sum < 0 {
		sum = -sum
	}
	return sum
}

// Perimeter returns the lattice length of the closed rectilinear polygon
// through vertices, i.e. the number of boundary lattice points.
func Perimeter(vertices []gridgraph.Cell) int {
	n := len(vertices)
	total := 0
	for i, v := range vertices {
		total += v.Manhattan(vertices[(i+1)%n])
	}
	return total
}

// InteriorPoints applies Pick's theorem, A = I + B/2 - 1, to count lattice
// points strictly inside a polygon with doubled area doubledArea and
// boundary lattice points boundary.
func InteriorPoints(doubledArea, boundary int) int {
	return (doubledArea - boundary + 2) / 2
}

// Enclosed counts the cells strictly inside a closed loop of adjacent cells.
// loop lists every cell of the loop once, in walking order.
func Enclosed(loop []gridgraph.Cell) int {
	if len(loop) < 4 {
		return 0
	}
	return InteriorPoints(DoubledArea(loop), len(loop))
}
