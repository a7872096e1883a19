package gridgraph

import (
	"errors"

	"github.com/katalvlaran/lvlgrid/direction"
)

// Sentinel errors for gridgraph construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeWeight indicates a cell weight below zero.
	ErrNegativeWeight = errors.New("gridgraph: cell weight must be non-negative")
	// ErrInvalidDigit indicates a non-digit character in cost-map text.
	ErrInvalidDigit = errors.New("gridgraph: cost map characters must be digits 0-9")
)

// Cell addresses a single grid position. Row grows southwards, Col eastwards.
type Cell struct {
	Row, Col int
}

// Step returns the neighbouring cell one unit towards d.
// Step(None) returns c unchanged.
func (c Cell) Step(d direction.Direction) Cell {
	dr, dc := d.Delta()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Move returns the cell n units towards d.
func (c Cell) Move(d direction.Direction, n int) Cell {
	dr, dc := d.Delta()
	return Cell{Row: c.Row + n*dr, Col: c.Col + n*dc}
}

// Manhattan returns |Δrow| + |Δcol| between c and o.
func (c Cell) Manhattan(o Cell) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// Bounds holds fixed grid dimensions.
type Bounds struct {
	Rows, Cols int
}

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (b Bounds) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < b.Rows && c.Col >= 0 && c.Col < b.Cols
}

// Size returns Rows×Cols.
func (b Bounds) Size() int {
	return b.Rows * b.Cols
}

// Index maps c to a row-major index: Row*Cols + Col.
// Complexity: O(1).
func (b Bounds) Index(c Cell) int {
	return c.Row*b.Cols + c.Col
}

// CellAt converts a row-major index back to a Cell.
// Complexity: O(1).
func (b Bounds) CellAt(idx int) Cell {
	return Cell{Row: idx / b.Cols, Col: idx % b.Cols}
}

// CostMap is an immutable grid of non-negative traversal weights.
// weights[r][c] is the cost paid for entering Cell{r, c}.
type CostMap struct {
	Bounds
	weights [][]int
}

// Grid is an immutable grid of tile bytes.
type Grid struct {
	Bounds
	tiles [][]byte
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
