package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgrid/direction"
	"github.com/katalvlaran/lvlgrid/gridgraph"
)

//----------------------------------------------------------------------------//
// NewCostMap and ParseCostMap Tests
//----------------------------------------------------------------------------//

// TestNewCostMap_Errors verifies that NewCostMap rejects empty, ragged or negative inputs.
func TestNewCostMap_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
		{"Negative", [][]int{{1, 2}, {3, -4}}, gridgraph.ErrNegativeWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewCostMap(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewCostMap(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewCostMap_DeepCopy ensures later mutation of the input does not leak in.
func TestNewCostMap_DeepCopy(t *testing.T) {
	in := [][]int{{1, 2}, {3, 4}}
	m, err := gridgraph.NewCostMap(in)
	require.NoError(t, err)

	in[1][1] = 9
	assert.Equal(t, 4, m.Weight(gridgraph.Cell{Row: 1, Col: 1}))
}

func TestParseCostMap(t *testing.T) {
	m, err := gridgraph.ParseCostMap("\n241\r\n321\n\n")
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows)
	assert.Equal(t, 3, m.Cols)
	assert.Equal(t, 4, m.Weight(gridgraph.Cell{Row: 0, Col: 1}))
	assert.Equal(t, 1, m.Weight(gridgraph.Cell{Row: 1, Col: 2}))

	_, err = gridgraph.ParseCostMap("12\n3x")
	assert.ErrorIs(t, err, gridgraph.ErrInvalidDigit)

	_, err = gridgraph.ParseCostMap("")
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = gridgraph.ParseCostMap("123\n45")
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)
}

//----------------------------------------------------------------------------//
// Bounds and Cell Tests
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	b := gridgraph.Bounds{Rows: 2, Cols: 3}

	valid := []gridgraph.Cell{{0, 0}, {1, 2}, {1, 1}}
	for _, c := range valid {
		assert.True(t, b.InBounds(c), "InBounds(%v)", c)
	}
	invalid := []gridgraph.Cell{{-1, 0}, {0, 3}, {2, 1}, {1, -1}}
	for _, c := range invalid {
		assert.False(t, b.InBounds(c), "InBounds(%v)", c)
	}
}

func TestIndexRoundTrip(t *testing.T) {
	b := gridgraph.Bounds{Rows: 3, Cols: 4}
	for i := 0; i < b.Size(); i++ {
		assert.Equal(t, i, b.Index(b.CellAt(i)))
	}
	assert.Equal(t, gridgraph.Cell{Row: 2, Col: 1}, b.CellAt(9))
}

func TestCellStep(t *testing.T) {
	c := gridgraph.Cell{Row: 2, Col: 2}
	assert.Equal(t, gridgraph.Cell{Row: 1, Col: 2}, c.Step(direction.North))
	assert.Equal(t, gridgraph.Cell{Row: 2, Col: 3}, c.Step(direction.East))
	assert.Equal(t, c, c.Step(direction.None))
	assert.Equal(t, gridgraph.Cell{Row: 2, Col: -3}, c.Move(direction.West, 5))
	assert.Equal(t, 7, c.Manhattan(gridgraph.Cell{Row: -1, Col: 6}))
}

//----------------------------------------------------------------------------//
// Grid Tests
//----------------------------------------------------------------------------//

func TestParseGrid(t *testing.T) {
	g, err := gridgraph.ParseGrid(".|.\n/.\\")
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Bounds{Rows: 2, Cols: 3}, g.Bounds)
	assert.Equal(t, byte('|'), g.At(gridgraph.Cell{Row: 0, Col: 1}))
	assert.Equal(t, byte('\\'), g.At(gridgraph.Cell{Row: 1, Col: 2}))

	tiles := g.Tiles()
	tiles[0][0] = '#'
	assert.Equal(t, byte('.'), g.At(gridgraph.Cell{}), "Tiles must return a copy")

	_, err = gridgraph.ParseGrid("..\n.")
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)
	_, err = gridgraph.ParseGrid("\n\n")
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}
