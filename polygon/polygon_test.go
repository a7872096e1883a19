package polygon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgrid/direction"
	"github.com/katalvlaran/lvlgrid/gridgraph"
	"github.com/katalvlaran/lvlgrid/polygon"
)

const digPlan = `
R 6 (#70c710)
D 5 (#0dc571)
L 2 (#5713f0)
D 2 (#d2c081)
R 2 (#59c680)
D 2 (#411b91)
L 5 (#8ceee2)
U 2 (#caa173)
L 1 (#1b58a2)
U 2 (#caa171)
R 2 (#7807d2)
U 3 (#a77fa3)
L 2 (#015232)
U 2 (#7a21e3)
`

func TestDoubledArea_Square(t *testing.T) {
	square := []gridgraph.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 4}, {Row: 4, Col: 4}, {Row: 4, Col: 0}}
	assert.Equal(t, 32, polygon.DoubledArea(square))
	assert.Equal(t, 16, polygon.Perimeter(square))
	assert.Equal(t, 9, polygon.InteriorPoints(32, 16))

	// Orientation must not matter.
	rev := []gridgraph.Cell{square[3], square[2], square[1], square[0]}
	assert.Equal(t, 32, polygon.DoubledArea(rev))

	assert.Equal(t, 0, polygon.DoubledArea(square[:2]))
}

// TestEnclosed walks a 4×4 ring of cells; only the 2×2 centre is inside.
func TestEnclosed(t *testing.T) {
	var loop []gridgraph.Cell
	at := gridgraph.Cell{}
	for _, d := range []direction.Direction{direction.East, direction.South, direction.West, direction.North} {
		for i := 0; i < 3; i++ {
			loop = append(loop, at)
			at = at.Step(d)
		}
	}
	require.Len(t, loop, 12)
	assert.Equal(t, 4, polygon.Enclosed(loop))
	assert.Equal(t, 0, polygon.Enclosed(loop[:3]))
}

func TestLagoonVolume_Sample(t *testing.T) {
	plan, err := polygon.ParseDigPlan(digPlan)
	require.NoError(t, err)
	require.Len(t, plan, 14)
	assert.Equal(t, polygon.Instruction{Dir: direction.East, Steps: 6, Color: "70c710"}, plan[0])
	require.Equal(t, gridgraph.Cell{}, polygon.End(plan))
	vol, err := polygon.LagoonVolume(plan)
	require.NoError(t, err)
	assert.Equal(t, 62, vol)

	decoded, err := polygon.Decode(plan)
	require.NoError(t, err)
	assert.Equal(t, polygon.Instruction{Dir: direction.East, Steps: 461937, Color: "70c710"}, decoded[0])
	require.Equal(t, gridgraph.Cell{}, polygon.End(decoded), "decoded trench must close")
	vol, err = polygon.LagoonVolume(decoded)
	require.NoError(t, err)
	assert.Equal(t, 952408144115, vol)
}

func TestLagoonVolume_OpenTrench(t *testing.T) {
	plan, err := polygon.ParseDigPlan("R 2 (#000020)\nD 2 (#000021)")
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Cell{Row: 2, Col: 2}, polygon.End(plan))

	_, err = polygon.LagoonVolume(plan)
	assert.ErrorIs(t, err, polygon.ErrOpenTrench)
}

func TestParseDigPlan_Errors(t *testing.T) {
	bad := []string{
		"R 6",
		"X 6 (#70c710)",
		"R six (#70c710)",
		"R 0 (#70c710)",
		"R 6 (#70c7)",
	}
	for _, line := range bad {
		_, err := polygon.ParseDigPlan(line)
		assert.ErrorIs(t, err, polygon.ErrMalformedInstruction, line)
	}

	_, err := polygon.Decode([]polygon.Instruction{{Dir: direction.East, Steps: 1, Color: "00000f"}})
	assert.ErrorIs(t, err, polygon.ErrMalformedInstruction)
}
