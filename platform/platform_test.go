package platform_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgrid/direction"
	"github.com/katalvlaran/lvlgrid/gridgraph"
	"github.com/katalvlaran/lvlgrid/platform"
)

const dish = `
O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....
`

const afterOneSpin = `
.....#....
....#...O#
...OO##...
.OO#......
.....OOO#.
.O#...O#.#
....O#....
......OOOO
#...O###..
#..OO#....
`

func mustParse(t *testing.T, text string) platform.Platform {
	t.Helper()
	p, err := platform.Parse(text)
	require.NoError(t, err)
	return p
}

func TestTiltNorth_Sample(t *testing.T) {
	p := mustParse(t, dish)
	tilted := p.Tilt(direction.North)
	assert.Equal(t, 136, tilted.NorthLoad())

	// The receiver is unchanged.
	assert.Equal(t, strings.TrimSpace(dish), p.String())
	assert.Equal(t, byte(platform.Round), tilted.At(gridgraph.Cell{Row: 0, Col: 2}))
}

func TestSpinCycle_Sample(t *testing.T) {
	p := mustParse(t, dish).SpinCycle()
	assert.Equal(t, strings.TrimSpace(afterOneSpin), p.String())
}

func TestLoadAfterSpins_Sample(t *testing.T) {
	p := mustParse(t, dish)
	assert.Equal(t, 64, p.LoadAfterSpins(1_000_000_000))
}

// TestLoadAfterSpins_Direct compares the projected answer with plain simulation.
func TestLoadAfterSpins_Direct(t *testing.T) {
	p := mustParse(t, dish)
	direct := p
	for n := 1; n <= 40; n++ {
		direct = direct.SpinCycle()
		assert.Equal(t, direct.NorthLoad(), p.LoadAfterSpins(n), "after %d spins", n)
	}
}

func TestTilt_AllDirections(t *testing.T) {
	p := mustParse(t, "O.#.O\n.O..#")
	assert.Equal(t, "O.#O.\nO...#", p.Tilt(direction.West).String())
	assert.Equal(t, ".O#.O\n...O#", p.Tilt(direction.East).String())
	assert.Equal(t, "OO#.O\n....#", p.Tilt(direction.North).String())
	assert.Equal(t, "..#.O\nOO..#", p.Tilt(direction.South).String())
}

func TestParse_Errors(t *testing.T) {
	_, err := platform.Parse("O.x")
	assert.ErrorIs(t, err, platform.ErrUnknownTile)

	_, err = platform.Parse("O.\n.")
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)
}
