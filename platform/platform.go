// Package platform simulates round rocks rolling across a tilted platform
// of fixed cube rocks, and the load they put on its north edge.
//
// A Platform is a value: Tilt and SpinCycle return a new Platform and never
// modify the receiver, so states can be retained and hashed by package cycle.
package platform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlgrid/cycle"
	"github.com/katalvlaran/lvlgrid/direction"
	"github.com/katalvlaran/lvlgrid/gridgraph"
)

// Tile symbols.
const (
	Empty = '.'
	Cube  = '#'
	Round = 'O'
)

// ErrUnknownTile is returned by Parse for symbols other than '.', '#', 'O'.
var ErrUnknownTile = errors.New("platform: unknown tile")

// spinOrder is the tilt sequence of one spin cycle.
var spinOrder = [4]direction.Direction{direction.North, direction.West, direction.South, direction.East}

// Platform is a rectangular arrangement of rocks.
type Platform struct {
	gridgraph.Bounds
	cells []byte // row-major
}

// Parse reads a platform, one row per line.
func Parse(text string) (Platform, error) {
	g, err := gridgraph.ParseGrid(text)
	if err != nil {
		return Platform{}, err
	}
	p := Platform{Bounds: g.Bounds, cells: make([]byte, 0, g.Size())}
	for r, row := range g.Tiles() {
		for c, ch := range row {
			switch ch {
			case Empty, Cube, Round:
			default:
				return Platform{}, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownTile, ch, r, c)
			}
			p.cells = append(p.cells, ch)
		}
	}
	return p, nil
}

// At returns the tile at c.
func (p Platform) At(c gridgraph.Cell) byte {
	return p.cells[p.Index(c)]
}

// Tilt rolls every round rock towards d until it meets the edge, a cube
// rock or another round rock.
func (p Platform) Tilt(d direction.Direction) Platform {
	out := Platform{Bounds: p.Bounds, cells: append([]byte(nil), p.cells...)}

	// A lane is one column (for north/south) or one row (for east/west).
	// Position 0 of every lane is the edge the rocks roll towards.
	lanes, length := p.Cols, p.Rows
	if d == direction.East || d == direction.West {
		lanes, length = p.Rows, p.Cols
	}
	at := func(lane, pos int) int {
		switch d {
		case direction.North:
			return p.Index(gridgraph.Cell{Row: pos, Col: lane})
		case direction.South:
			return p.Index(gridgraph.Cell{Row: p.Rows - 1 - pos, Col: lane})
		case direction.West:
			return p.Index(gridgraph.Cell{Row: lane, Col: pos})
		default:
			return p.Index(gridgraph.Cell{Row: lane, Col: p.Cols - 1 - pos})
		}
	}

	for lane := 0; lane < lanes; lane++ {
		free := 0
		for pos := 0; pos < length; pos++ {
			switch out.cells[at(lane, pos)] {
			case Cube:
				free = pos + 1
			case Round:
				if free != pos {
					out.cells[at(lane, free)] = Round
					out.cells[at(lane, pos)] = Empty
				}
				free++
			}
		}
	}
	return out
}

// SpinCycle tilts north, west, south and east in turn.
func (p Platform) SpinCycle() Platform {
	for _, d := range spinOrder {
		p = p.Tilt(d)
	}
	return p
}

// NorthLoad sums, over all round rocks, the distance from the rock's row to
// just past the south edge.
func (p Platform) NorthLoad() int {
	load := 0
	for i, ch := range p.cells {
		if ch == Round {
			load += p.Rows - p.CellAt(i).Row
		}
	}
	return load
}

// LoadAfterSpins returns the north load after n spin cycles.
func (p Platform) LoadAfterSpins(n int) int {
	return cycle.Run(p, Platform.SpinCycle, n).NorthLoad()
}

// String renders the platform, one row per line.
func (p Platform) String() string {
	var b strings.Builder
	for r := 0; r < p.Rows; r++ {
		b.Write(p.cells[r*p.Cols : (r+1)*p.Cols])
		if r < p.Rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
