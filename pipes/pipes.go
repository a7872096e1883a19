package pipes

import (
	"fmt"

	"github.com/katalvlaran/lvlgrid/direction"
	"github.com/katalvlaran/lvlgrid/gridgraph"
	"github.com/katalvlaran/lvlgrid/polygon"
)

// Maze is a validated pipe grid with a located start.
type Maze struct {
	grid       *gridgraph.Grid
	start      gridgraph.Cell
	startExits [2]direction.Direction
}

// Parse reads a maze, checks every symbol, finds the unique start and
// works out which two neighbours it connects to.
//
// Errors: gridgraph.ErrEmptyGrid, gridgraph.ErrNonRectangular,
// ErrUnknownTile, ErrNoStart, ErrManyStarts, ErrStartExits.
func Parse(text string) (*Maze, error) {
	g, err := gridgraph.ParseGrid(text)
	if err != nil {
		return nil, err
	}

	m := &Maze{grid: g}
	found := false
	for idx := 0; idx < g.Size(); idx++ {
		c := g.CellAt(idx)
		switch tile := g.At(c); {
		case tile == Start:
			if found {
				return nil, fmt.Errorf("%w: %v and %v", ErrManyStarts, m.start, c)
			}
			m.start, found = c, true
		case tile == Ground:
		default:
			if _, ok := Exits(tile); !ok {
				return nil, fmt.Errorf("%w: %q at %v", ErrUnknownTile, tile, c)
			}
		}
	}
	if !found {
		return nil, ErrNoStart
	}

	// The start's shape is hidden; a side is open when the neighbour there
	// has a pipe end pointing back at it.
	n := 0
	for _, d := range direction.All {
		next := m.start.Step(d)
		if !g.InBounds(next) || !Connects(g.At(next), d.Opposite()) {
			continue
		}
		if n == 2 {
			return nil, fmt.Errorf("%w: more than two at %v", ErrStartExits, m.start)
		}
		m.startExits[n] = d
		n++
	}
	if n != 2 {
		return nil, fmt.Errorf("%w: %d at %v", ErrStartExits, n, m.start)
	}

	return m, nil
}

// Start returns the location of 'S'.
func (m *Maze) Start() gridgraph.Cell { return m.start }

// StartExits returns the two sides of the start tile that join the loop,
// in direction.All order.
func (m *Maze) StartExits() [2]direction.Direction { return m.startExits }

// Loop walks from the start out of its first exit until it returns,
// and lists every loop cell once in walking order, start first.
// Complexity: O(L) for a loop of L cells.
func (m *Maze) Loop() ([]gridgraph.Cell, error) {
	loop := []gridgraph.Cell{m.start}
	heading := m.startExits[0]
	at := m.start.Step(heading)

	for at != m.start {
		// 1) The walk may never leave the grid or exceed its size.
		if !m.grid.InBounds(at) || len(loop) > m.grid.Size() {
			return nil, fmt.Errorf("%w: walked off at %v", ErrBrokenLoop, at)
		}
		// 2) The pipe here must accept us from the side we came in.
		e, ok := Exits(m.grid.At(at))
		from := heading.Opposite()
		if !ok || (e[0] != from && e[1] != from) {
			return nil, fmt.Errorf("%w: %q at %v does not connect %v", ErrBrokenLoop, m.grid.At(at), at, from)
		}
		loop = append(loop, at)

		// 3) Leave through the other end.
		heading = e[0]
		if heading == from {
			heading = e[1]
		}
		at = at.Step(heading)
	}

	return loop, nil
}

// Farthest returns how many steps along the loop the point farthest from
// the start lies, in either direction.
func (m *Maze) Farthest() (int, error) {
	loop, err := m.Loop()
	if err != nil {
		return 0, err
	}
	return len(loop) / 2, nil
}

// Enclosed returns how many tiles lie strictly inside the loop.
func (m *Maze) Enclosed() (int, error) {
	loop, err := m.Loop()
	if err != nil {
		return 0, err
	}
	return polygon.Enclosed(loop), nil
}
