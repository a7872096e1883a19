// Package beam traces light through a grid of mirrors ('/', '\') and
// splitters ('-', '|') and counts the energised cells.
//
// A beam state (cell, heading) is processed at most once, so loops in the
// mirror layout terminate. Splitters hit on their flat side emit two beams
// perpendicular to the incoming one; hit end-on they are transparent.
//
// Complexity: O(W·H·4) time and memory per trace.
package beam

import (
	"fmt"

	"github.com/katalvlaran/lvlgrid/direction"
	"github.com/katalvlaran/lvlgrid/gridgraph"
)

// tracer encapsulates mutable tracing state.
type tracer struct {
	grid      *gridgraph.Grid
	opts      Options
	stack     []Beam
	seen      map[Beam]struct{}
	energized map[gridgraph.Cell]struct{}
}

// Energize traces a beam entering at start and returns how many distinct
// cells it passes through.
// Returns ErrGridNil, ErrStartOutOfBounds or ErrBadHeading for invalid input,
// ErrUnknownTile for unrecognised symbols, ctx.Err() on cancellation, or any
// OnVisit error.
func Energize(g *gridgraph.Grid, start Beam, opts ...Option) (int, error) {
	t, err := newTracer(g, start, opts)
	if err != nil {
		return 0, err
	}
	if err = t.run(start); err != nil {
		return 0, err
	}
	return len(t.energized), nil
}

// MaxEnergized tries every entry along the grid edge, heading inwards, and
// returns the best count.
//
// An entry state already reached by an earlier trace is skipped: everything
// it energises was already counted in that trace.
func MaxEnergized(g *gridgraph.Grid, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGridNil
	}
	covered := make(map[Beam]struct{})
	best := 0
	for _, b := range edgeEntries(g.Bounds) {
		if _, ok := covered[b]; ok {
			continue
		}
		t, err := newTracer(g, b, opts)
		if err != nil {
			return 0, err
		}
		if err = t.run(b); err != nil {
			return 0, err
		}
		if n := len(t.energized); n > best {
			best = n
		}
		for s := range t.seen {
			covered[s] = struct{}{}
		}
	}
	return best, nil
}

func newTracer(g *gridgraph.Grid, start Beam, opts []Option) (*tracer, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if !g.InBounds(start.Cell) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start.Cell)
	}
	if !start.Heading.Valid() {
		return nil, ErrBadHeading
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &tracer{
		grid:      g,
		opts:      o,
		seen:      make(map[Beam]struct{}),
		energized: make(map[gridgraph.Cell]struct{}),
	}, nil
}

// run processes the stack until empty, error, or cancellation.
func (t *tracer) run(start Beam) error {
	t.stack = append(t.stack[:0], start)
	for len(t.stack) > 0 {
		select {
		case <-t.opts.Ctx.Done():
			return t.opts.Ctx.Err()
		default:
		}

		b := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		if !t.grid.InBounds(b.Cell) {
			continue
		}
		if _, ok := t.seen[b]; ok {
			continue
		}
		t.seen[b] = struct{}{}
		t.energized[b.Cell] = struct{}{}
		if err := t.opts.OnVisit(b); err != nil {
			return fmt.Errorf("beam: OnVisit error at %v: %w", b.Cell, err)
		}

		headings, err := Deflect(t.grid.At(b.Cell), b.Heading)
		if err != nil {
			return fmt.Errorf("%w at %v", err, b.Cell)
		}
		for _, h := range headings {
			if h == direction.None {
				continue
			}
			t.stack = append(t.stack, Beam{Cell: b.Cell.Step(h), Heading: h})
		}
	}
	return nil
}

// Deflect returns the outgoing headings for a beam travelling towards h that
// meets tile. Unused slots are direction.None.
func Deflect(tile byte, h direction.Direction) ([2]direction.Direction, error) {
	switch tile {
	case Empty:
		return [2]direction.Direction{h}, nil
	case MirrorSlash, MirrorBack:
		nh, err := h.Reflect(tile)
		return [2]direction.Direction{nh}, err
	case SplitterHoriz:
		if h == direction.East || h == direction.West {
			return [2]direction.Direction{h}, nil
		}
		return [2]direction.Direction{direction.East, direction.West}, nil
	case SplitterVert:
		if h == direction.North || h == direction.South {
			return [2]direction.Direction{h}, nil
		}
		return [2]direction.Direction{direction.North, direction.South}, nil
	}
	return [2]direction.Direction{}, fmt.Errorf("%w: %q", ErrUnknownTile, tile)
}

// edgeEntries lists every inward-facing beam on the grid border.
func edgeEntries(b gridgraph.Bounds) []Beam {
	out := make([]Beam, 0, 2*(b.Rows+b.Cols))
	for r := 0; r < b.Rows; r++ {
		out = append(out,
			Beam{Cell: gridgraph.Cell{Row: r, Col: 0}, Heading: direction.East},
			Beam{Cell: gridgraph.Cell{Row: r, Col: b.Cols - 1}, Heading: direction.West},
		)
	}
	for c := 0; c < b.Cols; c++ {
		out = append(out,
			Beam{Cell: gridgraph.Cell{Row: 0, Col: c}, Heading: direction.South},
			Beam{Cell: gridgraph.Cell{Row: b.Rows - 1, Col: c}, Heading: direction.North},
		)
	}
	return out
}
