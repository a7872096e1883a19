// Package pipes provides tile definitions and error values for tracing the
// single closed loop of pipes that runs through a maze.
package pipes

import (
	"errors"

	"github.com/katalvlaran/lvlgrid/direction"
)

// Tile symbols. Every pipe joins exactly two of its four sides.
const (
	Ground   = '.'
	Start    = 'S'
	Vertical = '|'
	Horiz    = '-'
	BendNE   = 'L'
	BendNW   = 'J'
	BendSW   = '7'
	BendSE   = 'F'
)

// Sentinel errors for maze parsing and loop tracing.
var (
	// ErrUnknownTile is returned for symbols that are neither pipe, ground nor start.
	ErrUnknownTile = errors.New("pipes: unknown tile")

	// ErrNoStart is returned when the maze has no 'S'.
	ErrNoStart = errors.New("pipes: no start tile")

	// ErrManyStarts is returned when the maze has more than one 'S'.
	ErrManyStarts = errors.New("pipes: more than one start tile")

	// ErrStartExits is returned when the start does not connect to exactly two pipes.
	ErrStartExits = errors.New("pipes: start must connect to exactly two pipes")

	// ErrBrokenLoop is returned when the walk from the start runs into a pipe
	// that does not accept it or leaves the grid.
	ErrBrokenLoop = errors.New("pipes: loop is broken")
)

// exits is indexed by tile symbol; ground and unknown symbols have none.
var exits = map[byte][2]direction.Direction{
	Vertical: {direction.North, direction.South},
	Horiz:    {direction.East, direction.West},
	BendNE:   {direction.North, direction.East},
	BendNW:   {direction.North, direction.West},
	BendSW:   {direction.South, direction.West},
	BendSE:   {direction.South, direction.East},
}

// Exits returns the two sides a pipe tile joins, and false for anything
// that is not a pipe (including Start, whose exits depend on its neighbours).
func Exits(tile byte) ([2]direction.Direction, bool) {
	e, ok := exits[tile]
	return e, ok
}

// Connects reports whether tile has an opening on side d.
func Connects(tile byte, d direction.Direction) bool {
	e, ok := exits[tile]
	return ok && (e[0] == d || e[1] == d)
}
