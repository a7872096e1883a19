// Package direction defines the four orthogonal headings used by every grid
// algorithm in lvlgrid, together with their opposites, perpendiculars and
// mirror reflections.
//
// Directions are expressed in (row, column) space: North decreases the row,
// East increases the column.
//
// Iteration order is fixed by All: North, East, South, West (clockwise).
package direction

import (
	"errors"
	"fmt"
)

// Sentinel errors for direction parsing.
var (
	// ErrUnknownLetter is returned when a letter does not name a direction.
	ErrUnknownLetter = errors.New("direction: unknown direction letter")

	// ErrUnknownHexDigit is returned when a hex digit is outside 0..3.
	ErrUnknownHexDigit = errors.New("direction: unknown direction hex digit")

	// ErrUnknownMirror is returned by Reflect for anything but '/' and '\'.
	ErrUnknownMirror = errors.New("direction: unknown mirror")
)

// Direction is one of the four unit moves on a grid.
// The zero value None means "no heading yet".
type Direction uint8

const (
	// None is the heading of a synthetic start state.
	None Direction = iota
	// North moves one row up.
	North
	// East moves one column right.
	East
	// South moves one row down.
	South
	// West moves one column left.
	West
)

// All lists the real directions in their fixed iteration order.
var All = [4]Direction{North, East, South, West}

// deltas is indexed by Direction.
var deltas = [...][2]int{
	None:  {0, 0},
	North: {-1, 0},
	East:  {0, 1},
	South: {1, 0},
	West:  {0, -1},
}

// Delta returns the (row, column) offset of a single step.
func (d Direction) Delta() (dr, dc int) {
	if int(d) >= len(deltas) {
		return 0, 0
	}
	return deltas[d][0], deltas[d][1]
}

// Opposite returns the reverse heading. Opposite(None) is None.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return None
}

// Perpendicular returns the two headings reachable by a quarter turn,
// counter-clockwise first.
func (d Direction) Perpendicular() [2]Direction {
	switch d {
	case North, South:
		return [2]Direction{West, East}
	case East, West:
		return [2]Direction{North, South}
	}
	return [2]Direction{None, None}
}

// Valid reports whether d is one of the four real directions.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// Reflect returns the heading after hitting a mirror.
// '/' turns North↔East and South↔West; '\' turns North↔West and South↔East.
func (d Direction) Reflect(mirror byte) (Direction, error) {
	switch mirror {
	case '/':
		switch d {
		case North:
			return East, nil
		case East:
			return North, nil
		case South:
			return West, nil
		case West:
			return South, nil
		}
	case '\\':
		switch d {
		case North:
			return West, nil
		case West:
			return North, nil
		case South:
			return East, nil
		case East:
			return South, nil
		}
	default:
		return None, fmt.Errorf("%w: %q", ErrUnknownMirror, mirror)
	}
	return None, nil
}

// String returns the single-letter compass name.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "-"
}

// FromLetter parses U/D/L/R or N/S/E/W (upper case).
func FromLetter(r rune) (Direction, error) {
	switch r {
	case 'U', 'N':
		return North, nil
	case 'D', 'S':
		return South, nil
	case 'L', 'W':
		return West, nil
	case 'R', 'E':
		return East, nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownLetter, r)
}

// FromHexDigit parses the dig-plan colour encoding: 0=R, 1=D, 2=L, 3=U.
func FromHexDigit(r rune) (Direction, error) {
	switch r {
	case '0':
		return East, nil
	case '1':
		return South, nil
	case '2':
		return West, nil
	case '3':
		return North, nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownHexDigit, r)
}
