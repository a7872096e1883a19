package gridpath

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlgrid/direction"
	"github.com/katalvlaran/lvlgrid/gridgraph"
)

// Sentinel errors returned by the pathfinder.
var (
	// ErrInvalidConfiguration indicates a nil cost map or bad run limits.
	ErrInvalidConfiguration = errors.New("gridpath: invalid configuration")

	// ErrOutOfBounds indicates that start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("gridpath: cell out of bounds")

	// ErrUnreachable indicates that no legal route reaches the goal.
	ErrUnreachable = errors.New("gridpath: goal unreachable")
)

// Options configures run-length limits.
//
// MinRun – moves that must be made in one direction before turning or stopping (≥ 1).
// MaxRun – moves that may be made in one direction before a turn is forced (≥ MinRun).
type Options struct {
	MinRun int
	MaxRun int

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a Pathfinder.
type Option func(*Options)

// DefaultOptions returns MinRun=1, MaxRun=3.
func DefaultOptions() Options {
	return Options{
		MinRun: 1,
		MaxRun: 3,
	}
}

// WithMinRun sets the minimum run length. n < 1 is recorded and reported
// by New as ErrInvalidConfiguration.
func WithMinRun(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MinRun must be at least 1 (got %d)", ErrInvalidConfiguration, n)
			return
		}
		o.MinRun = n
	}
}

// WithMaxRun sets the maximum run length. It is checked against MinRun in New.
func WithMaxRun(n int) Option {
	return func(o *Options) {
		o.MaxRun = n
	}
}

// Result is the outcome of SolvePath.
//
// Path holds every cell visited from start to goal inclusive; Moves holds the
// heading of each step, so len(Moves) == len(Path)-1.
type Result struct {
	Cost  int
	Path  []gridgraph.Cell
	Moves []direction.Direction
}
