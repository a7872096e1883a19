// Package beam provides tunable options and error definitions
// for tracing light beams through a grid of mirrors and splitters.
package beam

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvlgrid/direction"
	"github.com/katalvlaran/lvlgrid/gridgraph"
)

// Tile symbols understood by the tracer.
const (
	Empty         = '.'
	MirrorSlash   = '/'
	MirrorBack    = '\\'
	SplitterHoriz = '-'
	SplitterVert  = '|'
)

// Sentinel errors for beam tracing.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("beam: grid is nil")

	// ErrStartOutOfBounds is returned when the entry cell is outside the grid.
	ErrStartOutOfBounds = errors.New("beam: start cell out of bounds")

	// ErrBadHeading is returned when the entry heading is direction.None.
	ErrBadHeading = errors.New("beam: start heading must be a real direction")

	// ErrUnknownTile is returned when the beam reaches an unrecognised symbol.
	ErrUnknownTile = errors.New("beam: unknown tile")
)

// Beam is a beam front occupying Cell and travelling towards Heading.
type Beam struct {
	Cell    gridgraph.Cell
	Heading direction.Direction
}

// Option configures tracing via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customise tracing.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called once per distinct beam state. If it returns an
	// error, tracing aborts and propagates that error.
	OnVisit func(b Beam) error
}

// DefaultOptions returns Options with context.Background and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(Beam) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on every new beam state.
func WithOnVisit(fn func(b Beam) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
