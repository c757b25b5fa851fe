// Package distance provides options and error definitions for hop-distance
// labelling of a grid.Grid towards its goal.
package distance

import (
	"context"
	"errors"

	"github.com/katalvlaran/mazerunner/grid"
)

// Unreachable is the distance reported for walls, sealed cells, cells outside
// the grid, and cells with no passable route to the goal.
const Unreachable = -1

// Sentinel errors for distance labelling.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("distance: grid is nil")

	// ErrGoalUnset is returned when the grid has no goal yet.
	ErrGoalUnset = errors.New("distance: grid has no goal")

	// ErrUnreachableCell is returned by Solve when the origin has no route to the goal.
	ErrUnreachableCell = errors.New("distance: cell cannot reach the goal")

	// ErrStuckPath is returned by Solve when no strictly improving neighbor
	// exists before the goal. On a carved tree maze this signals a bug.
	ErrStuckPath = errors.New("distance: greedy descent is stuck")
)

// Option configures Compute via functional arguments.
type Option func(*Options)

// Options holds parameters for labelling.
type Options struct {
	// Ctx allows cancellation; checked once per work-list item.
	Ctx context.Context

	// OnRelax is called whenever a cell receives a smaller label.
	OnRelax func(c grid.Cell, dist int)
}

// DefaultOptions returns Options with a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnRelax: func(grid.Cell, int) {},
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

// WithOnRelax registers a callback run on every label improvement.
func WithOnRelax(fn func(c grid.Cell, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// Field holds the hop distance of every cell to the goal of a grid.
// Lookups consult the live grid, so a cell sealed after the last Compute
// already reads as Unreachable. Field is safe for concurrent reads as long as
// nobody seals or recomputes meanwhile.
type Field struct {
	g    *grid.Grid
	goal grid.Cell
	dist []int // row-major
	opts Options

	// Relaxations counts label improvements in the last computation.
	Relaxations int
}
