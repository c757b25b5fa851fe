// Package maze defines options and error definitions for randomized
// depth-first carving over a grid.Grid.
package maze

import (
	"context"
	"errors"
	"math/rand"

	"github.com/katalvlaran/mazerunner/grid"
)

// Sentinel errors for maze generation and verification.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("maze: grid is nil")

	// ErrAlreadyCarved is returned when the grid already has open cells
	// other than its start.
	ErrAlreadyCarved = errors.New("maze: grid already carved")

	// ErrDisconnected is returned by VerifyTree when some passable cell
	// cannot be reached from the start.
	ErrDisconnected = errors.New("maze: passable cells are disconnected")

	// ErrCycle is returned by VerifyTree when passable cells form a loop.
	ErrCycle = errors.New("maze: passable cells contain a cycle")
)

// Option configures Generate via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for carving.
type Options struct {
	// Ctx allows cancellation; checked once per stack iteration.
	Ctx context.Context

	// Rand drives the direction order at every step.
	Rand *rand.Rand

	// OnCarve is called right after a cell is opened. Returning an error
	// aborts generation and leaves the grid partially carved.
	OnCarve func(c grid.Cell) error
}

// DefaultOptions returns Options with a background context, the DefaultSeed
// random stream and a no-op carve hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Rand:    nil,
		OnCarve: func(grid.Cell) error { return nil },
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

// WithRand sets the random source for direction shuffling.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithOnCarve registers a hook run after each carve.
func WithOnCarve(fn func(c grid.Cell) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCarve = fn
		}
	}
}

// Result describes a finished carving.
type Result struct {
	// Carved counts cells opened by Generate; the start is not included,
	// so OpenCount() == Carved+1 on success.
	Carved int

	// Order lists the carved cells in carving order.
	Order []grid.Cell

	// Backtracks counts stack pops.
	Backtracks int
}
