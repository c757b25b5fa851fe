// Package maze carves a spanning-tree maze into a grid.Grid using randomized
// depth-first search with an explicit backtracking stack.
//
// A wall cell is eligible for carving when it has exactly one passable
// neighbor among its 8: the cell on top of the stack. Opening it therefore
// adds one edge to the passable graph and never closes a loop, so the result
// is a tree with a unique path between any two open cells.
package maze

import (
	"fmt"

	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/rng"
)

// carver encapsulates mutable generation state.
type carver struct {
	g     *grid.Grid
	opts  Options
	stack []grid.Cell
	res   *Result
}

// Generate carves g in place, starting from g.Start().
// Returns ErrGridNil, ErrAlreadyCarved, the context error on cancellation,
// or a wrapped OnCarve error.
// Complexity: O(size²·8·8) time (each cell is pushed at most once and tries
// eight directions, each eligibility check scans eight neighbors), O(size²) memory.
func Generate(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.Rand = rng.OrDefault(o.Rand)

	if g.OpenCount()+g.SealedCount() > 1 {
		return nil, ErrAlreadyCarved
	}

	n := g.Size() * g.Size()
	c := &carver{
		g:     g,
		opts:  o,
		stack: make([]grid.Cell, 0, n),
		res:   &Result{Order: make([]grid.Cell, 0, n)},
	}
	c.stack = append(c.stack, g.Start())

	return c.res, c.loop()
}

// loop extends the top of the stack until the stack empties.
func (c *carver) loop() error {
	for len(c.stack) > 0 {
		select {
		case <-c.opts.Ctx.Done():
			return c.opts.Ctx.Err()
		default:
		}

		top := c.stack[len(c.stack)-1]
		next, ok := c.pick(top)
		if !ok {
			c.stack = c.stack[:len(c.stack)-1]
			c.res.Backtracks++
			continue
		}
		if err := c.g.Carve(next); err != nil {
			return err
		}
		c.res.Carved++
		c.res.Order = append(c.res.Order, next)
		c.stack = append(c.stack, next)
		if err := c.opts.OnCarve(next); err != nil {
			return fmt.Errorf("maze: OnCarve error at %v: %w", next, err)
		}
	}
	return nil
}

// pick tries the 8 directions from cur in random order and returns the
// first eligible neighbor.
func (c *carver) pick(cur grid.Cell) (grid.Cell, bool) {
	for _, k := range rng.Perm(grid.NumDirections, c.opts.Rand) {
		n := cur.Step(grid.Direction(k))
		if c.eligible(n) {
			return n, true
		}
	}
	return grid.Cell{}, false
}

// eligible reports whether n is an in-bounds wall with exactly one passable neighbor.
func (c *carver) eligible(n grid.Cell) bool {
	if !c.g.InBounds(n) || c.g.State(n) != grid.Wall {
		return false
	}
	return c.g.PassableNeighbors(n) == 1
}

// VerifyTree checks that every passable cell is reachable from the start and
// that the passable cells form a tree under 8-connectivity.
// Returns ErrGridNil, ErrDisconnected or ErrCycle.
// Complexity: O(size²·8).
func VerifyTree(g *grid.Grid) error {
	if g == nil {
		return ErrGridNil
	}
	open := g.OpenCount()
	reached := len(g.Reachable(g.Start()))
	if reached != open {
		return fmt.Errorf("%w: reached %d of %d cells", ErrDisconnected, reached, open)
	}
	if edges := g.PassableEdges(); edges != open-1 {
		return fmt.Errorf("%w: %d edges for %d cells", ErrCycle, edges, open)
	}
	return nil
}
