package maze_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/maze"
	"github.com/katalvlaran/mazerunner/rng"
)

// carve builds and carves a grid of the given size from seed.
func carve(t *testing.T, size int, seed int64) (*grid.Grid, *maze.Result) {
	t.Helper()
	g, err := grid.New(size, grid.WithRand(rng.Stream(seed, rng.StreamStart)))
	require.NoError(t, err)
	res, err := maze.Generate(g, maze.WithRand(rng.Stream(seed, rng.StreamCarve)))
	require.NoError(t, err)
	return g, res
}

// TestGenerate_Errors verifies that invalid inputs are rejected.
func TestGenerate_Errors(t *testing.T) {
	_, err := maze.Generate(nil)
	assert.ErrorIs(t, err, maze.ErrGridNil)

	g, _ := carve(t, 5, 1)
	_, err = maze.Generate(g)
	assert.ErrorIs(t, err, maze.ErrAlreadyCarved)
}

// TestGenerate_ConnectedTree checks connectivity and the tree property over
// a spread of sizes and seeds.
func TestGenerate_ConnectedTree(t *testing.T) {
	for _, size := range []int{2, 3, 5, 8, 13, 21} {
		for seed := int64(1); seed <= 5; seed++ {
			t.Run(fmt.Sprintf("n=%d/seed=%d", size, seed), func(t *testing.T) {
				g, res := carve(t, size, seed)

				// open cells = carves + 1 (the start)
				assert.Equal(t, res.Carved+1, g.OpenCount())
				assert.Len(t, res.Order, res.Carved)
				// flood fill from start reaches every open cell
				assert.Len(t, g.Reachable(g.Start()), g.OpenCount())
				// edges = nodes - 1 ⇒ unique simple path between any two cells
				assert.Equal(t, g.OpenCount()-1, g.PassableEdges())
				assert.NoError(t, maze.VerifyTree(g))
				// every push is eventually popped
				assert.Equal(t, res.Carved+1, res.Backtracks)
			})
		}
	}
}

// TestGenerate_Deterministic verifies that a fixed seed replays identically.
func TestGenerate_Deterministic(t *testing.T) {
	a, ra := carve(t, 12, 99)
	b, rb := carve(t, 12, 99)
	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, ra.Order, rb.Order)
}

// TestGenerate_NoEligibleNeighborAfterCarving checks that the carving ran to
// exhaustion: no wall cell is left with exactly one passable neighbor.
func TestGenerate_NoEligibleNeighborAfterCarving(t *testing.T) {
	g, _ := carve(t, 10, 4)
	for r := 0; r < g.Size(); r++ {
		for c := 0; c < g.Size(); c++ {
			cell := grid.Cell{Row: r, Col: c}
			if g.State(cell) == grid.Wall {
				assert.NotEqual(t, 1, g.PassableNeighbors(cell), "wall %v is still carvable", cell)
			}
		}
	}
}

// TestGenerate_OnCarve verifies hook invocation and error propagation.
func TestGenerate_OnCarve(t *testing.T) {
	g, err := grid.New(6, grid.WithStart(grid.Cell{Row: 0, Col: 0}))
	require.NoError(t, err)
	var seen []grid.Cell
	res, err := maze.Generate(g, maze.WithRand(rng.FromSeed(2)), maze.WithOnCarve(func(c grid.Cell) error {
		seen = append(seen, c)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, res.Order, seen)

	boom := errors.New("boom")
	g2, err := grid.New(6, grid.WithStart(grid.Cell{Row: 0, Col: 0}))
	require.NoError(t, err)
	_, err = maze.Generate(g2, maze.WithOnCarve(func(grid.Cell) error { return boom }))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, g2.OpenCount(), "aborted after the first carve")
}

// TestGenerate_Cancelled verifies context cancellation.
func TestGenerate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g, err := grid.New(8)
	require.NoError(t, err)
	_, err = maze.Generate(g, maze.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestVerifyTree_Failures covers disconnected and cyclic layouts.
func TestVerifyTree_Failures(t *testing.T) {
	assert.ErrorIs(t, maze.VerifyTree(nil), maze.ErrGridNil)

	island, err := grid.Parse([]string{
		"S.#",
		"###",
		"#..",
	})
	require.NoError(t, err)
	assert.ErrorIs(t, maze.VerifyTree(island), maze.ErrDisconnected)

	loop, err := grid.Parse([]string{
		"S.#",
		"..#",
		"###",
	})
	require.NoError(t, err)
	assert.ErrorIs(t, maze.VerifyTree(loop), maze.ErrCycle)
}
