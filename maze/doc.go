// Package maze carves a perfect maze into an all-wall grid.Grid.
//
// What
//
//   - Generate runs an iterative randomized depth-first carve from the grid start.
//   - A wall cell may be carved only while exactly one of its eight neighbors is
//     passable, so every carve attaches a leaf to the open region.
//   - When no neighbor of the current cell qualifies, the carver backtracks.
//   - The result is a spanning tree of the open cells under 8-adjacency:
//     connected, with exactly one route between any two open cells.
//   - VerifyTree checks that property on any grid (flood fill plus edge count).
//
// Determinism
//
//	Candidate directions are visited in an order drawn from the supplied
//	*rand.Rand, so a fixed seed and start always produce the same maze.
//
// Complexity (N = size²)
//
//   - Time:   O(N·64)  (each cell is pushed once; eight candidates, eight neighbors each)
//   - Memory: O(N)     (explicit stack)
//
// Usage
//
//	g, _ := grid.New(21, grid.WithRand(rng.Stream(seed, rng.StreamStart)))
//	res, err := maze.Generate(g,
//	    maze.WithRand(rng.Stream(seed, rng.StreamCarve)),
//	    maze.WithContext(ctx),
//	)
//
// Errors
//
//   - ErrGridNil        if the grid pointer is nil.
//   - ErrAlreadyCarved  if the grid has open or sealed cells besides the start.
//   - ctx.Err()         if the context is cancelled mid-carve.
//   - Wrapped OnCarve hook errors.
//   - ErrDisconnected, ErrCycle from VerifyTree.
package maze
